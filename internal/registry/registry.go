package registry

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"vidcat-go/internal/model"
)

var ErrNotFound = errors.New("video not found")

// Registry 视频注册表，持有 ID 到视频元数据的权威映射
//
// 映射完全驻留内存，不带持久化层；写操作由单个读写锁保护，
// 读操作返回值拷贝，调用方拿到的永远是某一时刻的一致快照。
type Registry struct {
	mu        sync.RWMutex
	videos    map[int64]model.Video
	allocator *Allocator
	baseURL   string
}

// New 创建注册表。baseURL 仅用于计算 data_url，不做其他解释。
func New(allocator *Allocator, baseURL string) *Registry {
	return &Registry{
		videos:    make(map[int64]model.Video),
		allocator: allocator,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// Upsert 保存视频并返回入库后的完整实体
//
// ID 为 0 时分配新 ID 并计算 data_url；ID 非 0 时按 ID 原地覆盖，
// 已有条目的 data_url 与 content_type 为服务端字段，调用方提交的
// 值不会覆盖它们。
func (r *Registry) Upsert(v model.Video) model.Video {
	if v.ID == 0 {
		v.ID = r.allocator.Next()
		v.DataURL = r.dataURL(v.ID)

		r.mu.Lock()
		r.videos[v.ID] = v
		r.mu.Unlock()
		return v
	}

	r.mu.Lock()
	if prev, ok := r.videos[v.ID]; ok {
		v.DataURL = prev.DataURL
		if v.ContentType == "" {
			v.ContentType = prev.ContentType
		}
	} else if v.DataURL == "" {
		v.DataURL = r.dataURL(v.ID)
	}
	r.videos[v.ID] = v
	r.mu.Unlock()
	return v
}

// Get 按 ID 查找视频；非正数或未分配的 ID 返回 ErrNotFound
func (r *Registry) Get(id int64) (model.Video, error) {
	if id <= 0 {
		return model.Video{}, ErrNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.videos[id]
	if !ok {
		return model.Video{}, ErrNotFound
	}
	return v, nil
}

// List 返回当前所有视频的快照副本，顺序不做保证
func (r *Registry) List() []model.Video {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Video, 0, len(r.videos))
	for _, v := range r.videos {
		out = append(out, v)
	}
	return out
}

// Exists O(1) 成员检查，供点赞账本和内容存储在变更前短路
func (r *Registry) Exists(id int64) bool {
	if id <= 0 {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.videos[id]
	return ok
}

// SetContentType 记录上传时的载荷 MIME 类型
func (r *Registry) SetContentType(id int64, contentType string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.videos[id]
	if !ok {
		return ErrNotFound
	}
	v.ContentType = contentType
	r.videos[id] = v
	return nil
}

func (r *Registry) dataURL(id int64) string {
	return fmt.Sprintf("%s/api/v1/videos/%d/data", r.baseURL, id)
}
