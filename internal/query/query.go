package query

import (
	"vidcat-go/internal/model"
	"vidcat-go/internal/registry"
)

// Engine 基于注册表快照的只读检索
//
// 每次查询读取 List() 的一份时点快照，与并发写入保持一致隔离。
type Engine struct {
	registry *registry.Registry
}

func NewEngine(reg *registry.Registry) *Engine {
	return &Engine{registry: reg}
}

// FindByTitle 按标题精确匹配；没有结果时返回空切片而非错误
func (e *Engine) FindByTitle(title string) []model.Video {
	out := make([]model.Video, 0)
	for _, v := range e.registry.List() {
		if v.Title == title {
			out = append(out, v)
		}
	}
	return out
}

// FindByDurationLessThan 返回时长严格小于 ms 毫秒的视频
//
// 阈值非正时直接返回空切片。
func (e *Engine) FindByDurationLessThan(ms int64) []model.Video {
	out := make([]model.Video, 0)
	if ms <= 0 {
		return out
	}
	for _, v := range e.registry.List() {
		if v.DurationMs < ms {
			out = append(out, v)
		}
	}
	return out
}
