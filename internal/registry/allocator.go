package registry

import "sync/atomic"

// Allocator 视频 ID 分配器
//
// 从 1 开始严格递增，并发调用不会重复，已分配的 ID 永不复用。
// 由构造方注入注册表，生命周期跟随注册表本身。
type Allocator struct {
	current atomic.Int64
}

func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next 返回下一个未使用的 ID
func (a *Allocator) Next() int64 {
	return a.current.Add(1)
}
