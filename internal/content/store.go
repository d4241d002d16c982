package content

import (
	"context"
	"errors"
	"io"
)

// ErrContentNotFound 指定 ID 从未保存过内容（与空内容不同）
var ErrContentNotFound = errors.New("content not found")

// Store 按视频 ID 存取二进制载荷
//
// 与视频元数据完全解耦：是否放行某个 ID 由调用方先向注册表确认，
// 这里只认 ID。两个方法都可能在流式 I/O 上阻塞，实现不得在此期间
// 持有注册表或点赞账本的任何锁。
type Store interface {
	// Save 完整消费 r 并将其字节与 id 关联，覆盖旧内容。
	// 写入中途失败不得留下可读的半截内容：要么旧内容继续可见，
	// 要么新内容原子地整体可见。
	Save(ctx context.Context, id int64, r io.Reader) error

	// CopyTo 将 id 对应的载荷流式写入 w；
	// 从未保存过内容时返回 ErrContentNotFound，且不向 w 写任何字节。
	CopyTo(ctx context.Context, id int64, w io.Writer) error
}
