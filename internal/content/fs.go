package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// FSStore 本地文件系统实现，载荷存放在 <dir>/<id>.bin
type FSStore struct {
	dir string
}

var _ Store = (*FSStore)(nil)

func NewFSStore(dir string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", dir, err)
	}
	return &FSStore{dir: dir}, nil
}

// Save 先写同目录临时文件，写满后原子重命名到最终路径
//
// 重命名前读者只能看到旧内容，写入失败时临时文件被清理，
// 不会出现可读的半截载荷。
func (s *FSStore) Save(ctx context.Context, id int64, r io.Reader) error {
	tmp, err := os.CreateTemp(s.dir, fmt.Sprintf("%d-*.tmp", id))
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write content for video %d: %w", id, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to flush content for video %d: %w", id, err)
	}

	if err := os.Rename(tmp.Name(), s.objectPath(id)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to publish content for video %d: %w", id, err)
	}
	return nil
}

// CopyTo 将已保存的载荷流式写入 w
func (s *FSStore) CopyTo(ctx context.Context, id int64, w io.Writer) error {
	f, err := os.Open(s.objectPath(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrContentNotFound
		}
		return fmt.Errorf("failed to open content for video %d: %w", id, err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("failed to stream content for video %d: %w", id, err)
	}
	return nil
}

func (s *FSStore) objectPath(id int64) string {
	return filepath.Join(s.dir, fmt.Sprintf("%d.bin", id))
}
