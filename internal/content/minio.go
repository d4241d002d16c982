package content

import (
	"context"
	"fmt"
	"io"

	infraMinio "vidcat-go/internal/infra/minio"

	"github.com/minio/minio-go/v7"
)

// MinioStore 基于 MinIO 的实现，对象名为 videos/<id>
//
// PutObject 在服务端原子地替换对象，读者要么看到旧版本要么看到
// 完整的新版本，无需额外处理。
type MinioStore struct {
	bucket string
}

var _ Store = (*MinioStore)(nil)

func NewMinioStore(bucket string) *MinioStore {
	return &MinioStore{bucket: bucket}
}

func (s *MinioStore) Save(ctx context.Context, id int64, r io.Reader) error {
	return infraMinio.UploadStream(ctx, s.bucket, s.objectName(id), r)
}

func (s *MinioStore) CopyTo(ctx context.Context, id int64, w io.Writer) error {
	obj, err := infraMinio.OpenObject(ctx, s.bucket, s.objectName(id))
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return ErrContentNotFound
		}
		return err
	}
	defer obj.Close()

	if _, err := io.Copy(w, obj); err != nil {
		return fmt.Errorf("failed to stream %s/%s: %w", s.bucket, s.objectName(id), err)
	}
	return nil
}

func (s *MinioStore) objectName(id int64) string {
	return fmt.Sprintf("videos/%d", id)
}
