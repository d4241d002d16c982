package content

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *FSStore {
	t.Helper()
	s, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFSStore 失败: %v", err)
	}
	return s
}

// TestSaveCopyToRoundTrip 保存后读取得到完全相同的字节
func TestSaveCopyToRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	payload := []byte("fake mpeg payload \x00\x01\x02")

	if err := s.Save(ctx, 1, bytes.NewReader(payload)); err != nil {
		t.Fatalf("Save 失败: %v", err)
	}

	var out bytes.Buffer
	if err := s.CopyTo(ctx, 1, &out); err != nil {
		t.Fatalf("CopyTo 失败: %v", err)
	}
	if !bytes.Equal(out.Bytes(), payload) {
		t.Errorf("读出 %q, 期望 %q", out.Bytes(), payload)
	}
}

// TestCopyToNotFound 从未保存过内容时返回 ErrContentNotFound 且不写字节
func TestCopyToNotFound(t *testing.T) {
	s := newTestStore(t)

	var out bytes.Buffer
	err := s.CopyTo(context.Background(), 42, &out)
	if !errors.Is(err, ErrContentNotFound) {
		t.Errorf("err = %v, 期望 ErrContentNotFound", err)
	}
	if out.Len() != 0 {
		t.Errorf("写出了 %d 字节, 期望 0", out.Len())
	}
}

// TestEmptyPayloadIsPresent 空内容与"没有内容"可以区分
func TestEmptyPayloadIsPresent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, 1, bytes.NewReader(nil)); err != nil {
		t.Fatalf("Save 失败: %v", err)
	}

	var out bytes.Buffer
	if err := s.CopyTo(ctx, 1, &out); err != nil {
		t.Errorf("空内容 err = %v, 期望 nil", err)
	}
	if out.Len() != 0 {
		t.Errorf("空内容读出 %d 字节", out.Len())
	}
}

// TestOverwrite 重复保存覆盖旧内容
func TestOverwrite(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, 1, strings.NewReader("version-1")); err != nil {
		t.Fatalf("Save v1 失败: %v", err)
	}
	if err := s.Save(ctx, 1, strings.NewReader("version-2")); err != nil {
		t.Fatalf("Save v2 失败: %v", err)
	}

	var out bytes.Buffer
	if err := s.CopyTo(ctx, 1, &out); err != nil {
		t.Fatalf("CopyTo 失败: %v", err)
	}
	if out.String() != "version-2" {
		t.Errorf("读出 %q, 期望 %q", out.String(), "version-2")
	}
}

// errAfterReader 读出部分字节后报错，模拟被传输层中断的上传
type errAfterReader struct {
	data []byte
	off  int
}

func (r *errAfterReader) Read(p []byte) (int, error) {
	if r.off >= len(r.data) {
		return 0, errors.New("simulated transport failure")
	}
	n := copy(p, r.data[r.off:])
	r.off += n
	return n, nil
}

// TestFailedSaveKeepsOldContent 写入中途失败时旧内容保持可见，
// 且不遗留临时文件
func TestFailedSaveKeepsOldContent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, 1, strings.NewReader("stable")); err != nil {
		t.Fatalf("Save 失败: %v", err)
	}

	err := s.Save(ctx, 1, &errAfterReader{data: []byte("partial")})
	if err == nil {
		t.Fatal("中断的 Save 返回 nil, 期望错误")
	}

	var out bytes.Buffer
	if err := s.CopyTo(ctx, 1, &out); err != nil {
		t.Fatalf("CopyTo 失败: %v", err)
	}
	if out.String() != "stable" {
		t.Errorf("读出 %q, 期望旧内容 %q", out.String(), "stable")
	}

	leftovers, _ := filepath.Glob(filepath.Join(s.dir, "*.tmp"))
	if len(leftovers) != 0 {
		t.Errorf("遗留了临时文件: %v", leftovers)
	}
}

// TestFailedFirstSaveLeavesNothing 首次保存失败后内容仍然不存在
func TestFailedFirstSaveLeavesNothing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, 1, &errAfterReader{data: []byte("partial")}); err == nil {
		t.Fatal("中断的 Save 返回 nil, 期望错误")
	}

	var out bytes.Buffer
	if err := s.CopyTo(ctx, 1, &out); !errors.Is(err, ErrContentNotFound) {
		t.Errorf("err = %v, 期望 ErrContentNotFound", err)
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		t.Fatalf("ReadDir 失败: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("目录非空: %v", entries)
	}
}

// TestLargePayload 大于单次缓冲的载荷完整往返
func TestLargePayload(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	payload := bytes.Repeat([]byte("0123456789abcdef"), 64*1024) // 1 MiB
	if err := s.Save(ctx, 7, bytes.NewReader(payload)); err != nil {
		t.Fatalf("Save 失败: %v", err)
	}

	var out bytes.Buffer
	if err := s.CopyTo(ctx, 7, &out); err != nil {
		t.Fatalf("CopyTo 失败: %v", err)
	}
	if int64(out.Len()) != int64(len(payload)) {
		t.Fatalf("读出 %d 字节, 期望 %d", out.Len(), len(payload))
	}
	if !bytes.Equal(out.Bytes(), payload) {
		t.Error("往返内容不一致")
	}
}
