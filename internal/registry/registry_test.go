package registry

import (
	"fmt"
	"sync"
	"testing"

	"vidcat-go/internal/model"
)

const testBaseURL = "http://localhost:8000"

func newTestRegistry() *Registry {
	return New(NewAllocator(), testBaseURL)
}

// TestUpsertAssignsID 首次提交分配 ID 并计算 data_url
func TestUpsertAssignsID(t *testing.T) {
	r := newTestRegistry()

	v := r.Upsert(model.Video{Title: "demo", DurationMs: 1000})
	if v.ID != 1 {
		t.Fatalf("ID = %d, 期望 1", v.ID)
	}

	want := fmt.Sprintf("%s/api/v1/videos/%d/data", testBaseURL, v.ID)
	if v.DataURL != want {
		t.Errorf("DataURL = %q, 期望 %q", v.DataURL, want)
	}

	v2 := r.Upsert(model.Video{Title: "second"})
	if v2.ID != 2 {
		t.Errorf("第二个 ID = %d, 期望 2", v2.ID)
	}
}

// TestUpsertKeepsIdentity 按已有 ID 更新时，ID 与 data_url 保持不变
func TestUpsertKeepsIdentity(t *testing.T) {
	r := newTestRegistry()

	v := r.Upsert(model.Video{Title: "demo"})
	origURL := v.DataURL

	v.Title = "renamed"
	v.DataURL = "http://attacker.example/override"
	got := r.Upsert(v)

	if got.ID != v.ID {
		t.Errorf("更新后 ID = %d, 期望 %d", got.ID, v.ID)
	}
	if got.DataURL != origURL {
		t.Errorf("更新后 DataURL = %q, 期望保持 %q", got.DataURL, origURL)
	}

	stored, err := r.Get(v.ID)
	if err != nil {
		t.Fatalf("Get 失败: %v", err)
	}
	if stored.Title != "renamed" {
		t.Errorf("Title = %q, 期望 %q", stored.Title, "renamed")
	}
	if stored.DataURL != origURL {
		t.Errorf("存储的 DataURL = %q, 期望 %q", stored.DataURL, origURL)
	}
}

// TestDataURLStableAcrossUpdates data_url 在多次更新后保持不变
func TestDataURLStableAcrossUpdates(t *testing.T) {
	r := newTestRegistry()

	v := r.Upsert(model.Video{Title: "demo"})
	origURL := v.DataURL

	for i := 0; i < 5; i++ {
		v.Title = fmt.Sprintf("rev-%d", i)
		v = r.Upsert(v)
	}

	stored, _ := r.Get(v.ID)
	if stored.DataURL != origURL {
		t.Errorf("DataURL = %q, 期望 %q", stored.DataURL, origURL)
	}
}

// TestGetNotFound 非正数或未分配的 ID 返回 ErrNotFound 而非零值
func TestGetNotFound(t *testing.T) {
	r := newTestRegistry()
	r.Upsert(model.Video{Title: "demo"})

	for _, id := range []int64{0, -1, 42} {
		if _, err := r.Get(id); err != ErrNotFound {
			t.Errorf("Get(%d) err = %v, 期望 ErrNotFound", id, err)
		}
		if r.Exists(id) {
			t.Errorf("Exists(%d) = true, 期望 false", id)
		}
	}

	if !r.Exists(1) {
		t.Error("Exists(1) = false, 期望 true")
	}
}

// TestListSnapshot List 返回值拷贝，修改返回值不影响注册表
func TestListSnapshot(t *testing.T) {
	r := newTestRegistry()
	r.Upsert(model.Video{Title: "a"})
	r.Upsert(model.Video{Title: "b"})

	list := r.List()
	if len(list) != 2 {
		t.Fatalf("len(List()) = %d, 期望 2", len(list))
	}

	list[0].Title = "mutated"

	for _, v := range r.List() {
		if v.Title == "mutated" {
			t.Error("修改快照影响了注册表内部状态")
		}
	}
}

// TestSetContentType 记录 MIME 类型，且元数据更新不会将其清空
func TestSetContentType(t *testing.T) {
	r := newTestRegistry()
	v := r.Upsert(model.Video{Title: "demo"})

	if err := r.SetContentType(v.ID, "video/mp4"); err != nil {
		t.Fatalf("SetContentType 失败: %v", err)
	}

	v.Title = "renamed"
	v.ContentType = ""
	r.Upsert(v)

	stored, _ := r.Get(v.ID)
	if stored.ContentType != "video/mp4" {
		t.Errorf("ContentType = %q, 期望 %q", stored.ContentType, "video/mp4")
	}

	if err := r.SetContentType(99, "video/mp4"); err != ErrNotFound {
		t.Errorf("未知 ID err = %v, 期望 ErrNotFound", err)
	}
}

// TestConcurrentUpsertUniqueIDs 并发首次提交各自拿到唯一 ID，
// 且最大 ID 等于成功分配的次数
func TestConcurrentUpsertUniqueIDs(t *testing.T) {
	r := newTestRegistry()

	const n = 200
	ids := make(chan int64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v := r.Upsert(model.Video{Title: fmt.Sprintf("v-%d", i)})
			ids <- v.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	var max int64
	for id := range ids {
		if id <= 0 {
			t.Errorf("分配到非法 ID %d", id)
		}
		if seen[id] {
			t.Errorf("ID %d 被分配了多次", id)
		}
		seen[id] = true
		if id > max {
			max = id
		}
	}

	if len(seen) != n {
		t.Errorf("唯一 ID 数 = %d, 期望 %d", len(seen), n)
	}
	if max != n {
		t.Errorf("最大 ID = %d, 期望 %d", max, n)
	}
}
