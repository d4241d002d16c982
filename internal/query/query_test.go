package query

import (
	"testing"

	"vidcat-go/internal/model"
	"vidcat-go/internal/registry"
)

func newTestEngine(t *testing.T) (*Engine, *registry.Registry) {
	t.Helper()
	reg := registry.New(registry.NewAllocator(), "http://localhost:8000")
	return NewEngine(reg), reg
}

// TestFindByTitleExact 标题精确匹配，允许多个视频同名
func TestFindByTitleExact(t *testing.T) {
	e, reg := newTestEngine(t)
	reg.Upsert(model.Video{Title: "gopher"})
	reg.Upsert(model.Video{Title: "gopher"})
	reg.Upsert(model.Video{Title: "ferris"})

	got := e.FindByTitle("gopher")
	if len(got) != 2 {
		t.Errorf("len = %d, 期望 2", len(got))
	}
	for _, v := range got {
		if v.Title != "gopher" {
			t.Errorf("混入了标题 %q", v.Title)
		}
	}
}

// TestFindByTitleNoMatch 无结果时返回空切片而非 nil/错误
func TestFindByTitleNoMatch(t *testing.T) {
	e, reg := newTestEngine(t)
	reg.Upsert(model.Video{Title: "gopher"})

	got := e.FindByTitle("Gopher")
	if got == nil {
		t.Fatal("返回了 nil, 期望空切片")
	}
	if len(got) != 0 {
		t.Errorf("len = %d, 期望 0（精确匹配区分大小写）", len(got))
	}
}

// TestFindByDurationLessThan 严格小于：{50,100,150} 以 100 为阈值只返回 50
func TestFindByDurationLessThan(t *testing.T) {
	e, reg := newTestEngine(t)
	reg.Upsert(model.Video{Title: "short", DurationMs: 50})
	reg.Upsert(model.Video{Title: "exact", DurationMs: 100})
	reg.Upsert(model.Video{Title: "long", DurationMs: 150})

	got := e.FindByDurationLessThan(100)
	if len(got) != 1 {
		t.Fatalf("len = %d, 期望 1", len(got))
	}
	if got[0].DurationMs != 50 {
		t.Errorf("DurationMs = %d, 期望 50", got[0].DurationMs)
	}
}

// TestFindByDurationNonPositive 阈值非正时返回空切片
func TestFindByDurationNonPositive(t *testing.T) {
	e, reg := newTestEngine(t)
	reg.Upsert(model.Video{Title: "short", DurationMs: 50})

	for _, ms := range []int64{0, -1} {
		got := e.FindByDurationLessThan(ms)
		if len(got) != 0 {
			t.Errorf("FindByDurationLessThan(%d) len = %d, 期望 0", ms, len(got))
		}
	}
}
