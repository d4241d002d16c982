package ledger

import (
	"errors"
	"sort"
	"sync"
)

var (
	ErrVideoNotFound = errors.New("video not found")
	ErrAlreadyLiked  = errors.New("already liked")
	ErrNotLiked      = errors.New("not previously liked")
)

// Catalog 点赞账本依赖的注册表只读视图
type Catalog interface {
	Exists(id int64) bool
}

// Ledger 点赞账本，维护每个视频的点赞用户名集合
//
// 点赞数由集合基数派生，两者在同一把条目锁下更新，结构上不可能
// 出现计数与集合不一致。条目锁按视频粒度持有：同一视频的
// like/unlike 串行，不同视频互不阻塞。
type Ledger struct {
	catalog Catalog

	mu      sync.RWMutex
	entries map[int64]*entry
}

// entry 单个视频的点赞状态，惰性创建且不会销毁
type entry struct {
	mu    sync.Mutex
	users map[string]struct{}
}

func New(catalog Catalog) *Ledger {
	return &Ledger{
		catalog: catalog,
		entries: make(map[int64]*entry),
	}
}

// Like 为 (视频, 用户) 记录点赞
//
// 视频不存在返回 ErrVideoNotFound；该用户已点赞过返回
// ErrAlreadyLiked，状态不变。重复点赞是显式错误而非幂等成功。
func (l *Ledger) Like(videoID int64, username string) error {
	if !l.catalog.Exists(videoID) {
		return ErrVideoNotFound
	}

	e := l.entryFor(videoID)
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.users[username]; ok {
		return ErrAlreadyLiked
	}
	e.users[username] = struct{}{}
	return nil
}

// Unlike 撤销 (视频, 用户) 的点赞；未点赞过返回 ErrNotLiked
func (l *Ledger) Unlike(videoID int64, username string) error {
	if !l.catalog.Exists(videoID) {
		return ErrVideoNotFound
	}

	e := l.entryFor(videoID)
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.users[username]; !ok {
		return ErrNotLiked
	}
	delete(e.users, username)
	return nil
}

// UsersWhoLiked 返回点赞该视频的用户名列表（字典序，值拷贝）
func (l *Ledger) UsersWhoLiked(videoID int64) ([]string, error) {
	if !l.catalog.Exists(videoID) {
		return nil, ErrVideoNotFound
	}

	e := l.lookup(videoID)
	if e == nil {
		return []string{}, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	users := make([]string, 0, len(e.users))
	for u := range e.users {
		users = append(users, u)
	}
	sort.Strings(users)
	return users, nil
}

// Count 返回视频当前的点赞数；从未被点赞过的视频为 0
func (l *Ledger) Count(videoID int64) int64 {
	e := l.lookup(videoID)
	if e == nil {
		return 0
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return int64(len(e.users))
}

func (l *Ledger) lookup(videoID int64) *entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.entries[videoID]
}

// entryFor 获取或惰性创建视频的点赞条目
func (l *Ledger) entryFor(videoID int64) *entry {
	l.mu.RLock()
	e, ok := l.entries[videoID]
	l.mu.RUnlock()
	if ok {
		return e
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if e, ok := l.entries[videoID]; ok {
		return e
	}
	e = &entry{users: make(map[string]struct{})}
	l.entries[videoID] = e
	return e
}
