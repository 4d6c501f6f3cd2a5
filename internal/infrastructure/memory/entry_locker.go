package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
)

// EntryLocker はエントリIDごとのミューテックスで変更操作を直列化します
// 使われなくなったミューテックスは参照カウントが0になった時点で破棄します
type EntryLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*entryLock
}

type entryLock struct {
	mu   sync.Mutex
	refs int
}

// NewEntryLocker は新しいEntryLockerを作成します
func NewEntryLocker() *EntryLocker {
	return &EntryLocker{locks: make(map[uuid.UUID]*entryLock)}
}

// WithEntryLock はエントリのロックを保持したまま処理を実行します
func (l *EntryLocker) WithEntryLock(ctx context.Context, entryID uuid.UUID, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lock := l.acquire(entryID)
	lock.mu.Lock()
	defer func() {
		lock.mu.Unlock()
		l.release(entryID, lock)
	}()

	return fn(ctx)
}

func (l *EntryLocker) acquire(entryID uuid.UUID) *entryLock {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[entryID]
	if !ok {
		lock = &entryLock{}
		l.locks[entryID] = lock
	}
	lock.refs++
	return lock
}

func (l *EntryLocker) release(entryID uuid.UUID, lock *entryLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock.refs--
	if lock.refs == 0 {
		delete(l.locks, entryID)
	}
}

// size は保持中のロック数を返します（テスト用）
func (l *EntryLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

var _ repository.EntryLocker = (*EntryLocker)(nil)
