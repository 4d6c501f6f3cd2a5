package memory

import (
	"context"
	"time"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
)

// AnonymousSessionRepository はインメモリのAnonymousSessionRepository実装です
// 期限切れのセッションは参照時に取り除きます
type AnonymousSessionRepository struct {
	store *Store
	now   func() time.Time
}

// NewAnonymousSessionRepository は新しいAnonymousSessionRepositoryを作成します
func NewAnonymousSessionRepository(store *Store) *AnonymousSessionRepository {
	return &AnonymousSessionRepository{store: store, now: time.Now}
}

// Save はセッションを保存します
func (r *AnonymousSessionRepository) Save(ctx context.Context, session *entity.AnonymousSession) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.sessions[session.Key] = copySession(session)
	return nil
}

// FindByKey はキーでセッションを取得します
func (r *AnonymousSessionRepository) FindByKey(ctx context.Context, key string) (*entity.AnonymousSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.sessions[key]
	if !ok {
		return nil, apperror.NewNotFoundError("session")
	}
	if s.IsExpired(r.now()) {
		delete(r.store.sessions, key)
		return nil, apperror.NewNotFoundError("session")
	}
	return copySession(s), nil
}

// Delete はセッションを削除します
func (r *AnonymousSessionRepository) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.sessions, key)
	return nil
}

var _ repository.AnonymousSessionRepository = (*AnonymousSessionRepository)(nil)
