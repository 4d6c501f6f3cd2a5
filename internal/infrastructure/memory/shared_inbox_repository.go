package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
)

// SharedInboxRepository はインメモリのSharedInboxRepository実装です
type SharedInboxRepository struct {
	store *Store
}

// NewSharedInboxRepository は新しいSharedInboxRepositoryを作成します
func NewSharedInboxRepository(store *Store) *SharedInboxRepository {
	return &SharedInboxRepository{store: store}
}

// Increment は各受信者のカウンタを1増やします
func (r *SharedInboxRepository) Increment(ctx context.Context, userIDs []uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, id := range userIDs {
		r.store.inbox[id]++
	}
	return nil
}

// Count は未読数を返します
func (r *SharedInboxRepository) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.inbox[userID], nil
}

// Reset は未読数を0にします
func (r *SharedInboxRepository) Reset(ctx context.Context, userID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.inbox, userID)
	return nil
}

var _ repository.SharedInboxRepository = (*SharedInboxRepository)(nil)
