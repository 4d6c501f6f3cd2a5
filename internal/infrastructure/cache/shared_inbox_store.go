package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
)

// SharedInboxStore は受信者ごとの未読共有アイテム数をRedisカウンタで管理します
type SharedInboxStore struct {
	client *redis.Client
}

// NewSharedInboxStore は新しいSharedInboxStoreを作成します
func NewSharedInboxStore(client *redis.Client) *SharedInboxStore {
	return &SharedInboxStore{client: client}
}

// Increment は各受信者のカウンタを1増やします
func (s *SharedInboxStore) Increment(ctx context.Context, userIDs []uuid.UUID) error {
	if len(userIDs) == 0 {
		return nil
	}

	pipe := s.client.TxPipeline()
	for _, id := range userIDs {
		pipe.Incr(ctx, SharedInboxKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to increment shared inbox: %w", err)
	}
	return nil
}

// Count はユーザーの未読共有アイテム数を返します
func (s *SharedInboxStore) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := s.client.Get(ctx, SharedInboxKey(userID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get shared inbox count: %w", err)
	}
	return n, nil
}

// Reset はユーザーの未読共有アイテム数を0に戻します
func (s *SharedInboxStore) Reset(ctx context.Context, userID uuid.UUID) error {
	return s.client.Del(ctx, SharedInboxKey(userID)).Err()
}

var _ repository.SharedInboxRepository = (*SharedInboxStore)(nil)
