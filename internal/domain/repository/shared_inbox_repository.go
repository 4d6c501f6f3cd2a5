package repository

import (
	"context"

	"github.com/google/uuid"
)

// SharedInboxRepository は受信者ごとの未読共有アイテム数を管理します
type SharedInboxRepository interface {
	// Increment は各受信者のカウンタを1増やします
	Increment(ctx context.Context, userIDs []uuid.UUID) error
	Count(ctx context.Context, userID uuid.UUID) (int64, error)
	Reset(ctx context.Context, userID uuid.UUID) error
}
