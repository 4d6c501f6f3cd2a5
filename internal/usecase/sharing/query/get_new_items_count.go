package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
)

// GetNewItemsCountInput は未読共有アイテム数取得の入力を定義します
type GetNewItemsCountInput struct {
	UserID uuid.UUID
}

// GetNewItemsCountOutput は未読共有アイテム数取得の出力を定義します
type GetNewItemsCountOutput struct {
	Count int64
}

// GetNewItemsCountQuery は未読共有アイテム数取得クエリです
type GetNewItemsCountQuery struct {
	inboxRepo repository.SharedInboxRepository
}

// NewGetNewItemsCountQuery は新しいGetNewItemsCountQueryを作成します
func NewGetNewItemsCountQuery(inboxRepo repository.SharedInboxRepository) *GetNewItemsCountQuery {
	return &GetNewItemsCountQuery{inboxRepo: inboxRepo}
}

// Execute は未読数を返します
func (q *GetNewItemsCountQuery) Execute(ctx context.Context, input GetNewItemsCountInput) (*GetNewItemsCountOutput, error) {
	count, err := q.inboxRepo.Count(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetNewItemsCountOutput{Count: count}, nil
}
