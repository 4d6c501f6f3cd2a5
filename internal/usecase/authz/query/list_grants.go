package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/service"
)

// ListGrantsInput は直接共有一覧取得の入力を定義します
type ListGrantsInput struct {
	EntryID uuid.UUID
	UserID  uuid.UUID
}

// ListGrantsOutput は直接共有一覧取得の出力を定義します
type ListGrantsOutput struct {
	Grants []*authz.ShareGrant
}

// ListGrantsQuery は直接共有一覧取得クエリです
type ListGrantsQuery struct {
	grantRepo authz.ShareGrantRepository
	engine    service.AccessEngine
}

// NewListGrantsQuery は新しいListGrantsQueryを作成します
func NewListGrantsQuery(
	grantRepo authz.ShareGrantRepository,
	engine service.AccessEngine,
) *ListGrantsQuery {
	return &ListGrantsQuery{
		grantRepo: grantRepo,
		engine:    engine,
	}
}

// Execute は直接共有一覧取得を実行します
func (q *ListGrantsQuery) Execute(ctx context.Context, input ListGrantsInput) (*ListGrantsOutput, error) {
	// 1. 共有設定を閲覧できるか確認
	if _, err := q.engine.AuthorizeManage(ctx, input.EntryID, input.UserID); err != nil {
		return nil, err
	}

	// 2. 一覧を取得
	grants, err := q.grantRepo.FindByEntryID(ctx, input.EntryID)
	if err != nil {
		return nil, err
	}
	if grants == nil {
		grants = []*authz.ShareGrant{}
	}

	return &ListGrantsOutput{Grants: grants}, nil
}
