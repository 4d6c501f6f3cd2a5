package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/service"
)

// ListLinksInput はリンク一覧取得の入力を定義します
type ListLinksInput struct {
	Actor   uuid.UUID
	EntryID uuid.UUID
}

// ListLinksOutput はリンク一覧取得の出力を定義します
type ListLinksOutput struct {
	Links []*entity.ShareLink
}

// ListLinksQuery はエントリの共有リンク一覧取得クエリです
type ListLinksQuery struct {
	engine   service.AccessEngine
	linkRepo repository.ShareLinkRepository
}

// NewListLinksQuery は新しいListLinksQueryを作成します
func NewListLinksQuery(engine service.AccessEngine, linkRepo repository.ShareLinkRepository) *ListLinksQuery {
	return &ListLinksQuery{
		engine:   engine,
		linkRepo: linkRepo,
	}
}

// Execute はエントリの現存するリンクをすべて返します
func (q *ListLinksQuery) Execute(ctx context.Context, input ListLinksInput) (*ListLinksOutput, error) {
	if _, err := q.engine.AuthorizeManage(ctx, input.EntryID, input.Actor); err != nil {
		return nil, err
	}

	links, err := q.linkRepo.FindByEntryID(ctx, input.EntryID)
	if err != nil {
		return nil, err
	}
	if links == nil {
		links = []*entity.ShareLink{}
	}

	return &ListLinksOutput{Links: links}, nil
}
