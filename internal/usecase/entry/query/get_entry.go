package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/service"
)

// GetEntryInput はエントリ取得の入力を定義します
type GetEntryInput struct {
	EntryID    uuid.UUID
	Credential authz.Credential
}

// GetEntryOutput はエントリ取得の出力を定義します
type GetEntryOutput struct {
	Entry  *entity.Entry
	Access *authz.EffectiveAccess
}

// GetEntryQuery は実効アクセス付きでエントリを取得するクエリです
type GetEntryQuery struct {
	entryRepo repository.EntryRepository
	engine    service.AccessEngine
}

// NewGetEntryQuery は新しいGetEntryQueryを作成します
func NewGetEntryQuery(entryRepo repository.EntryRepository, engine service.AccessEngine) *GetEntryQuery {
	return &GetEntryQuery{
		entryRepo: entryRepo,
		engine:    engine,
	}
}

// Execute はエントリを取得します
// アクセスが解決できない場合はエントリ情報を返しません
func (q *GetEntryQuery) Execute(ctx context.Context, input GetEntryInput) (*GetEntryOutput, error) {
	access, err := q.engine.Resolve(ctx, input.EntryID, input.Credential)
	if err != nil {
		return nil, err
	}

	entry, err := q.entryRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		return nil, err
	}

	return &GetEntryOutput{Entry: entry, Access: access}, nil
}
