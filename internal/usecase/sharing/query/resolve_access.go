package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/service"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/logger"
)

// ResolveAccessInput は実効アクセス解決の入力を定義します
type ResolveAccessInput struct {
	EntryID    uuid.UUID
	Credential authz.Credential
}

// ResolveAccessOutput は実効アクセス解決の出力を定義します
type ResolveAccessOutput struct {
	Access *authz.EffectiveAccess
}

// ResolveAccessQuery は実効アクセス解決クエリです
type ResolveAccessQuery struct {
	engine service.AccessEngine
}

// NewResolveAccessQuery は新しいResolveAccessQueryを作成します
func NewResolveAccessQuery(engine service.AccessEngine) *ResolveAccessQuery {
	return &ResolveAccessQuery{engine: engine}
}

// Execute は実効アクセスを解決します
func (q *ResolveAccessQuery) Execute(ctx context.Context, input ResolveAccessInput) (*ResolveAccessOutput, error) {
	access, err := q.engine.Resolve(ctx, input.EntryID, input.Credential)
	if err != nil {
		return nil, err
	}
	if access.LinkID != nil {
		ctx = logger.ContextWithLinkID(ctx, access.LinkID.String())
	}
	logger.Debug(ctx, "effective access", "entry_id", input.EntryID, "level", access.Level.String(), "download", access.CanDownload)

	return &ResolveAccessOutput{Access: access}, nil
}
