package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
)

// ShareLinkRepository は共有リンクリポジトリのインターフェース
// 削除されたリンクは物理削除され、以後どの検索結果にも現れません
type ShareLinkRepository interface {
	// 基本CRUD
	Create(ctx context.Context, link *entity.ShareLink) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ShareLink, error)
	Update(ctx context.Context, link *entity.ShareLink) error
	Delete(ctx context.Context, id uuid.UUID) error

	// トークン検索
	FindByToken(ctx context.Context, token valueobject.ShareToken) (*entity.ShareLink, error)

	// 検索
	FindByEntryID(ctx context.Context, entryID uuid.UUID) ([]*entity.ShareLink, error)
	FindPrimaryByEntryID(ctx context.Context, entryID uuid.UUID) (*entity.ShareLink, error)

	// 期限切れ処理
	DeleteExpiredBefore(ctx context.Context, before time.Time) (int64, error)
}
