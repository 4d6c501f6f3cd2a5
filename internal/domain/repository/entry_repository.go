package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
)

// EntryRepository はルーム・フォルダ・ファイルのリポジトリインターフェース
type EntryRepository interface {
	// 基本CRUD
	Create(ctx context.Context, entry *entity.Entry) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error)

	// 検索
	FindByParentID(ctx context.Context, parentID uuid.UUID) ([]*entity.Entry, error)
}
