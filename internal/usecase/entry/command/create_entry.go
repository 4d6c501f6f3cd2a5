package command

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/service"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/logger"
)

// CreateEntryInput はエントリ作成の入力を定義します
type CreateEntryInput struct {
	Actor    uuid.UUID
	Type     string
	Title    string
	ParentID *uuid.UUID
	RoomType string // ルームの場合のみ
}

// CreateEntryOutput はエントリ作成の出力を定義します
type CreateEntryOutput struct {
	Entry *entity.Entry
}

// CreateEntryCommand はルーム・フォルダ・ファイルの作成コマンドです
type CreateEntryCommand struct {
	entryRepo repository.EntryRepository
	hierarchy service.EntryHierarchyService
	engine    service.AccessEngine
}

// NewCreateEntryCommand は新しいCreateEntryCommandを作成します
func NewCreateEntryCommand(
	entryRepo repository.EntryRepository,
	hierarchy service.EntryHierarchyService,
	engine service.AccessEngine,
) *CreateEntryCommand {
	return &CreateEntryCommand{
		entryRepo: entryRepo,
		hierarchy: hierarchy,
		engine:    engine,
	}
}

// Execute はエントリ作成を実行します
func (c *CreateEntryCommand) Execute(ctx context.Context, input CreateEntryInput) (*CreateEntryOutput, error) {
	// 1. 種別のバリデーション
	entryType, err := authz.NewEntryType(input.Type)
	if err != nil {
		return nil, apperror.NewValidationError(err.Error(), nil)
	}

	// 2. 親の取得と編集権限の確認
	var parent *entity.Entry
	if input.ParentID != nil {
		chain, err := c.hierarchy.Chain(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		level, err := c.engine.PrincipalLevel(ctx, chain, input.Actor)
		if err != nil {
			return nil, err
		}
		if level.IsNone() {
			return nil, apperror.NewNotFoundError("parent entry")
		}
		if !level.Capabilities().Edit {
			return nil, apperror.NewForbiddenError("not authorized to create entries in this location")
		}
		parent = chain.Target()
	}

	// 3. エンティティの作成
	var entry *entity.Entry
	switch entryType {
	case authz.EntryTypeRoom:
		if parent != nil {
			return nil, apperror.NewValidationError(entity.ErrRoomHasParent.Error(), nil)
		}
		roomType, err := valueobject.NewRoomType(input.RoomType)
		if err != nil {
			return nil, apperror.NewValidationError(err.Error(), []apperror.FieldError{{Field: "roomType", Message: err.Error()}})
		}
		entry, err = entity.NewRoom(input.Title, roomType, input.Actor)
		if err != nil {
			return nil, toValidationError(err)
		}
	case authz.EntryTypeFolder:
		entry, err = entity.NewFolder(input.Title, parent, input.Actor)
		if err != nil {
			return nil, toValidationError(err)
		}
	default:
		entry, err = entity.NewFile(input.Title, parent, input.Actor)
		if err != nil {
			return nil, toValidationError(err)
		}
	}

	// 4. 保存
	if err := c.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	logger.Info(ctx, "entry created", "entry_id", entry.ID, "type", entry.Type.String())
	return &CreateEntryOutput{Entry: entry}, nil
}

func toValidationError(err error) error {
	switch {
	case errors.Is(err, entity.ErrEntryTitleEmpty),
		errors.Is(err, entity.ErrEntryParentRequired),
		errors.Is(err, entity.ErrEntryParentIsFile),
		errors.Is(err, entity.ErrRoomTypeRequired):
		return apperror.NewValidationError(err.Error(), nil)
	default:
		return apperror.NewInternalError(err)
	}
}
