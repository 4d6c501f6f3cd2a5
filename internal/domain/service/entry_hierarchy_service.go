package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
)

// EntryHierarchyService はエントリの包含階層に関するドメインサービス
type EntryHierarchyService interface {
	// Chain は対象エントリからルートまで親をたどり、ルート側を先頭にしたチェーンを返します
	Chain(ctx context.Context, entryID uuid.UUID) (entity.EntryChain, error)
}

// entryHierarchyServiceImpl はEntryHierarchyServiceの実装
type entryHierarchyServiceImpl struct {
	entryRepo repository.EntryRepository
}

// NewEntryHierarchyService は新しいEntryHierarchyServiceを作成します
func NewEntryHierarchyService(entryRepo repository.EntryRepository) EntryHierarchyService {
	return &entryHierarchyServiceImpl{entryRepo: entryRepo}
}

// Chain は対象エントリからルートまでのチェーンを構築します
func (s *entryHierarchyServiceImpl) Chain(ctx context.Context, entryID uuid.UUID) (entity.EntryChain, error) {
	entry, err := s.entryRepo.FindByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	// 対象側から積み上げ、最後に反転する
	chain := entity.EntryChain{entry}
	seen := map[uuid.UUID]struct{}{entry.ID: {}}

	for cur := entry; cur.ParentID != nil; {
		if len(chain) >= entity.MaxEntryDepth {
			return nil, apperror.NewInternalError(entity.ErrEntryHierarchyTooDeep)
		}

		parent, err := s.entryRepo.FindByID(ctx, *cur.ParentID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return nil, apperror.NewInternalError(fmt.Errorf("entry %s references missing parent %s", cur.ID, *cur.ParentID))
			}
			return nil, err
		}
		if _, ok := seen[parent.ID]; ok {
			return nil, apperror.NewInternalError(entity.ErrEntryHierarchyCycle)
		}
		seen[parent.ID] = struct{}{}

		chain = append(chain, parent)
		cur = parent
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return chain, nil
}
