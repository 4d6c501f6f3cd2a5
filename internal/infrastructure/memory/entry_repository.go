package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
)

// EntryRepository はインメモリのEntryRepository実装です
type EntryRepository struct {
	store *Store
}

// NewEntryRepository は新しいEntryRepositoryを作成します
func NewEntryRepository(store *Store) *EntryRepository {
	return &EntryRepository{store: store}
}

// Create はエントリを作成します
func (r *EntryRepository) Create(ctx context.Context, entry *entity.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.entries[entry.ID]; ok {
		return apperror.NewConflictError("entry already exists")
	}
	if entry.ParentID != nil {
		if _, ok := r.store.entries[*entry.ParentID]; !ok {
			return apperror.NewNotFoundError("parent entry")
		}
	}
	r.store.entries[entry.ID] = copyEntry(entry)
	return nil
}

// FindByID はIDでエントリを検索します
func (r *EntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e, ok := r.store.entries[id]
	if !ok {
		return nil, apperror.NewNotFoundError("entry")
	}
	return copyEntry(e), nil
}

// FindByParentID は子エントリを作成日時順に取得します
func (r *EntryRepository) FindByParentID(ctx context.Context, parentID uuid.UUID) ([]*entity.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var children []*entity.Entry
	for _, e := range r.store.entries {
		if e.ParentID != nil && *e.ParentID == parentID {
			children = append(children, copyEntry(e))
		}
	}
	sort.Slice(children, func(i, j int) bool {
		return children[i].CreatedAt.Before(children[j].CreatedAt)
	})
	return children, nil
}

var _ repository.EntryRepository = (*EntryRepository)(nil)
