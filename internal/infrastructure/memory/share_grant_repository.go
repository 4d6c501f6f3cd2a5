package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
)

// ShareGrantRepository はインメモリのShareGrantRepository実装です
type ShareGrantRepository struct {
	store *Store
}

// NewShareGrantRepository は新しいShareGrantRepositoryを作成します
func NewShareGrantRepository(store *Store) *ShareGrantRepository {
	return &ShareGrantRepository{store: store}
}

// Upsert は付与対象ごとの共有を作成または更新します
func (r *ShareGrantRepository) Upsert(ctx context.Context, grant *authz.ShareGrant) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := grantKey{entryID: grant.EntryID, subjectType: grant.SubjectType, subjectID: grant.SubjectID}
	if cur, ok := r.store.grants[key]; ok {
		// 既存の付与はIDを維持する
		grant.ID = cur.ID
	}
	r.store.grants[key] = copyGrant(grant)
	return nil
}

// Delete は付与対象の共有を削除します
func (r *ShareGrantRepository) Delete(ctx context.Context, entryID uuid.UUID, subjectType authz.SubjectType, subjectID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := grantKey{entryID: entryID, subjectType: subjectType, subjectID: subjectID}
	if _, ok := r.store.grants[key]; !ok {
		return apperror.NewNotFoundError("share grant")
	}
	delete(r.store.grants, key)
	return nil
}

// FindBySubject は付与対象の共有を取得します
func (r *ShareGrantRepository) FindBySubject(ctx context.Context, entryID uuid.UUID, subjectType authz.SubjectType, subjectID uuid.UUID) (*authz.ShareGrant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	g, ok := r.store.grants[grantKey{entryID: entryID, subjectType: subjectType, subjectID: subjectID}]
	if !ok {
		return nil, apperror.NewNotFoundError("share grant")
	}
	return copyGrant(g), nil
}

// FindByEntryID はエントリの全ての共有を付与日時順に取得します
func (r *ShareGrantRepository) FindByEntryID(ctx context.Context, entryID uuid.UUID) ([]*authz.ShareGrant, error) {
	return r.FindByEntryIDs(ctx, []uuid.UUID{entryID})
}

// FindByEntryIDs は複数エントリの共有をまとめて取得します
func (r *ShareGrantRepository) FindByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) ([]*authz.ShareGrant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	want := make(map[uuid.UUID]struct{}, len(entryIDs))
	for _, id := range entryIDs {
		want[id] = struct{}{}
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var grants []*authz.ShareGrant
	for _, g := range r.store.grants {
		if _, ok := want[g.EntryID]; ok {
			grants = append(grants, copyGrant(g))
		}
	}
	sort.Slice(grants, func(i, j int) bool {
		return grants[i].GrantedAt.Before(grants[j].GrantedAt)
	})
	return grants, nil
}

var _ authz.ShareGrantRepository = (*ShareGrantRepository)(nil)
