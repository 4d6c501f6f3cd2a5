package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
)

// ShareLinkRepository はインメモリのShareLinkRepository実装です
type ShareLinkRepository struct {
	store *Store
}

// NewShareLinkRepository は新しいShareLinkRepositoryを作成します
func NewShareLinkRepository(store *Store) *ShareLinkRepository {
	return &ShareLinkRepository{store: store}
}

// Create は共有リンクを作成します
func (r *ShareLinkRepository) Create(ctx context.Context, link *entity.ShareLink) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.links[link.ID]; ok {
		return apperror.NewConflictError("share link already exists")
	}
	if _, ok := r.store.tokens[link.Token.String()]; ok {
		return apperror.NewConflictError("share token already exists")
	}
	if link.Primary {
		for _, l := range r.store.links {
			if l.EntryID == link.EntryID && l.Primary {
				return apperror.NewConflictError("entry already has a primary link")
			}
		}
	}

	r.store.links[link.ID] = copyLink(link)
	r.store.tokens[link.Token.String()] = link.ID
	return nil
}

// FindByID はIDで共有リンクを検索します
func (r *ShareLinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShareLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	l, ok := r.store.links[id]
	if !ok {
		return nil, apperror.NewNotFoundError("share link")
	}
	return copyLink(l), nil
}

// Update は共有リンクを更新します
func (r *ShareLinkRepository) Update(ctx context.Context, link *entity.ShareLink) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cur, ok := r.store.links[link.ID]
	if !ok {
		return apperror.NewNotFoundError("share link")
	}
	if !cur.Token.Equals(link.Token) {
		delete(r.store.tokens, cur.Token.String())
		r.store.tokens[link.Token.String()] = link.ID
	}
	r.store.links[link.ID] = copyLink(link)
	return nil
}

// Delete は共有リンクを削除します
func (r *ShareLinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	l, ok := r.store.links[id]
	if !ok {
		return apperror.NewNotFoundError("share link")
	}
	delete(r.store.tokens, l.Token.String())
	delete(r.store.links, id)
	return nil
}

// FindByToken はトークンで共有リンクを検索します
func (r *ShareLinkRepository) FindByToken(ctx context.Context, token valueobject.ShareToken) (*entity.ShareLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.tokens[token.String()]
	if !ok {
		return nil, apperror.NewNotFoundError("share link")
	}
	return copyLink(r.store.links[id]), nil
}

// FindByEntryID はエントリの共有リンクを主リンク、作成日時の順で取得します
func (r *ShareLinkRepository) FindByEntryID(ctx context.Context, entryID uuid.UUID) ([]*entity.ShareLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var links []*entity.ShareLink
	for _, l := range r.store.links {
		if l.EntryID == entryID {
			links = append(links, copyLink(l))
		}
	}
	sort.Slice(links, func(i, j int) bool {
		if links[i].Primary != links[j].Primary {
			return links[i].Primary
		}
		return links[i].CreatedAt.Before(links[j].CreatedAt)
	})
	return links, nil
}

// FindPrimaryByEntryID はエントリの主リンクを取得します
func (r *ShareLinkRepository) FindPrimaryByEntryID(ctx context.Context, entryID uuid.UUID) (*entity.ShareLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, l := range r.store.links {
		if l.EntryID == entryID && l.Primary {
			return copyLink(l), nil
		}
	}
	return nil, apperror.NewNotFoundError("share link")
}

// DeleteExpiredBefore は指定時刻より前に期限切れになったリンクを削除します
func (r *ShareLinkRepository) DeleteExpiredBefore(ctx context.Context, before time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var n int64
	for id, l := range r.store.links {
		if l.ExpiresAt != nil && l.ExpiresAt.Before(before) {
			delete(r.store.tokens, l.Token.String())
			delete(r.store.links, id)
			n++
		}
	}
	return n, nil
}

var _ repository.ShareLinkRepository = (*ShareLinkRepository)(nil)
