package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/infrastructure/database"
)

const shareLinkColumns = `id, entry_id, entry_type, token, title, access, password_hash,
	expires_at, deny_download, internal, is_primary, created_by, created_at, updated_at`

// ShareLinkRepository は共有リンクリポジトリの実装です
type ShareLinkRepository struct {
	*database.BaseRepository
}

// NewShareLinkRepository は新しいShareLinkRepositoryを作成します
func NewShareLinkRepository(txManager *database.TxManager) *ShareLinkRepository {
	return &ShareLinkRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

// Create は共有リンクを作成します
func (r *ShareLinkRepository) Create(ctx context.Context, link *entity.ShareLink) error {
	_, err := r.Querier(ctx).Exec(ctx, `
		INSERT INTO share_links (`+shareLinkColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		link.ID,
		link.EntryID,
		link.EntryType.String(),
		link.Token.String(),
		link.Title,
		link.Access.String(),
		nullableString(link.PasswordHash),
		timestamptz(link.ExpiresAt),
		link.DenyDownload,
		link.Internal,
		link.Primary,
		link.CreatedBy,
		link.CreatedAt,
		link.UpdatedAt,
	)
	return r.HandleError(err, "share link")
}

// FindByID はIDで共有リンクを検索します
func (r *ShareLinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShareLink, error) {
	row := r.Querier(ctx).QueryRow(ctx, `SELECT `+shareLinkColumns+` FROM share_links WHERE id = $1`, id)
	return r.scan(row)
}

// FindByToken はトークンで共有リンクを検索します
func (r *ShareLinkRepository) FindByToken(ctx context.Context, token valueobject.ShareToken) (*entity.ShareLink, error) {
	row := r.Querier(ctx).QueryRow(ctx, `SELECT `+shareLinkColumns+` FROM share_links WHERE token = $1`, token.String())
	return r.scan(row)
}

// FindPrimaryByEntryID はエントリの主リンクを取得します
func (r *ShareLinkRepository) FindPrimaryByEntryID(ctx context.Context, entryID uuid.UUID) (*entity.ShareLink, error) {
	row := r.Querier(ctx).QueryRow(ctx, `SELECT `+shareLinkColumns+` FROM share_links WHERE entry_id = $1 AND is_primary`, entryID)
	return r.scan(row)
}

// FindByEntryID はエントリの共有リンクを主リンク、作成日時の順で取得します
func (r *ShareLinkRepository) FindByEntryID(ctx context.Context, entryID uuid.UUID) ([]*entity.ShareLink, error) {
	rows, err := r.Querier(ctx).Query(ctx, `
		SELECT `+shareLinkColumns+` FROM share_links
		WHERE entry_id = $1
		ORDER BY is_primary DESC, created_at ASC`, entryID)
	if err != nil {
		return nil, r.HandleError(err, "share link")
	}
	defer rows.Close()

	var links []*entity.ShareLink
	for rows.Next() {
		link, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, r.HandleError(err, "share link")
	}
	return links, nil
}

// Update は共有リンクを更新します
func (r *ShareLinkRepository) Update(ctx context.Context, link *entity.ShareLink) error {
	tag, err := r.Querier(ctx).Exec(ctx, `
		UPDATE share_links SET
			token = $2, title = $3, access = $4, password_hash = $5, expires_at = $6,
			deny_download = $7, internal = $8, is_primary = $9, updated_at = $10
		WHERE id = $1`,
		link.ID,
		link.Token.String(),
		link.Title,
		link.Access.String(),
		nullableString(link.PasswordHash),
		timestamptz(link.ExpiresAt),
		link.DenyDownload,
		link.Internal,
		link.Primary,
		link.UpdatedAt,
	)
	if err != nil {
		return r.HandleError(err, "share link")
	}
	if tag.RowsAffected() == 0 {
		return r.HandleError(pgx.ErrNoRows, "share link")
	}
	return nil
}

// Delete は共有リンクを物理削除します
func (r *ShareLinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.Querier(ctx).Exec(ctx, `DELETE FROM share_links WHERE id = $1`, id)
	if err != nil {
		return r.HandleError(err, "share link")
	}
	if tag.RowsAffected() == 0 {
		return r.HandleError(pgx.ErrNoRows, "share link")
	}
	return nil
}

// DeleteExpiredBefore は指定時刻より前に期限切れになったリンクを削除します
func (r *ShareLinkRepository) DeleteExpiredBefore(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.Querier(ctx).Exec(ctx, `DELETE FROM share_links WHERE expires_at IS NOT NULL AND expires_at < $1`, before)
	if err != nil {
		return 0, r.HandleError(err, "share link")
	}
	return tag.RowsAffected(), nil
}

// scan は1行を entity.ShareLink に変換します
func (r *ShareLinkRepository) scan(row pgx.Row) (*entity.ShareLink, error) {
	var (
		id, entryID, createdBy          uuid.UUID
		entryType, token, title, access string
		passwordHash                    *string
		expiresAt                       pgtype.Timestamptz
		denyDownload, internal, primary bool
		createdAt, updatedAt            time.Time
	)
	if err := row.Scan(&id, &entryID, &entryType, &token, &title, &access, &passwordHash,
		&expiresAt, &denyDownload, &internal, &primary, &createdBy, &createdAt, &updatedAt); err != nil {
		return nil, r.HandleError(err, "share link")
	}

	shareToken, err := valueobject.ReconstructShareToken(token)
	if err != nil {
		return nil, r.HandleError(err, "share link")
	}
	level, err := authz.NewAccessLevel(access)
	if err != nil {
		return nil, r.HandleError(err, "share link")
	}

	var hash string
	if passwordHash != nil {
		hash = *passwordHash
	}

	return entity.ReconstructShareLink(
		id,
		entryID,
		authz.EntryType(entryType),
		shareToken,
		title,
		level,
		hash,
		timePtr(expiresAt),
		denyDownload,
		internal,
		primary,
		createdBy,
		createdAt,
		updatedAt,
	), nil
}

// インターフェースの実装を保証
var _ repository.ShareLinkRepository = (*ShareLinkRepository)(nil)
