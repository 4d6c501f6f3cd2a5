package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/infrastructure/database"
)

const shareGrantColumns = `id, entry_id, subject_type, subject_id, access, granted_by, granted_at`

// ShareGrantRepository は直接共有リポジトリの実装です
type ShareGrantRepository struct {
	*database.BaseRepository
}

// NewShareGrantRepository は新しいShareGrantRepositoryを作成します
func NewShareGrantRepository(txManager *database.TxManager) *ShareGrantRepository {
	return &ShareGrantRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

// Upsert は付与対象ごとの共有を作成または更新します
// 既存の付与はIDと付与日時を維持します
func (r *ShareGrantRepository) Upsert(ctx context.Context, grant *authz.ShareGrant) error {
	row := r.Querier(ctx).QueryRow(ctx, `
		INSERT INTO share_grants (`+shareGrantColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (entry_id, subject_type, subject_id)
		DO UPDATE SET access = EXCLUDED.access, granted_by = EXCLUDED.granted_by
		RETURNING id, granted_at`,
		grant.ID,
		grant.EntryID,
		grant.SubjectType.String(),
		grant.SubjectID,
		grant.Access.String(),
		grant.GrantedBy,
		grant.GrantedAt,
	)
	if err := row.Scan(&grant.ID, &grant.GrantedAt); err != nil {
		return r.HandleError(err, "share grant")
	}
	return nil
}

// Delete は付与対象の共有を削除します
func (r *ShareGrantRepository) Delete(ctx context.Context, entryID uuid.UUID, subjectType authz.SubjectType, subjectID uuid.UUID) error {
	tag, err := r.Querier(ctx).Exec(ctx, `
		DELETE FROM share_grants
		WHERE entry_id = $1 AND subject_type = $2 AND subject_id = $3`,
		entryID, subjectType.String(), subjectID)
	if err != nil {
		return r.HandleError(err, "share grant")
	}
	if tag.RowsAffected() == 0 {
		return r.HandleError(pgx.ErrNoRows, "share grant")
	}
	return nil
}

// FindBySubject は付与対象の共有を取得します
func (r *ShareGrantRepository) FindBySubject(ctx context.Context, entryID uuid.UUID, subjectType authz.SubjectType, subjectID uuid.UUID) (*authz.ShareGrant, error) {
	row := r.Querier(ctx).QueryRow(ctx, `
		SELECT `+shareGrantColumns+` FROM share_grants
		WHERE entry_id = $1 AND subject_type = $2 AND subject_id = $3`,
		entryID, subjectType.String(), subjectID)
	return r.scan(row)
}

// FindByEntryID はエントリの全ての共有を付与日時順に取得します
func (r *ShareGrantRepository) FindByEntryID(ctx context.Context, entryID uuid.UUID) ([]*authz.ShareGrant, error) {
	return r.FindByEntryIDs(ctx, []uuid.UUID{entryID})
}

// FindByEntryIDs は複数エントリの共有をまとめて取得します
func (r *ShareGrantRepository) FindByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) ([]*authz.ShareGrant, error) {
	rows, err := r.Querier(ctx).Query(ctx, `
		SELECT `+shareGrantColumns+` FROM share_grants
		WHERE entry_id = ANY($1)
		ORDER BY granted_at ASC`, entryIDs)
	if err != nil {
		return nil, r.HandleError(err, "share grant")
	}
	defer rows.Close()

	var grants []*authz.ShareGrant
	for rows.Next() {
		grant, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		grants = append(grants, grant)
	}
	if err := rows.Err(); err != nil {
		return nil, r.HandleError(err, "share grant")
	}
	return grants, nil
}

func (r *ShareGrantRepository) scan(row pgx.Row) (*authz.ShareGrant, error) {
	var (
		g                   authz.ShareGrant
		subjectType, access string
		grantedAt           time.Time
	)
	if err := row.Scan(&g.ID, &g.EntryID, &subjectType, &g.SubjectID, &access, &g.GrantedBy, &grantedAt); err != nil {
		return nil, r.HandleError(err, "share grant")
	}

	level, err := authz.NewAccessLevel(access)
	if err != nil {
		return nil, r.HandleError(err, "share grant")
	}
	g.SubjectType = authz.SubjectType(subjectType)
	g.Access = level
	g.GrantedAt = grantedAt
	return &g, nil
}

// インターフェースの実装を保証
var _ authz.ShareGrantRepository = (*ShareGrantRepository)(nil)
