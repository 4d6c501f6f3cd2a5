package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/infrastructure/database"
)

const entryColumns = `id, entry_type, parent_id, room_type, title, owner_id, created_at, updated_at`

// EntryRepository はエントリリポジトリの実装です
type EntryRepository struct {
	*database.BaseRepository
}

// NewEntryRepository は新しいEntryRepositoryを作成します
func NewEntryRepository(txManager *database.TxManager) *EntryRepository {
	return &EntryRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

// Create はエントリを作成します
func (r *EntryRepository) Create(ctx context.Context, entry *entity.Entry) error {
	_, err := r.Querier(ctx).Exec(ctx, `
		INSERT INTO entries (`+entryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID,
		entry.Type.String(),
		entry.ParentID,
		entry.RoomType.String(),
		entry.Title,
		entry.OwnerID,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	return r.HandleError(err, "entry")
}

// FindByID はIDでエントリを検索します
func (r *EntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error) {
	row := r.Querier(ctx).QueryRow(ctx, `SELECT `+entryColumns+` FROM entries WHERE id = $1`, id)
	return r.scan(row)
}

// FindByParentID は子エントリを作成日時順に取得します
func (r *EntryRepository) FindByParentID(ctx context.Context, parentID uuid.UUID) ([]*entity.Entry, error) {
	rows, err := r.Querier(ctx).Query(ctx, `
		SELECT `+entryColumns+` FROM entries
		WHERE parent_id = $1
		ORDER BY created_at ASC`, parentID)
	if err != nil {
		return nil, r.HandleError(err, "entry")
	}
	defer rows.Close()

	var entries []*entity.Entry
	for rows.Next() {
		entry, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, r.HandleError(err, "entry")
	}
	return entries, nil
}

func (r *EntryRepository) scan(row pgx.Row) (*entity.Entry, error) {
	var (
		id, ownerID                uuid.UUID
		parentID                   *uuid.UUID
		entryType, roomType, title string
		createdAt, updatedAt       time.Time
	)
	if err := row.Scan(&id, &entryType, &parentID, &roomType, &title, &ownerID, &createdAt, &updatedAt); err != nil {
		return nil, r.HandleError(err, "entry")
	}

	return entity.ReconstructEntry(
		id,
		authz.EntryType(entryType),
		parentID,
		valueobject.RoomType(roomType),
		title,
		ownerID,
		createdAt,
		updatedAt,
	), nil
}

// インターフェースの実装を保証
var _ repository.EntryRepository = (*EntryRepository)(nil)
