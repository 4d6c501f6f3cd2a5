package authz

import (
	"context"

	"github.com/google/uuid"
)

// ShareGrantRepository は直接共有の永続化を担当します
type ShareGrantRepository interface {
	// Upsert は付与対象ごとの共有を作成または更新します
	Upsert(ctx context.Context, grant *ShareGrant) error

	// Delete は付与対象の共有を削除します
	Delete(ctx context.Context, entryID uuid.UUID, subjectType SubjectType, subjectID uuid.UUID) error

	// FindBySubject は付与対象の共有を取得します（存在しない場合 NotFound）
	FindBySubject(ctx context.Context, entryID uuid.UUID, subjectType SubjectType, subjectID uuid.UUID) (*ShareGrant, error)

	// FindByEntryID はエントリの全ての共有を取得します
	FindByEntryID(ctx context.Context, entryID uuid.UUID) ([]*ShareGrant, error)

	// FindByEntryIDs は複数エントリの共有をまとめて取得します
	FindByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) ([]*ShareGrant, error)
}
