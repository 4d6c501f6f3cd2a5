package repository

import (
	"context"

	"github.com/google/uuid"
)

// TransactionManager はトランザクション管理インターフェースを定義します
type TransactionManager interface {
	// WithTransaction はトランザクション内で処理を実行します
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EntryLocker はエントリ単位で変更操作を直列化します
// 異なるエントリ間のロックは取りません
type EntryLocker interface {
	// WithEntryLock はエントリのロックを保持したまま処理を実行します
	WithEntryLock(ctx context.Context, entryID uuid.UUID, fn func(ctx context.Context) error) error
}
