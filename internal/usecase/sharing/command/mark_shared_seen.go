package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
)

// MarkSharedSeenInput は共有アイテム既読化の入力を定義します
type MarkSharedSeenInput struct {
	UserID uuid.UUID
}

// MarkSharedSeenCommand は未読共有アイテム数をリセットするコマンドです
type MarkSharedSeenCommand struct {
	inboxRepo repository.SharedInboxRepository
}

// NewMarkSharedSeenCommand は新しいMarkSharedSeenCommandを作成します
func NewMarkSharedSeenCommand(inboxRepo repository.SharedInboxRepository) *MarkSharedSeenCommand {
	return &MarkSharedSeenCommand{inboxRepo: inboxRepo}
}

// Execute は未読数をリセットします
func (c *MarkSharedSeenCommand) Execute(ctx context.Context, input MarkSharedSeenInput) error {
	return c.inboxRepo.Reset(ctx, input.UserID)
}
