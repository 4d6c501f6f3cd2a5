package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/logger"
)

// AddGroupMemberInput はグループ所属追加の入力を定義します
type AddGroupMemberInput struct {
	Actor   uuid.UUID
	GroupID uuid.UUID
	UserID  uuid.UUID
	Role    string // 省略時は member
}

// AddGroupMemberCommand はユーザーをグループに所属させるコマンドです
// グループのmanagerのみ実行できます
type AddGroupMemberCommand struct {
	membershipRepo repository.MembershipRepository
}

// NewAddGroupMemberCommand は新しいAddGroupMemberCommandを作成します
func NewAddGroupMemberCommand(membershipRepo repository.MembershipRepository) *AddGroupMemberCommand {
	return &AddGroupMemberCommand{membershipRepo: membershipRepo}
}

// Execute はグループ所属を追加します
func (c *AddGroupMemberCommand) Execute(ctx context.Context, input AddGroupMemberInput) error {
	// 1. ロールのバリデーション
	role, err := valueobject.NewGroupRole(input.Role)
	if err != nil {
		return apperror.NewValidationError(err.Error(), nil)
	}

	// 2. 操作者のロール確認（manager only）
	actorRole, err := c.membershipRepo.FindGroupRole(ctx, input.GroupID, input.Actor)
	if err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NewForbiddenError("not a member of this group")
		}
		return err
	}
	if !actorRole.CanManageMembers() {
		return apperror.NewForbiddenError("only managers can add group members")
	}

	// 3. 所属の追加
	if err := c.membershipRepo.AddGroupMember(ctx, input.GroupID, input.UserID, role); err != nil {
		return err
	}

	logger.Info(ctx, "group member added",
		"group_id", input.GroupID,
		"user_id", input.UserID,
		"role", role,
		"added_by", input.Actor,
	)
	return nil
}
