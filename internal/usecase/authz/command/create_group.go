package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/logger"
)

// CreateGroupInput はグループ作成の入力を定義します
type CreateGroupInput struct {
	Actor uuid.UUID
}

// CreateGroupOutput はグループ作成の出力を定義します
type CreateGroupOutput struct {
	GroupID uuid.UUID
}

// CreateGroupCommand はグループを作成し、作成者をmanagerとして所属させるコマンドです
// グループIDはサーバー側で採番します
type CreateGroupCommand struct {
	membershipRepo repository.MembershipRepository
}

// NewCreateGroupCommand は新しいCreateGroupCommandを作成します
func NewCreateGroupCommand(membershipRepo repository.MembershipRepository) *CreateGroupCommand {
	return &CreateGroupCommand{membershipRepo: membershipRepo}
}

// Execute はグループ作成を実行します
func (c *CreateGroupCommand) Execute(ctx context.Context, input CreateGroupInput) (*CreateGroupOutput, error) {
	groupID := uuid.New()
	if err := c.membershipRepo.AddGroupMember(ctx, groupID, input.Actor, valueobject.GroupRoleManager); err != nil {
		return nil, err
	}

	logger.Info(ctx, "group created", "group_id", groupID, "manager_id", input.Actor)
	return &CreateGroupOutput{GroupID: groupID}, nil
}
