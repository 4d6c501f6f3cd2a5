package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/service"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/logger"
)

// SetRoomMemberInput はルームメンバー設定の入力を定義します
type SetRoomMemberInput struct {
	Actor  uuid.UUID
	RoomID uuid.UUID
	UserID uuid.UUID
	Access string
}

// SetRoomMemberCommand はルームメンバーのアクセスレベルを設定するコマンドです
// None を指定するとメンバーから外します
type SetRoomMemberCommand struct {
	locker         repository.EntryLocker
	engine         service.AccessEngine
	membershipRepo repository.MembershipRepository
}

// NewSetRoomMemberCommand は新しいSetRoomMemberCommandを作成します
func NewSetRoomMemberCommand(
	locker repository.EntryLocker,
	engine service.AccessEngine,
	membershipRepo repository.MembershipRepository,
) *SetRoomMemberCommand {
	return &SetRoomMemberCommand{
		locker:         locker,
		engine:         engine,
		membershipRepo: membershipRepo,
	}
}

// Execute はルームメンバーを設定します
func (c *SetRoomMemberCommand) Execute(ctx context.Context, input SetRoomMemberInput) error {
	access, err := authz.NewAccessLevel(input.Access)
	if err != nil {
		return apperror.NewValidationError(err.Error(), nil)
	}

	return c.locker.WithEntryLock(ctx, input.RoomID, func(ctx context.Context) error {
		chain, err := c.engine.AuthorizeManage(ctx, input.RoomID, input.Actor)
		if err != nil {
			return err
		}
		if !chain.Target().IsRoom() {
			return apperror.NewValidationError("members can only be added to rooms", nil)
		}

		if err := c.membershipRepo.SetRoomMember(ctx, input.RoomID, input.UserID, access); err != nil {
			return err
		}
		logger.Info(ctx, "room member set", "room_id", input.RoomID, "user_id", input.UserID, "access", access.String())
		return nil
	})
}
