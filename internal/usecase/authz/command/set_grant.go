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

// SetGrantInput は直接共有設定の入力を定義します
type SetGrantInput struct {
	Actor       uuid.UUID
	EntryID     uuid.UUID
	SubjectType string
	SubjectID   uuid.UUID
	Access      string
}

// SetGrantOutput は直接共有設定の出力を定義します
type SetGrantOutput struct {
	// Grant は None 指定で取り消した場合 nil です
	Grant   *authz.ShareGrant
	Revoked bool
	// Notified は未読カウンタを増やした受信者数
	Notified int
}

// SetGrantCommand は直接共有設定コマンドです
// 主体ごとに一つの共有を上書きし、None で取り消します
type SetGrantCommand struct {
	locker         repository.EntryLocker
	engine         service.AccessEngine
	grantRepo      authz.ShareGrantRepository
	membershipRepo repository.MembershipRepository
	inboxRepo      repository.SharedInboxRepository
}

// NewSetGrantCommand は新しいSetGrantCommandを作成します
func NewSetGrantCommand(
	locker repository.EntryLocker,
	engine service.AccessEngine,
	grantRepo authz.ShareGrantRepository,
	membershipRepo repository.MembershipRepository,
	inboxRepo repository.SharedInboxRepository,
) *SetGrantCommand {
	return &SetGrantCommand{
		locker:         locker,
		engine:         engine,
		grantRepo:      grantRepo,
		membershipRepo: membershipRepo,
		inboxRepo:      inboxRepo,
	}
}

// Execute は直接共有の設定を実行します
func (c *SetGrantCommand) Execute(ctx context.Context, input SetGrantInput) (*SetGrantOutput, error) {
	// 1. 入力のバリデーション
	subjectType, err := authz.NewSubjectType(input.SubjectType)
	if err != nil {
		return nil, apperror.NewValidationError(err.Error(), nil)
	}
	access, err := authz.NewAccessLevel(input.Access)
	if err != nil {
		return nil, apperror.NewValidationError(err.Error(), nil)
	}
	if subjectType.IsUser() && input.SubjectID == input.Actor {
		return nil, apperror.NewValidationError("cannot share an entry with yourself", nil)
	}

	var (
		output  *SetGrantOutput
		created *authz.ShareGrant
	)
	err = c.locker.WithEntryLock(ctx, input.EntryID, func(ctx context.Context) error {
		// 2. 管理権限の確認
		if _, err := c.engine.AuthorizeManage(ctx, input.EntryID, input.Actor); err != nil {
			return err
		}

		// 3. 既存の共有を取得
		existing, err := c.grantRepo.FindBySubject(ctx, input.EntryID, subjectType, input.SubjectID)
		if err != nil && !apperror.IsNotFound(err) {
			return err
		}
		if apperror.IsNotFound(err) {
			existing = nil
		}

		// 4. None は取り消し
		if access.IsNone() {
			if existing == nil {
				output = &SetGrantOutput{}
				return nil
			}
			if err := c.grantRepo.Delete(ctx, input.EntryID, subjectType, input.SubjectID); err != nil {
				return err
			}
			logger.Info(ctx, "share grant revoked", "entry_id", input.EntryID, "subject_type", subjectType.String(), "subject_id", input.SubjectID)
			output = &SetGrantOutput{Revoked: true}
			return nil
		}

		// 5. 上書き保存
		grant := authz.NewShareGrant(input.EntryID, subjectType, input.SubjectID, access, input.Actor)
		if existing != nil {
			grant.ID = existing.ID
		}
		if err := c.grantRepo.Upsert(ctx, grant); err != nil {
			return err
		}
		logger.Info(ctx, "share grant set", "entry_id", input.EntryID, "subject_type", subjectType.String(), "subject_id", input.SubjectID, "access", access.String())

		output = &SetGrantOutput{Grant: grant}
		if existing == nil {
			created = grant
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 6. コミット後、新たに共有された受信者の未読数を増やす
	if created != nil {
		output.Notified = c.notifyRecipients(ctx, created, input.Actor)
	}
	return output, nil
}

// notifyRecipients は共有の受信者の未読カウンタを増やします
// カウンタの更新に失敗しても共有自体は成功として扱います
func (c *SetGrantCommand) notifyRecipients(ctx context.Context, grant *authz.ShareGrant, actor uuid.UUID) int {
	recipients := []uuid.UUID{grant.SubjectID}
	if grant.SubjectType.IsGroup() {
		members, err := c.membershipRepo.FindGroupMemberIDs(ctx, grant.SubjectID)
		if err != nil {
			logger.Warn(ctx, "failed to load group members for shared inbox", "error", err, "group_id", grant.SubjectID)
			return 0
		}
		recipients = make([]uuid.UUID, 0, len(members))
		for _, id := range members {
			if id != actor {
				recipients = append(recipients, id)
			}
		}
	}
	if len(recipients) == 0 {
		return 0
	}

	if err := c.inboxRepo.Increment(ctx, recipients); err != nil {
		logger.Warn(ctx, "failed to increment shared inbox", "error", err, "entry_id", grant.EntryID)
		return 0
	}
	return len(recipients)
}
