package query

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/service"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/logger"
)

// GetPrimaryLinkInput は主リンク取得の入力を定義します
type GetPrimaryLinkInput struct {
	Actor   uuid.UUID
	EntryID uuid.UUID
}

// GetPrimaryLinkOutput は主リンク取得の出力を定義します
type GetPrimaryLinkOutput struct {
	Link *entity.ShareLink
	// Created は既定リンクをこの呼び出しで作成したかを示します
	Created bool
}

// GetPrimaryLinkQuery は主リンク取得クエリです
// 主リンクがないか期限切れなら既定リンク（Read・外部公開・期限なし）を作成します
type GetPrimaryLinkQuery struct {
	locker   repository.EntryLocker
	engine   service.AccessEngine
	linkRepo repository.ShareLinkRepository
	now      func() time.Time
}

// NewGetPrimaryLinkQuery は新しいGetPrimaryLinkQueryを作成します
func NewGetPrimaryLinkQuery(
	locker repository.EntryLocker,
	engine service.AccessEngine,
	linkRepo repository.ShareLinkRepository,
) *GetPrimaryLinkQuery {
	return &GetPrimaryLinkQuery{
		locker:   locker,
		engine:   engine,
		linkRepo: linkRepo,
		now:      time.Now,
	}
}

// Execute は主リンクを取得します
func (q *GetPrimaryLinkQuery) Execute(ctx context.Context, input GetPrimaryLinkInput) (*GetPrimaryLinkOutput, error) {
	var output *GetPrimaryLinkOutput
	err := q.locker.WithEntryLock(ctx, input.EntryID, func(ctx context.Context) error {
		chain, err := q.engine.AuthorizeManage(ctx, input.EntryID, input.Actor)
		if err != nil {
			return err
		}
		policy := service.LinkPolicyFor(chain)
		if err := policy.CheckLinkCapable(); err != nil {
			return err
		}

		link, err := service.FindLivePrimaryLink(ctx, q.linkRepo, input.EntryID, q.now())
		if err == nil {
			output = &GetPrimaryLinkOutput{Link: link}
			return nil
		}
		if !apperror.IsNotFound(err) {
			return err
		}

		link, err = entity.NewDefaultShareLink(chain.Target(), input.Actor)
		if err != nil {
			return apperror.NewInternalError(err)
		}
		if err := policy.CheckLevel(link.Access); err != nil {
			return err
		}
		if policy.ForcesPublic() {
			link.ForcePublic()
		}
		if err := q.linkRepo.Create(ctx, link); err != nil {
			return err
		}

		logger.Info(ctx, "default share link created", "entry_id", input.EntryID, "link_id", link.ID)
		output = &GetPrimaryLinkOutput{Link: link, Created: true}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}
