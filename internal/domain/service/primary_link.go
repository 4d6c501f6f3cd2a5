package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/logger"
)

// FindLivePrimaryLink はエントリの有効な主リンクを取得します
// 期限切れの主リンクは主リンク指定を外し、NotFound を返します
// エントリロックの内側で呼び出してください
func FindLivePrimaryLink(ctx context.Context, linkRepo repository.ShareLinkRepository, entryID uuid.UUID, now time.Time) (*entity.ShareLink, error) {
	link, err := linkRepo.FindPrimaryByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if !link.IsExpired(now) {
		return link, nil
	}

	link.Demote()
	if err := linkRepo.Update(ctx, link); err != nil {
		return nil, err
	}
	logger.Info(ctx, "expired primary link demoted", "entry_id", entryID, "link_id", link.ID)
	return nil, apperror.NewNotFoundError("share link")
}
