package command

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/service"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/logger"
)

// SetLinkInput は共有リンク作成・更新の入力を定義します
// LinkID が nil の場合は作成、指定された場合は更新です
type SetLinkInput struct {
	Actor        uuid.UUID
	EntryID      uuid.UUID
	LinkID       *uuid.UUID
	Access       valueobject.Patch[authz.AccessLevel]
	Password     valueobject.Patch[string]
	ExpiresAt    valueobject.Patch[time.Time]
	DenyDownload valueobject.Patch[bool]
	Internal     valueobject.Patch[bool]
	Title        valueobject.Patch[string]
}

// SetLinkOutput は共有リンク作成・更新の出力を定義します
type SetLinkOutput struct {
	// Link は操作後のリンク
	// 変更が無視された場合と、フォルダ・ファイルのリンクを削除した場合は nil です
	Link *entity.ShareLink
	// Replacement は削除された主リンクの代わりに発行されたリンク
	Replacement *entity.ShareLink
	// Deleted はリンクが削除されたかを示します
	Deleted bool
}

// SetLinkCommand は共有リンク作成・更新コマンドです
type SetLinkCommand struct {
	locker   repository.EntryLocker
	engine   service.AccessEngine
	linkRepo repository.ShareLinkRepository
	now      func() time.Time
}

// NewSetLinkCommand は新しいSetLinkCommandを作成します
func NewSetLinkCommand(
	locker repository.EntryLocker,
	engine service.AccessEngine,
	linkRepo repository.ShareLinkRepository,
) *SetLinkCommand {
	return &SetLinkCommand{
		locker:   locker,
		engine:   engine,
		linkRepo: linkRepo,
		now:      time.Now,
	}
}

// Execute は共有リンクの作成・更新を実行します
func (c *SetLinkCommand) Execute(ctx context.Context, input SetLinkInput) (*SetLinkOutput, error) {
	var output *SetLinkOutput
	err := c.locker.WithEntryLock(ctx, input.EntryID, func(ctx context.Context) error {
		// 1. 管理権限の確認
		chain, err := c.engine.AuthorizeManage(ctx, input.EntryID, input.Actor)
		if err != nil {
			return err
		}

		// 2. 文脈がリンクを持てるか確認
		policy := service.LinkPolicyFor(chain)
		if err := policy.CheckLinkCapable(); err != nil {
			return err
		}

		if input.LinkID == nil {
			output, err = c.create(ctx, chain, policy, input)
		} else {
			output, err = c.update(ctx, chain, policy, input)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

// create はリンクを作成します
func (c *SetLinkCommand) create(ctx context.Context, chain entity.EntryChain, policy service.LinkPolicy, input SetLinkInput) (*SetLinkOutput, error) {
	access := authz.AccessRead
	if v, ok := input.Access.Value(); ok {
		access = v
	}
	if access.IsNone() {
		return nil, apperror.NewValidationError("access level none cannot be used to create a link", nil)
	}
	if err := policy.CheckLevel(access); err != nil {
		return nil, err
	}

	_, err := service.FindLivePrimaryLink(ctx, c.linkRepo, input.EntryID, c.now())
	if err != nil && !apperror.IsNotFound(err) {
		return nil, err
	}
	primary := apperror.IsNotFound(err)

	link, err := entity.NewShareLink(chain.Target(), access, primary, input.Actor)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}

	// 内部限定の切替を認めない文脈では作成時の指定も無視する
	if policy.IgnoresInternalToggle() {
		input.Internal = valueobject.Unset[bool]()
	}
	if err := c.applyFields(link, policy, input); err != nil {
		return nil, err
	}

	if err := c.linkRepo.Create(ctx, link); err != nil {
		return nil, err
	}

	logger.Info(ctx, "share link created", "entry_id", input.EntryID, "link_id", link.ID, "access", link.Access.String())
	return &SetLinkOutput{Link: link}, nil
}

// update はリンクを更新します
func (c *SetLinkCommand) update(ctx context.Context, chain entity.EntryChain, policy service.LinkPolicy, input SetLinkInput) (*SetLinkOutput, error) {
	link, err := c.linkRepo.FindByID(ctx, *input.LinkID)
	if err != nil {
		return nil, err
	}
	if !link.IsForEntry(input.EntryID) {
		return nil, apperror.NewNotFoundError("share link")
	}

	// ルーム種別が内部限定の切替を認めない場合はリクエスト全体を無視する
	if v, ok := input.Internal.Value(); ok && v && policy.IgnoresInternalToggle() {
		logger.Debug(ctx, "internal toggle ignored for room link", "entry_id", input.EntryID, "link_id", link.ID)
		return &SetLinkOutput{}, nil
	}

	if v, ok := input.Access.Value(); ok {
		if v.IsNone() {
			return c.delete(ctx, chain, policy, link, input.Actor)
		}
		if err := policy.CheckLevel(v); err != nil {
			return nil, err
		}
		link.UpdateAccess(v)
	}

	if err := c.applyFields(link, policy, input); err != nil {
		return nil, err
	}

	if err := c.linkRepo.Update(ctx, link); err != nil {
		return nil, err
	}

	logger.Info(ctx, "share link updated", "entry_id", input.EntryID, "link_id", link.ID)
	return &SetLinkOutput{Link: link}, nil
}

// delete はリンクを削除し、必要であれば新しい主リンクで置き換えます
func (c *SetLinkCommand) delete(ctx context.Context, chain entity.EntryChain, policy service.LinkPolicy, link *entity.ShareLink, actor uuid.UUID) (*SetLinkOutput, error) {
	if err := c.linkRepo.Delete(ctx, link.ID); err != nil {
		return nil, err
	}
	output := &SetLinkOutput{Deleted: true}
	logger.Info(ctx, "share link deleted", "entry_id", link.EntryID, "link_id", link.ID)

	if !link.Primary {
		return output, nil
	}

	shareable, err := c.stillShareable(ctx, chain, policy)
	if err != nil {
		return nil, err
	}
	if !shareable {
		return output, nil
	}

	replacement, err := link.Replacement(chain.Target(), actor)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}
	if policy.ForcesPublic() {
		replacement.ForcePublic()
	}
	if err := c.linkRepo.Create(ctx, replacement); err != nil {
		return nil, err
	}
	output.Replacement = replacement
	if policy.IsRoomLink() {
		output.Link = replacement
	}

	logger.Info(ctx, "share link replaced", "entry_id", link.EntryID, "old_link_id", link.ID, "link_id", replacement.ID)
	return output, nil
}

// stillShareable は主リンク削除後もエントリが共有状態を保つかを判定します
// ルーム自身は常に、配下のエントリはルームが有効な主リンクを公開している場合に共有状態です
func (c *SetLinkCommand) stillShareable(ctx context.Context, chain entity.EntryChain, policy service.LinkPolicy) (bool, error) {
	if policy.IsRoomLink() {
		return true, nil
	}
	room := chain.Room()
	if room == nil {
		return false, nil
	}
	roomLink, err := c.linkRepo.FindPrimaryByEntryID(ctx, room.ID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return roomLink.IsLive(c.now()), nil
}

// applyFields はアクセスレベル以外のフィールドを適用します
func (c *SetLinkCommand) applyFields(link *entity.ShareLink, policy service.LinkPolicy, input SetLinkInput) error {
	switch input.Password.Op() {
	case valueobject.PatchSet:
		plaintext, _ := input.Password.Value()
		pw, err := valueobject.NewLinkPassword(plaintext)
		if err != nil {
			if errors.Is(err, valueobject.ErrLinkPasswordEmpty) || errors.Is(err, valueobject.ErrLinkPasswordTooLong) {
				return apperror.NewValidationError(err.Error(), []apperror.FieldError{{Field: "password", Message: err.Error()}})
			}
			return apperror.NewInternalError(err)
		}
		link.UpdatePassword(&pw)
	case valueobject.PatchClear:
		link.UpdatePassword(nil)
	}

	if !input.ExpiresAt.IsUnset() {
		if err := link.UpdateExpiry(input.ExpiresAt.ApplyTo(link.ExpiresAt), c.now()); err != nil {
			return apperror.NewValidationError(err.Error(), []apperror.FieldError{{Field: "expirationDate", Message: err.Error()}})
		}
	}

	if v, ok := input.DenyDownload.Value(); ok {
		link.UpdateDenyDownload(v)
	} else if input.DenyDownload.IsClear() {
		link.UpdateDenyDownload(false)
	}

	if v, ok := input.Internal.Value(); ok {
		link.UpdateInternal(v)
	} else if input.Internal.IsClear() {
		link.UpdateInternal(false)
	}

	if !input.Title.IsUnset() {
		v, _ := input.Title.Value()
		if err := link.UpdateTitle(v); err != nil {
			return apperror.NewValidationError(err.Error(), []apperror.FieldError{{Field: "title", Message: err.Error()}})
		}
	}

	// 公開ルーム配下のリンクは期限なし・外部公開に固定
	if policy.ForcesPublic() {
		link.ForcePublic()
	}
	return nil
}
