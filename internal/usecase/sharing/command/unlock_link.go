package command

import (
	"context"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/service"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/logger"
)

// UnlockLinkInput はパスワード保護リンク解除の入力を定義します
type UnlockLinkInput struct {
	Token    string
	Password string
}

// UnlockLinkOutput はパスワード保護リンク解除の出力を定義します
type UnlockLinkOutput struct {
	Status valueobject.ShareLinkStatus
	Link   *entity.ShareLink
	// Session はパスワードのないリンクでは nil です
	Session *entity.AnonymousSession
}

// UnlockLinkCommand はパスワード保護リンク解除コマンドです
type UnlockLinkCommand struct {
	gate service.LinkGate
}

// NewUnlockLinkCommand は新しいUnlockLinkCommandを作成します
func NewUnlockLinkCommand(gate service.LinkGate) *UnlockLinkCommand {
	return &UnlockLinkCommand{gate: gate}
}

// Execute はパスワードを検証して匿名セッションを発行します
func (c *UnlockLinkCommand) Execute(ctx context.Context, input UnlockLinkInput) (*UnlockLinkOutput, error) {
	link, err := c.gate.Lookup(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	session, err := c.gate.Unlock(ctx, link, input.Password)
	if err != nil {
		return nil, err
	}
	if session != nil {
		logger.Info(ctx, "share link unlocked", "link_id", link.ID)
	}

	return &UnlockLinkOutput{
		Status:  valueobject.ShareLinkStatusOk,
		Link:    link,
		Session: session,
	}, nil
}
