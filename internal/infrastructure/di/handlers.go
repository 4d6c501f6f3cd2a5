package di

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/handler"
)

// Handlers はアプリケーションのハンドラーを保持します
type Handlers struct {
	Health    *handler.HealthHandler
	Access    *handler.AccessHandler
	Entry     *handler.EntryHandler
	Grant     *handler.GrantHandler
	ShareLink *handler.ShareLinkHandler
	Shared    *handler.SharedHandler

	// Metrics は /metrics のハンドラー（無効時は nil）
	Metrics http.Handler
}

// NewHandlers はContainerから全てのハンドラーを初期化します
func NewHandlers(c *Container) *Handlers {
	h := &Handlers{
		Health: handler.NewHealthHandler(c.HealthCheckers()...),
		Access: handler.NewAccessHandler(c.Sharing.ResolveAccess),
		Entry:  handler.NewEntryHandler(c.Entry.CreateEntry, c.Entry.GetEntry),
		Grant: handler.NewGrantHandler(
			c.Authz.SetGrant,
			c.Authz.SetRoomMember,
			c.Authz.CreateGroup,
			c.Authz.AddGroupMember,
			c.Authz.ListGrants,
		),
		ShareLink: handler.NewShareLinkHandler(
			c.Sharing.SetLink,
			c.Sharing.UnlockLink,
			c.Sharing.GetPrimaryLink,
			c.Sharing.ListLinks,
			c.Sharing.LinkStatus,
			c.config.Sharing.PublicURL,
			handler.SessionCookieConfig{
				Name:   c.config.Sharing.SessionCookieName,
				Secure: c.config.Sharing.SecureCookies,
			},
		),
		Shared: handler.NewSharedHandler(c.Sharing.MarkSharedSeen, c.Sharing.GetNewItemsCount),
	}

	if c.Metrics != nil {
		h.Metrics = promhttp.HandlerFor(c.Registry, promhttp.HandlerOpts{Registry: c.Registry})
	}

	return h
}

// HealthCheckers は接続中の外部依存のヘルスチェッカーを返します
func (c *Container) HealthCheckers() []handler.HealthChecker {
	var checkers []handler.HealthChecker
	if c.PgClient != nil {
		checkers = append(checkers, c.PgClient)
	}
	if c.RedisClient != nil {
		checkers = append(checkers, c.RedisClient)
	}
	return checkers
}
