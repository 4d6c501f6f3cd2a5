package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/infrastructure/cache"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/infrastructure/di"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/presenter"
)

// Router はルート定義を管理します
type Router struct {
	echo        *echo.Echo
	handlers    *di.Handlers
	middlewares *di.Middlewares
}

// NewRouter は新しいRouterを作成します
func NewRouter(e *echo.Echo, handlers *di.Handlers, middlewares *di.Middlewares) *Router {
	return &Router{
		echo:        e,
		handlers:    handlers,
		middlewares: middlewares,
	}
}

// Setup は全てのルートを設定します
func (r *Router) Setup() {
	r.setupHealthRoutes()
	r.setupAPIRoutes()
}

// setupHealthRoutes はヘルスチェックとメトリクスのルートを設定します
func (r *Router) setupHealthRoutes() {
	if r.handlers.Health != nil {
		r.echo.GET("/healthz", r.handlers.Health.Check)
		r.echo.GET("/readyz", r.handlers.Health.Ready)
	}
	if r.handlers.Metrics != nil {
		r.echo.GET("/metrics", echo.WrapHandler(r.handlers.Metrics))
	}
}

// setupAPIRoutes はAPIルートを設定します
func (r *Router) setupAPIRoutes() {
	api := r.echo.Group("/api/v1", r.middlewares.Credential.Resolve())

	api.GET("/", func(c echo.Context) error {
		return presenter.OK(c, map[string]string{
			"message": "DocSpace sharing API v1",
		})
	})

	r.setupEntryRoutes(api)
	r.setupGrantRoutes(api)
	r.setupShareRoutes(api)
}

// setupEntryRoutes はエントリと共有リンク管理のルートを設定します
func (r *Router) setupEntryRoutes(api *echo.Group) {
	requireUser := r.middlewares.Credential.RequireUser()

	entries := api.Group("/entries")
	entries.POST("", r.handlers.Entry.CreateEntry, requireUser)
	entries.GET("/:id", r.handlers.Entry.GetEntry)
	entries.GET("/:id/access", r.handlers.Access.ResolveAccess)

	entries.GET("/:id/links/primary", r.handlers.ShareLink.GetPrimaryLink, requireUser)
	entries.GET("/:id/links", r.handlers.ShareLink.ListLinks, requireUser)
	entries.PUT("/:id/links", r.handlers.ShareLink.SetLink, requireUser)

	entries.GET("/:id/grants", r.handlers.Grant.ListGrants, requireUser)
	entries.PUT("/:id/grants", r.handlers.Grant.SetGrant, requireUser)
}

// setupGrantRoutes はメンバーシップ関連ルートを設定します
func (r *Router) setupGrantRoutes(api *echo.Group) {
	requireUser := r.middlewares.Credential.RequireUser()

	api.PUT("/rooms/:id/members", r.handlers.Grant.SetRoomMember, requireUser)
	api.POST("/groups", r.handlers.Grant.CreateGroup, requireUser)
	api.POST("/groups/:id/members", r.handlers.Grant.AddGroupMember, requireUser)

	shared := api.Group("/shared", requireUser)
	shared.GET("/new-count", r.handlers.Shared.NewItemsCount)
	shared.POST("/seen", r.handlers.Shared.MarkSeen)
}

// setupShareRoutes は共有リンクの公開ルートを設定します（認証不要）
func (r *Router) setupShareRoutes(api *echo.Group) {
	passwordLimit := r.middlewares.RateLimit.PasswordAttempts(cache.RateLimitLinkPassword)

	share := api.Group("/share")
	share.GET("/:token/status", r.handlers.ShareLink.Status, passwordLimit)
	share.POST("/:token/unlock", r.handlers.ShareLink.Unlock, passwordLimit)
}
