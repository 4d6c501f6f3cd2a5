package di

import (
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/middleware"
)

// Middlewares はアプリケーションのミドルウェアを保持します
type Middlewares struct {
	Credential *middleware.CredentialMiddleware
	RateLimit  *middleware.RateLimitMiddleware
	// HTTPRecorder はメトリクス無効時は nil です
	HTTPRecorder middleware.HTTPRecorder
}

// NewMiddlewares はContainerから全てのミドルウェアを初期化します
func NewMiddlewares(c *Container) *Middlewares {
	m := &Middlewares{
		Credential: middleware.NewCredentialMiddleware(c.JWTService, c.config.Sharing.SessionCookieName),
	}

	// メモリバックエンドではRedisがないため制限しない
	if c.RateLimiter != nil {
		m.RateLimit = middleware.NewRateLimitMiddleware(c.RateLimiter)
	} else {
		m.RateLimit = middleware.NewRateLimitMiddleware(nil)
	}

	if c.Metrics != nil {
		m.HTTPRecorder = c.Metrics
	}

	return m
}
