package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/infrastructure/cache"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/logger"
)

const (
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-RateLimit-Reset"
)

// RateLimiter はレート制限の判定を行います
type RateLimiter interface {
	Allow(ctx context.Context, identifier string, config cache.RateLimitConfig) (*cache.RateLimitResult, error)
}

// RateLimitMiddleware はレート制限ミドルウェアを提供します
// limiter が nil の場合は制限を行いません
type RateLimitMiddleware struct {
	limiter RateLimiter
}

// NewRateLimitMiddleware は新しいRateLimitMiddlewareを作成します
func NewRateLimitMiddleware(limiter RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// PasswordAttempts はリンクパスワードの試行をクライアントIPとリンクトークンの組で制限します
// パスワードを伴わないGETリクエストは数えません
func (m *RateLimitMiddleware) PasswordAttempts(config cache.RateLimitConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m == nil || m.limiter == nil {
				return next(c)
			}
			if c.Request().Method == http.MethodGet && c.Request().Header.Get(HeaderLinkPassword) == "" {
				return next(c)
			}

			identifier := c.RealIP() + ":" + c.Param("token")
			result, err := m.limiter.Allow(c.Request().Context(), identifier, config)
			if err != nil {
				// レート制限チェックに失敗した場合はリクエストを許可
				logger.Warn(c.Request().Context(), "rate limit check failed", "error", err)
				return next(c)
			}

			setRateLimitHeaders(c, result)

			if !result.Allowed {
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(result.RetryAt)))
				return apperror.NewTooManyRequestsError("too many password attempts")
			}

			return next(c)
		}
	}
}

// setRateLimitHeaders はレート制限ヘッダーを設定します
func setRateLimitHeaders(c echo.Context, result *cache.RateLimitResult) {
	c.Response().Header().Set(HeaderRateLimitRemaining, strconv.Itoa(result.Remaining))
	c.Response().Header().Set(HeaderRateLimitReset, result.ResetAt.UTC().Format(time.RFC3339))
}

func retryAfterSeconds(retryAt time.Time) int {
	secs := int(time.Until(retryAt).Seconds()) + 1
	if secs < 1 {
		return 1
	}
	return secs
}
