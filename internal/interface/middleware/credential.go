package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/jwt"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/logger"
)

const (
	HeaderLinkToken    = "X-Link-Token"
	HeaderLinkSession  = "X-Link-Session"
	HeaderLinkPassword = "X-Link-Password"
	QueryLinkToken     = "share"

	ContextKeyCredential = "credential"
	ContextKeyUserID     = "user_id"
)

// AccessTokenValidator はアクセストークンの検証を行います
type AccessTokenValidator interface {
	ValidateAccessToken(tokenString string) (*jwt.AccessTokenClaims, error)
}

// CredentialMiddleware はリクエストの資格情報を組み立てるミドルウェアを提供します
type CredentialMiddleware struct {
	tokens     AccessTokenValidator
	cookieName string
}

// NewCredentialMiddleware は新しいCredentialMiddlewareを作成します
func NewCredentialMiddleware(tokens AccessTokenValidator, sessionCookieName string) *CredentialMiddleware {
	return &CredentialMiddleware{
		tokens:     tokens,
		cookieName: sessionCookieName,
	}
}

// Resolve はBearerトークン、リンクトークン、匿名セッションから資格情報を組み立てます
// Bearerトークンは任意ですが、提示された場合は有効でなければなりません
func (m *CredentialMiddleware) Resolve() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var cred authz.Credential

			if raw := bearerToken(c); raw != "" {
				claims, err := m.tokens.ValidateAccessToken(raw)
				if err != nil {
					return apperror.NewUnauthorizedError("invalid or expired token")
				}
				cred = cred.WithUser(claims.UserID)
				c.Set(ContextKeyUserID, claims.UserID)
				ctx := logger.ContextWithUserID(c.Request().Context(), claims.UserID.String())
				c.SetRequest(c.Request().WithContext(ctx))
			}

			cred.LinkToken = linkToken(c)
			if key := m.sessionKey(c); key != "" {
				cred = cred.WithSession(key)
			}

			c.Set(ContextKeyCredential, cred)
			return next(c)
		}
	}
}

// RequireUser は認証済みプリンシパルを必須とするミドルウェアを返します
func (m *CredentialMiddleware) RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := GetUserUUID(c); !ok {
				return apperror.NewUnauthorizedError("authentication required")
			}
			return next(c)
		}
	}
}

func (m *CredentialMiddleware) sessionKey(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return strings.TrimSpace(c.Request().Header.Get(HeaderLinkSession))
}

func bearerToken(c echo.Context) string {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func linkToken(c echo.Context) string {
	if token := strings.TrimSpace(c.Request().Header.Get(HeaderLinkToken)); token != "" {
		return token
	}
	return strings.TrimSpace(c.QueryParam(QueryLinkToken))
}

// GetCredential はコンテキストから資格情報を取得します
func GetCredential(c echo.Context) authz.Credential {
	if cred, ok := c.Get(ContextKeyCredential).(authz.Credential); ok {
		return cred
	}
	return authz.Credential{}
}

// GetUserUUID はコンテキストから認証済みユーザーIDを取得します
func GetUserUUID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyUserID).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
