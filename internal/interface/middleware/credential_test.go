package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/jwt"
)

func newTestJWT() *jwt.JWTService {
	cfg := jwt.DefaultConfig()
	cfg.SecretKey = "0123456789abcdef0123456789abcdef"
	return jwt.NewJWTService(cfg)
}

func runCredential(t *testing.T, m *CredentialMiddleware, req *http.Request) (authz.Credential, error) {
	t.Helper()
	e := echo.New()
	c := e.NewContext(req, httptest.NewRecorder())

	var got authz.Credential
	err := m.Resolve()(func(c echo.Context) error {
		got = GetCredential(c)
		return nil
	})(c)
	return got, err
}

func TestCredential_Anonymous(t *testing.T) {
	m := NewCredentialMiddleware(newTestJWT(), "anonymous_session")
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	cred, err := runCredential(t, m, req)

	require.NoError(t, err)
	assert.True(t, cred.IsEmpty())
}

func TestCredential_BearerLinkTokenAndCookie(t *testing.T) {
	svc := newTestJWT()
	m := NewCredentialMiddleware(svc, "anonymous_session")
	userID := uuid.New()
	token, err := svc.GenerateAccessToken(userID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/?share=query-token", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	req.Header.Set(HeaderLinkToken, "header-token")
	req.AddCookie(&http.Cookie{Name: "anonymous_session", Value: "cookie-key"})
	req.Header.Set(HeaderLinkSession, "header-key")

	cred, err := runCredential(t, m, req)

	require.NoError(t, err)
	require.True(t, cred.IsAuthenticated())
	assert.Equal(t, userID, *cred.UserID)
	assert.Equal(t, "header-token", cred.LinkToken)
	assert.Equal(t, "cookie-key", cred.SessionKey)
}

func TestCredential_QueryTokenAndSessionHeader(t *testing.T) {
	m := NewCredentialMiddleware(newTestJWT(), "anonymous_session")
	req := httptest.NewRequest(http.MethodGet, "/?share=query-token", nil)
	req.Header.Set(HeaderLinkSession, "header-key")

	cred, err := runCredential(t, m, req)

	require.NoError(t, err)
	assert.False(t, cred.IsAuthenticated())
	assert.Equal(t, "query-token", cred.LinkToken)
	assert.Equal(t, "header-key", cred.SessionKey)
}

func TestCredential_InvalidBearerIsRejected(t *testing.T) {
	m := NewCredentialMiddleware(newTestJWT(), "anonymous_session")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-jwt")

	_, err := runCredential(t, m, req)

	assert.True(t, apperror.IsUnauthorized(err))
}

func TestRequireUser(t *testing.T) {
	m := NewCredentialMiddleware(newTestJWT(), "anonymous_session")
	e := echo.New()
	handler := m.RequireUser()(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.True(t, apperror.IsUnauthorized(handler(c)))

	rec := httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.Set(ContextKeyUserID, uuid.New())
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
