package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/infrastructure/di"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/middleware"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/router"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/server"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/config"
)

// TestJWTSecret is the signing key used by test servers
const TestJWTSecret = "test-secret-key-0123456789abcdef0123"

// TestServer holds all test server dependencies
type TestServer struct {
	Echo      *echo.Echo
	Container *di.Container
	Config    *config.Config
	Registry  *prometheus.Registry
}

// DefaultTestConfig returns a configuration for an in-memory server
func DefaultTestConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Port: 0},
		Storage: config.StorageConfig{Backend: config.StorageBackendMemory},
		JWT: config.JWTConfig{
			SecretKey:         TestJWTSecret,
			Issuer:            "docspace-test",
			Audience:          []string{"docspace-api-test"},
			AccessTokenExpiry: 15 * time.Minute,
		},
		Sharing: config.SharingConfig{
			PublicURL:            "http://docs.test",
			AnonymousSessionTTL:  time.Hour,
			SessionCookieName:    "anonymous_session",
			PurgeInterval:        time.Hour,
			ExpiredLinkRetention: 24 * time.Hour,
		},
		Security: config.SecurityConfig{CORSOrigins: []string{"http://localhost:3000"}},
		Log:      config.LogConfig{Level: "error", Format: "text"},
		Metrics:  config.MetricsConfig{Enabled: true},
	}
}

// NewTestServer creates a fully wired server over the in-memory backend
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	return NewTestServerWithConfig(t, DefaultTestConfig())
}

// NewTestServerWithConfig creates a server from cfg
func NewTestServerWithConfig(t *testing.T, cfg *config.Config) *TestServer {
	t.Helper()
	return NewTestServerWithOptions(t, cfg, di.Options{})
}

// NewTestServerWithOptions creates a server from cfg using pre-connected backends in opts
func NewTestServerWithOptions(t *testing.T, cfg *config.Config, opts di.Options) *TestServer {
	t.Helper()

	registry := prometheus.NewRegistry()
	opts.Registry = registry
	container, err := di.NewContainerWithOptions(context.Background(), cfg, opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	srv := server.NewServer(server.DefaultConfig())
	e := srv.Echo()

	middlewares := di.NewMiddlewares(container)
	e.Use(middleware.RequestID())
	if middlewares.HTTPRecorder != nil {
		e.Use(middleware.Metrics(middlewares.HTTPRecorder))
	}
	e.Use(middleware.Recover())

	router.NewRouter(e, di.NewHandlers(container), middlewares).Setup()

	return &TestServer{
		Echo:      e,
		Container: container,
		Config:    cfg,
		Registry:  registry,
	}
}

// TokenFor issues an access token for userID
func (s *TestServer) TokenFor(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := s.Container.JWTService.GenerateAccessToken(userID)
	require.NoError(t, err)
	return token
}

// Do performs a request against the server
func (s *TestServer) Do(t *testing.T, req HTTPRequest) *HTTPResponse {
	t.Helper()
	return DoRequest(t, s.Echo, req)
}
