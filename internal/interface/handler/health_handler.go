package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthChecker は依存サービスの疎通を確認するインターフェースです
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

// HealthHandler はヘルスチェック関連のHTTPハンドラーです
type HealthHandler struct {
	checkers []HealthChecker
	timeout  time.Duration
}

// NewHealthHandler は新しいHealthHandlerを作成します
func NewHealthHandler(checkers ...HealthChecker) *HealthHandler {
	return &HealthHandler{
		checkers: checkers,
		timeout:  3 * time.Second,
	}
}

// HealthResponse はヘルスチェックレスポンスを定義します
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadyResponse はレディネスチェックレスポンスを定義します
type ReadyResponse struct {
	Status   string                   `json:"status"`
	Services map[string]ServiceStatus `json:"services,omitempty"`
}

// ServiceStatus はサービスのステータスを定義します
type ServiceStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Check はライブネスチェックを実行します
// GET /healthz
func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
	})
}

// Ready はレディネスチェックを実行します
// GET /readyz
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	services := make(map[string]ServiceStatus, len(h.checkers))
	allHealthy := true

	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, checker := range h.checkers {
		wg.Add(1)
		go func(checker HealthChecker) {
			defer wg.Done()

			err := checker.Check(ctx)
			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				services[checker.Name()] = ServiceStatus{
					Status:  "unhealthy",
					Message: err.Error(),
				}
				allHealthy = false
			} else {
				services[checker.Name()] = ServiceStatus{
					Status: "healthy",
				}
			}
		}(checker)
	}

	wg.Wait()

	status := "ready"
	statusCode := http.StatusOK
	if !allHealthy {
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, ReadyResponse{
		Status:   status,
		Services: services,
	})
}
