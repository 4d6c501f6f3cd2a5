package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
)

// HTTPRecorder はHTTPリクエストのメトリクスを記録します
type HTTPRecorder interface {
	RecordHTTPRequest(route, method string, status int, d time.Duration)
}

// Metrics はルート単位でリクエスト数とレイテンシを記録するミドルウェアを返します
func Metrics(recorder HTTPRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			recorder.RecordHTTPRequest(route, c.Request().Method, statusOf(c, err), time.Since(start))
			return err
		}
	}
}

// statusOf はエラーハンドラー適用前のレスポンスステータスを推定します
func statusOf(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
