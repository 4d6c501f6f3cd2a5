package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/logger"
)

// ErrorResponse はエラーレスポンス構造を定義します
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
	Meta  any       `json:"meta"`
}

// ErrorBody はエラー本体を定義します
type ErrorBody struct {
	Code    string                `json:"code"`
	Message string                `json:"message"`
	Details []apperror.FieldError `json:"details,omitempty"`
}

// CustomHTTPErrorHandler はカスタムエラーハンドラーです
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			logger.Error(c.Request().Context(), "internal error", "error", appErr.Error())
		}
		writeError(c, appErr.HTTPStatus, ErrorBody{
			Code:    string(appErr.Code),
			Message: appErr.Message,
			Details: appErr.Details,
		})
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		writeError(c, he.Code, ErrorBody{
			Code:    echoErrorCode(he.Code),
			Message: fmt.Sprintf("%v", he.Message),
		})
		return
	}

	logger.Error(c.Request().Context(), "unknown error", "error", err.Error())
	writeError(c, http.StatusInternalServerError, ErrorBody{
		Code:    string(apperror.CodeInternalError),
		Message: "internal server error",
	})
}

func writeError(c echo.Context, status int, body ErrorBody) {
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, ErrorResponse{Error: body})
}

// echoErrorCode はEchoのHTTPエラーをエラーコードに変換します
func echoErrorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return string(apperror.CodeInvalidRequest)
	case http.StatusUnauthorized:
		return string(apperror.CodeUnauthorized)
	case http.StatusForbidden:
		return string(apperror.CodeForbidden)
	case http.StatusNotFound:
		return string(apperror.CodeNotFound)
	case http.StatusTooManyRequests:
		return string(apperror.CodeTooManyRequests)
	default:
		if status >= http.StatusInternalServerError {
			return string(apperror.CodeInternalError)
		}
		return http.StatusText(status)
	}
}
