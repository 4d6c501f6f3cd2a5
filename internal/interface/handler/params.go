package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/middleware"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
)

// pathUUID はパスパラメータをUUIDとして取得します
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperror.NewValidationError("invalid "+name, []apperror.FieldError{{Field: name, Message: "must be a valid UUID"}})
	}
	return id, nil
}

// currentUser は認証済みユーザーIDを取得します
func currentUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserUUID(c)
	if !ok {
		return uuid.Nil, apperror.NewUnauthorizedError("authentication required")
	}
	return userID, nil
}

// bindAndValidate はリクエストボディをバインドして検証します
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return apperror.NewInvalidRequestError("invalid request body")
	}
	return c.Validate(req)
}
