package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/dto/response"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/middleware"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/presenter"
	sharingqry "github.com/ONLYOFFICE/DocSpace-server-sub006/internal/usecase/sharing/query"
)

// AccessHandler は実効アクセス解決のHTTPハンドラーです
type AccessHandler struct {
	resolveAccessQuery *sharingqry.ResolveAccessQuery
}

// NewAccessHandler は新しいAccessHandlerを作成します
func NewAccessHandler(resolveAccessQuery *sharingqry.ResolveAccessQuery) *AccessHandler {
	return &AccessHandler{
		resolveAccessQuery: resolveAccessQuery,
	}
}

// ResolveAccess はリクエストの資格情報でエントリへの実効アクセスを解決します
// @Summary 実効アクセス解決
// @Description Bearerトークン、リンクトークン、匿名セッションからエントリへのアクセスを解決します
// @Tags Access
// @Produce json
// @Param id path string true "エントリID"
// @Param share query string false "共有リンクトークン"
// @Success 200 {object} handler.SwaggerEffectiveAccessResponse
// @Failure 401 {object} handler.SwaggerErrorResponse
// @Failure 403 {object} handler.SwaggerErrorResponse
// @Failure 404 {object} handler.SwaggerErrorResponse
// @Router /entries/{id}/access [get]
func (h *AccessHandler) ResolveAccess(c echo.Context) error {
	entryID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.resolveAccessQuery.Execute(c.Request().Context(), sharingqry.ResolveAccessInput{
		EntryID:    entryID,
		Credential: middleware.GetCredential(c),
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.ToEffectiveAccessResponse(output.Access))
}
