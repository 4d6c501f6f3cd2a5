package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/dto/response"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/presenter"
	sharingcmd "github.com/ONLYOFFICE/DocSpace-server-sub006/internal/usecase/sharing/command"
	sharingqry "github.com/ONLYOFFICE/DocSpace-server-sub006/internal/usecase/sharing/query"
)

// SharedHandler は「共有されたアイテム」の未読カウンタのHTTPハンドラーです
type SharedHandler struct {
	markSharedSeenCmd     *sharingcmd.MarkSharedSeenCommand
	getNewItemsCountQuery *sharingqry.GetNewItemsCountQuery
}

// NewSharedHandler は新しいSharedHandlerを作成します
func NewSharedHandler(
	markSharedSeenCmd *sharingcmd.MarkSharedSeenCommand,
	getNewItemsCountQuery *sharingqry.GetNewItemsCountQuery,
) *SharedHandler {
	return &SharedHandler{
		markSharedSeenCmd:     markSharedSeenCmd,
		getNewItemsCountQuery: getNewItemsCountQuery,
	}
}

// NewItemsCount は未読の共有アイテム数を取得します
// @Summary 未読共有アイテム数
// @Tags Shared
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handler.SwaggerNewItemsCountResponse
// @Failure 401 {object} handler.SwaggerErrorResponse
// @Router /shared/new-count [get]
func (h *SharedHandler) NewItemsCount(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	output, err := h.getNewItemsCountQuery.Execute(c.Request().Context(), sharingqry.GetNewItemsCountInput{UserID: userID})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.NewItemsCountResponse{Count: output.Count})
}

// MarkSeen は未読カウンタをリセットします
// @Summary 共有アイテム既読化
// @Tags Shared
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} handler.SwaggerErrorResponse
// @Router /shared/seen [post]
func (h *SharedHandler) MarkSeen(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.markSharedSeenCmd.Execute(c.Request().Context(), sharingcmd.MarkSharedSeenInput{UserID: userID}); err != nil {
		return err
	}

	return presenter.NoContent(c)
}
