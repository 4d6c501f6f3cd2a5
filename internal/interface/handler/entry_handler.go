package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/dto/request"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/dto/response"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/middleware"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/presenter"
	entrycmd "github.com/ONLYOFFICE/DocSpace-server-sub006/internal/usecase/entry/command"
	entryqry "github.com/ONLYOFFICE/DocSpace-server-sub006/internal/usecase/entry/query"
)

// EntryHandler はエントリ関連のHTTPハンドラーです
type EntryHandler struct {
	createEntryCmd *entrycmd.CreateEntryCommand
	getEntryQuery  *entryqry.GetEntryQuery
}

// NewEntryHandler は新しいEntryHandlerを作成します
func NewEntryHandler(createEntryCmd *entrycmd.CreateEntryCommand, getEntryQuery *entryqry.GetEntryQuery) *EntryHandler {
	return &EntryHandler{
		createEntryCmd: createEntryCmd,
		getEntryQuery:  getEntryQuery,
	}
}

// CreateEntry はルーム・フォルダ・ファイルを作成します
// @Summary エントリ作成
// @Tags Entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body request.CreateEntryRequest true "エントリ作成情報"
// @Success 201 {object} handler.SwaggerEntryResponse
// @Failure 400 {object} handler.SwaggerErrorResponse
// @Failure 403 {object} handler.SwaggerErrorResponse
// @Router /entries [post]
func (h *EntryHandler) CreateEntry(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req request.CreateEntryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var parentID *uuid.UUID
	if req.ParentID != nil {
		id := uuid.MustParse(*req.ParentID)
		parentID = &id
	}

	output, err := h.createEntryCmd.Execute(c.Request().Context(), entrycmd.CreateEntryInput{
		Actor:    userID,
		Type:     req.Type,
		Title:    req.Title,
		ParentID: parentID,
		RoomType: req.RoomType,
	})
	if err != nil {
		return err
	}

	return presenter.Created(c, response.ToEntryResponse(output.Entry))
}

// GetEntry はエントリを実効アクセスとともに取得します
// @Summary エントリ取得
// @Tags Entries
// @Produce json
// @Param id path string true "エントリID"
// @Success 200 {object} handler.SwaggerEntryResponse
// @Failure 401 {object} handler.SwaggerErrorResponse
// @Failure 404 {object} handler.SwaggerErrorResponse
// @Router /entries/{id} [get]
func (h *EntryHandler) GetEntry(c echo.Context) error {
	entryID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.getEntryQuery.Execute(c.Request().Context(), entryqry.GetEntryInput{
		EntryID:    entryID,
		Credential: middleware.GetCredential(c),
	})
	if err != nil {
		return err
	}

	res := response.ToEntryResponse(output.Entry)
	access := response.ToEffectiveAccessResponse(output.Access)
	res.Access = &access
	return presenter.OK(c, res)
}
