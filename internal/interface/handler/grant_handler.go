package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/dto/request"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/dto/response"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/presenter"
	authzcmd "github.com/ONLYOFFICE/DocSpace-server-sub006/internal/usecase/authz/command"
	authzqry "github.com/ONLYOFFICE/DocSpace-server-sub006/internal/usecase/authz/query"
)

// GrantHandler は直接共有とメンバーシップのHTTPハンドラーです
type GrantHandler struct {
	// Commands
	setGrantCmd       *authzcmd.SetGrantCommand
	setRoomMemberCmd  *authzcmd.SetRoomMemberCommand
	createGroupCmd    *authzcmd.CreateGroupCommand
	addGroupMemberCmd *authzcmd.AddGroupMemberCommand

	// Queries
	listGrantsQuery *authzqry.ListGrantsQuery
}

// NewGrantHandler は新しいGrantHandlerを作成します
func NewGrantHandler(
	setGrantCmd *authzcmd.SetGrantCommand,
	setRoomMemberCmd *authzcmd.SetRoomMemberCommand,
	createGroupCmd *authzcmd.CreateGroupCommand,
	addGroupMemberCmd *authzcmd.AddGroupMemberCommand,
	listGrantsQuery *authzqry.ListGrantsQuery,
) *GrantHandler {
	return &GrantHandler{
		setGrantCmd:       setGrantCmd,
		setRoomMemberCmd:  setRoomMemberCmd,
		createGroupCmd:    createGroupCmd,
		addGroupMemberCmd: addGroupMemberCmd,
		listGrantsQuery:   listGrantsQuery,
	}
}

// SetGrant はユーザーまたはグループへの直接共有を設定します
// @Summary 直接共有設定
// @Description access に none を指定すると共有を取り消します
// @Tags Grants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "エントリID"
// @Param body body request.SetGrantRequest true "共有設定"
// @Success 200 {object} handler.SwaggerSetGrantResponse
// @Failure 400 {object} handler.SwaggerErrorResponse
// @Failure 403 {object} handler.SwaggerErrorResponse
// @Router /entries/{id}/grants [put]
func (h *GrantHandler) SetGrant(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	entryID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req request.SetGrantRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.setGrantCmd.Execute(c.Request().Context(), authzcmd.SetGrantInput{
		Actor:       userID,
		EntryID:     entryID,
		SubjectType: req.SubjectType,
		SubjectID:   uuid.MustParse(req.SubjectID),
		Access:      req.Access,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.ToSetGrantResponse(output))
}

// ListGrants はエントリの直接共有一覧を取得します
// @Summary 直接共有一覧
// @Tags Grants
// @Produce json
// @Security BearerAuth
// @Param id path string true "エントリID"
// @Success 200 {object} handler.SwaggerGrantListResponse
// @Failure 403 {object} handler.SwaggerErrorResponse
// @Router /entries/{id}/grants [get]
func (h *GrantHandler) ListGrants(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	entryID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.listGrantsQuery.Execute(c.Request().Context(), authzqry.ListGrantsInput{
		EntryID: entryID,
		UserID:  userID,
	})
	if err != nil {
		return err
	}

	return presenter.List(c, response.ToGrantListResponse(output.Grants), len(output.Grants))
}

// SetRoomMember はルームメンバーのアクセスレベルを設定します
// @Summary ルームメンバー設定
// @Tags Grants
// @Accept json
// @Security BearerAuth
// @Param id path string true "ルームID"
// @Param body body request.SetRoomMemberRequest true "メンバー設定"
// @Success 204
// @Failure 400 {object} handler.SwaggerErrorResponse
// @Failure 403 {object} handler.SwaggerErrorResponse
// @Router /rooms/{id}/members [put]
func (h *GrantHandler) SetRoomMember(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	roomID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req request.SetRoomMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.setRoomMemberCmd.Execute(c.Request().Context(), authzcmd.SetRoomMemberInput{
		Actor:  userID,
		RoomID: roomID,
		UserID: uuid.MustParse(req.UserID),
		Access: req.Access,
	}); err != nil {
		return err
	}

	return presenter.NoContent(c)
}

// CreateGroup はグループを作成し、作成者をmanagerとして所属させます
// @Summary グループ作成
// @Tags Grants
// @Produce json
// @Security BearerAuth
// @Success 201 {object} handler.SwaggerGroupResponse
// @Failure 401 {object} handler.SwaggerErrorResponse
// @Router /groups [post]
func (h *GrantHandler) CreateGroup(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	output, err := h.createGroupCmd.Execute(c.Request().Context(), authzcmd.CreateGroupInput{Actor: userID})
	if err != nil {
		return err
	}

	return presenter.Created(c, response.GroupResponse{ID: output.GroupID.String()})
}

// AddGroupMember はグループにユーザーを追加します
// @Summary グループメンバー追加
// @Description グループのmanagerのみ実行できます
// @Tags Grants
// @Accept json
// @Security BearerAuth
// @Param id path string true "グループID"
// @Param body body request.AddGroupMemberRequest true "追加するユーザー"
// @Success 204
// @Failure 400 {object} handler.SwaggerErrorResponse
// @Failure 403 {object} handler.SwaggerErrorResponse
// @Router /groups/{id}/members [post]
func (h *GrantHandler) AddGroupMember(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	groupID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req request.AddGroupMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.addGroupMemberCmd.Execute(c.Request().Context(), authzcmd.AddGroupMemberInput{
		Actor:   userID,
		GroupID: groupID,
		UserID:  uuid.MustParse(req.UserID),
		Role:    req.Role,
	}); err != nil {
		return err
	}

	return presenter.NoContent(c)
}
