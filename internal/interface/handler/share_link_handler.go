package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/dto/request"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/dto/response"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/middleware"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/presenter"
	sharingcmd "github.com/ONLYOFFICE/DocSpace-server-sub006/internal/usecase/sharing/command"
	sharingqry "github.com/ONLYOFFICE/DocSpace-server-sub006/internal/usecase/sharing/query"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
)

// SessionCookieConfig は匿名セッションCookieの設定を定義します
type SessionCookieConfig struct {
	Name   string
	Secure bool
}

// ShareLinkHandler は共有リンク関連のHTTPハンドラーです
type ShareLinkHandler struct {
	// Commands
	setLinkCmd    *sharingcmd.SetLinkCommand
	unlockLinkCmd *sharingcmd.UnlockLinkCommand

	// Queries
	getPrimaryLinkQuery *sharingqry.GetPrimaryLinkQuery
	listLinksQuery      *sharingqry.ListLinksQuery
	linkStatusQuery     *sharingqry.LinkStatusQuery

	// Config
	baseURL string
	cookie  SessionCookieConfig
	now     func() time.Time
}

// NewShareLinkHandler は新しいShareLinkHandlerを作成します
func NewShareLinkHandler(
	setLinkCmd *sharingcmd.SetLinkCommand,
	unlockLinkCmd *sharingcmd.UnlockLinkCommand,
	getPrimaryLinkQuery *sharingqry.GetPrimaryLinkQuery,
	listLinksQuery *sharingqry.ListLinksQuery,
	linkStatusQuery *sharingqry.LinkStatusQuery,
	baseURL string,
	cookie SessionCookieConfig,
) *ShareLinkHandler {
	return &ShareLinkHandler{
		setLinkCmd:          setLinkCmd,
		unlockLinkCmd:       unlockLinkCmd,
		getPrimaryLinkQuery: getPrimaryLinkQuery,
		listLinksQuery:      listLinksQuery,
		linkStatusQuery:     linkStatusQuery,
		baseURL:             baseURL,
		cookie:              cookie,
		now:                 time.Now,
	}
}

// GetPrimaryLink はエントリの主リンクを取得します
// 主リンクがなく共有可能な文脈であれば既定のリンクを作成します
// @Summary 主リンク取得
// @Tags ShareLinks
// @Produce json
// @Security BearerAuth
// @Param id path string true "エントリID"
// @Success 200 {object} handler.SwaggerPrimaryLinkResponse
// @Failure 403 {object} handler.SwaggerErrorResponse
// @Failure 404 {object} handler.SwaggerErrorResponse
// @Router /entries/{id}/links/primary [get]
func (h *ShareLinkHandler) GetPrimaryLink(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	entryID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.getPrimaryLinkQuery.Execute(c.Request().Context(), sharingqry.GetPrimaryLinkInput{
		Actor:   userID,
		EntryID: entryID,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.PrimaryLinkResponse{
		Link:    response.ToShareLinkResponse(output.Link, h.baseURL, h.now()),
		Created: output.Created,
	})
}

// ListLinks はエントリの共有リンク一覧を取得します
// @Summary 共有リンク一覧
// @Tags ShareLinks
// @Produce json
// @Security BearerAuth
// @Param id path string true "エントリID"
// @Success 200 {object} handler.SwaggerShareLinkListResponse
// @Failure 403 {object} handler.SwaggerErrorResponse
// @Router /entries/{id}/links [get]
func (h *ShareLinkHandler) ListLinks(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	entryID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.listLinksQuery.Execute(c.Request().Context(), sharingqry.ListLinksInput{
		Actor:   userID,
		EntryID: entryID,
	})
	if err != nil {
		return err
	}

	return presenter.List(c, response.ToShareLinkListResponse(output.Links, h.baseURL, h.now()), len(output.Links))
}

// SetLink は共有リンクを作成・更新します
// linkId を省略すると作成、access に none を指定すると削除です
// @Summary 共有リンク作成・更新
// @Tags ShareLinks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "エントリID"
// @Param body body request.SetShareLinkRequest true "共有リンク設定"
// @Success 200 {object} handler.SwaggerSetShareLinkResponse
// @Failure 400 {object} handler.SwaggerErrorResponse
// @Failure 403 {object} handler.SwaggerErrorResponse
// @Router /entries/{id}/links [put]
func (h *ShareLinkHandler) SetLink(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	entryID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req request.SetShareLinkRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input, err := toSetLinkInput(userID, entryID, req)
	if err != nil {
		return err
	}

	output, err := h.setLinkCmd.Execute(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return presenter.OK(c, response.ToSetShareLinkResponse(output, h.baseURL, h.now()))
}

// toSetLinkInput はリクエストを部分更新の入力に変換します
func toSetLinkInput(actor, entryID uuid.UUID, req request.SetShareLinkRequest) (sharingcmd.SetLinkInput, error) {
	input := sharingcmd.SetLinkInput{
		Actor:        actor,
		EntryID:      entryID,
		Password:     req.Password.Patch(),
		ExpiresAt:    req.ExpirationDate.Patch(),
		DenyDownload: req.DenyDownload.Patch(),
		Internal:     req.Internal.Patch(),
		Title:        req.Title.Patch(),
	}

	if req.LinkID != nil {
		id := uuid.MustParse(*req.LinkID)
		input.LinkID = &id
	}

	if req.Access.Present {
		if req.Access.Null {
			return input, accessFieldError("access cannot be null")
		}
		level, err := authz.NewAccessLevel(req.Access.Value)
		if err != nil {
			return input, accessFieldError(err.Error())
		}
		input.Access = valueobject.Set(level)
	}

	// 空のパスワードはパスワードの解除として扱う
	if v, ok := input.Password.Value(); ok && v == "" {
		input.Password = valueobject.Clear[string]()
	}

	return input, nil
}

func accessFieldError(msg string) error {
	return apperror.NewValidationError("invalid access level", []apperror.FieldError{{Field: "access", Message: msg}})
}

// Status はパスワードゲートから見た共有リンクの状態を返します
// X-Link-Password ヘッダーが添えられていれば解除を試み、成功時はセッションCookieを発行します
// @Summary 共有リンク状態
// @Tags ShareLinks
// @Produce json
// @Param token path string true "共有リンクトークン"
// @Param X-Link-Password header string false "リンクパスワード"
// @Success 200 {object} handler.SwaggerLinkStatusResponse
// @Failure 403 {object} handler.SwaggerErrorResponse
// @Failure 404 {object} handler.SwaggerErrorResponse
// @Router /share/{token}/status [get]
func (h *ShareLinkHandler) Status(c echo.Context) error {
	input := sharingqry.LinkStatusInput{
		Token:      c.Param("token"),
		SessionKey: middleware.GetCredential(c).SessionKey,
	}
	if pw := c.Request().Header.Get(middleware.HeaderLinkPassword); pw != "" {
		input.Password = &pw
	}

	output, err := h.linkStatusQuery.Execute(c.Request().Context(), input)
	if err != nil {
		return err
	}

	if output.Session != nil {
		h.setSessionCookie(c, output.Session)
	}

	return presenter.OK(c, response.ToLinkStatusResponse(output.Status.String(), output.Link, output.Status.IsOk()))
}

// Unlock はパスワードを検証して匿名セッションを発行します
// @Summary 共有リンク解除
// @Tags ShareLinks
// @Accept json
// @Produce json
// @Param token path string true "共有リンクトークン"
// @Param body body request.UnlockShareLinkRequest true "リンクパスワード"
// @Success 200 {object} handler.SwaggerLinkStatusResponse
// @Failure 401 {object} handler.SwaggerErrorResponse
// @Failure 429 {object} handler.SwaggerErrorResponse
// @Router /share/{token}/unlock [post]
func (h *ShareLinkHandler) Unlock(c echo.Context) error {
	var req request.UnlockShareLinkRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.unlockLinkCmd.Execute(c.Request().Context(), sharingcmd.UnlockLinkInput{
		Token:    c.Param("token"),
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	if output.Session != nil {
		h.setSessionCookie(c, output.Session)
	}

	return presenter.OK(c, response.ToLinkStatusResponse(output.Status.String(), output.Link, true))
}

// setSessionCookie は匿名セッションCookieを設定します
func (h *ShareLinkHandler) setSessionCookie(c echo.Context, session *entity.AnonymousSession) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    session.Key,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(session.TTL(h.now()).Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
