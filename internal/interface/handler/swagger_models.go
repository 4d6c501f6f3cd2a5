package handler

import (
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/dto/response"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/middleware"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/presenter"
)

// swagger:model を使って presenter.Response の any を具体型に置き換える

// ---- Access ----

// SwaggerEffectiveAccessResponse は EffectiveAccessResponse のラッパー
type SwaggerEffectiveAccessResponse struct {
	Data response.EffectiveAccessResponse `json:"data"`
	Meta *presenter.Meta                  `json:"meta"`
}

// ---- Entries ----

// SwaggerEntryResponse は EntryResponse のラッパー
type SwaggerEntryResponse struct {
	Data response.EntryResponse `json:"data"`
	Meta *presenter.Meta        `json:"meta"`
}

// ---- ShareLinks ----

// SwaggerPrimaryLinkResponse は PrimaryLinkResponse のラッパー
type SwaggerPrimaryLinkResponse struct {
	Data response.PrimaryLinkResponse `json:"data"`
	Meta *presenter.Meta              `json:"meta"`
}

// SwaggerShareLinkListResponse は ShareLinkResponse リストのラッパー
type SwaggerShareLinkListResponse struct {
	Data []response.ShareLinkResponse `json:"data"`
	Meta *presenter.Meta              `json:"meta"`
}

// SwaggerSetShareLinkResponse は SetShareLinkResponse のラッパー
type SwaggerSetShareLinkResponse struct {
	Data response.SetShareLinkResponse `json:"data"`
	Meta *presenter.Meta               `json:"meta"`
}

// SwaggerLinkStatusResponse は LinkStatusResponse のラッパー
type SwaggerLinkStatusResponse struct {
	Data response.LinkStatusResponse `json:"data"`
	Meta *presenter.Meta             `json:"meta"`
}

// ---- Grants ----

// SwaggerSetGrantResponse は SetGrantResponse のラッパー
type SwaggerSetGrantResponse struct {
	Data response.SetGrantResponse `json:"data"`
	Meta *presenter.Meta           `json:"meta"`
}

// SwaggerGrantListResponse は GrantResponse リストのラッパー
type SwaggerGrantListResponse struct {
	Data []response.GrantResponse `json:"data"`
	Meta *presenter.Meta          `json:"meta"`
}

// SwaggerGroupResponse は GroupResponse のラッパー
type SwaggerGroupResponse struct {
	Data response.GroupResponse `json:"data"`
	Meta *presenter.Meta        `json:"meta"`
}

// SwaggerNewItemsCountResponse は NewItemsCountResponse のラッパー
type SwaggerNewItemsCountResponse struct {
	Data response.NewItemsCountResponse `json:"data"`
	Meta *presenter.Meta                `json:"meta"`
}

// ---- Errors ----

// SwaggerErrorResponse はエラーレスポンス
type SwaggerErrorResponse = middleware.ErrorResponse
