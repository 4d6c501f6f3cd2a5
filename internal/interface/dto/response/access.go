package response

import (
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
)

// SecurityResponse はアクセスレベルから導かれる操作可否です
type SecurityResponse struct {
	Read     bool `json:"read"`
	Review   bool `json:"review"`
	Comment  bool `json:"comment"`
	Edit     bool `json:"edit"`
	Share    bool `json:"share"`
	Download bool `json:"download"`
}

// EffectiveAccessResponse は解決済みアクセスのレスポンスです
type EffectiveAccessResponse struct {
	EntryID  string           `json:"entryId"`
	Access   string           `json:"access"`
	Security SecurityResponse `json:"security"`
	Channel  string           `json:"channel"`
	LinkID   *string          `json:"linkId,omitempty"`
}

// ToEffectiveAccessResponse は解決済みアクセスからレスポンスに変換します
func ToEffectiveAccessResponse(access *authz.EffectiveAccess) EffectiveAccessResponse {
	var linkID *string
	if access.LinkID != nil {
		s := access.LinkID.String()
		linkID = &s
	}
	return EffectiveAccessResponse{
		EntryID: access.EntryID.String(),
		Access:  access.Level.String(),
		Security: SecurityResponse{
			Read:     access.Capabilities.Read,
			Review:   access.Capabilities.Review,
			Comment:  access.Capabilities.Comment,
			Edit:     access.Capabilities.Edit,
			Share:    access.Capabilities.Share,
			Download: access.CanDownload,
		},
		Channel: access.Channel.String(),
		LinkID:  linkID,
	}
}
