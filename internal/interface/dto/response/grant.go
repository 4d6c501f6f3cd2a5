package response

import (
	"time"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	authzcmd "github.com/ONLYOFFICE/DocSpace-server-sub006/internal/usecase/authz/command"
)

// GrantResponse は直接共有のレスポンスです
type GrantResponse struct {
	ID          string    `json:"id"`
	EntryID     string    `json:"entryId"`
	SubjectType string    `json:"subjectType"`
	SubjectID   string    `json:"subjectId"`
	Access      string    `json:"access"`
	GrantedBy   string    `json:"grantedBy"`
	GrantedAt   time.Time `json:"grantedAt"`
}

// SetGrantResponse は直接共有の設定結果レスポンスです
type SetGrantResponse struct {
	Grant    *GrantResponse `json:"grant"`
	Revoked  bool           `json:"revoked"`
	Notified int            `json:"notified"`
}

// GroupResponse はグループ作成レスポンスです
type GroupResponse struct {
	ID string `json:"id"`
}

// NewItemsCountResponse は未読の共有アイテム数レスポンスです
type NewItemsCountResponse struct {
	Count int64 `json:"count"`
}

// ToGrantResponse はエンティティからレスポンスに変換します
func ToGrantResponse(grant *authz.ShareGrant) GrantResponse {
	return GrantResponse{
		ID:          grant.ID.String(),
		EntryID:     grant.EntryID.String(),
		SubjectType: grant.SubjectType.String(),
		SubjectID:   grant.SubjectID.String(),
		Access:      grant.Access.String(),
		GrantedBy:   grant.GrantedBy.String(),
		GrantedAt:   grant.GrantedAt,
	}
}

// ToGrantListResponse は直接共有リストをレスポンスリストに変換します
func ToGrantListResponse(grants []*authz.ShareGrant) []GrantResponse {
	responses := make([]GrantResponse, len(grants))
	for i, g := range grants {
		responses[i] = ToGrantResponse(g)
	}
	return responses
}

// ToSetGrantResponse はSetGrantの出力からレスポンスに変換します
func ToSetGrantResponse(output *authzcmd.SetGrantOutput) SetGrantResponse {
	res := SetGrantResponse{Revoked: output.Revoked, Notified: output.Notified}
	if output.Grant != nil {
		g := ToGrantResponse(output.Grant)
		res.Grant = &g
	}
	return res
}
