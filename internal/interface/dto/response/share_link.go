package response

import (
	"time"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	sharingcmd "github.com/ONLYOFFICE/DocSpace-server-sub006/internal/usecase/sharing/command"
)

// ShareLinkResponse は共有リンクレスポンスです
type ShareLinkResponse struct {
	ID             string     `json:"id"`
	EntryID        string     `json:"entryId"`
	EntryType      string     `json:"entryType"`
	Token          string     `json:"token"`
	URL            string     `json:"url"`
	Title          string     `json:"title"`
	Access         string     `json:"access"`
	HasPassword    bool       `json:"hasPassword"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
	Expired        bool       `json:"expired"`
	DenyDownload   bool       `json:"denyDownload"`
	Internal       bool       `json:"internal"`
	Primary        bool       `json:"primary"`
	CreatedBy      string     `json:"createdBy"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// SetShareLinkResponse は共有リンク作成・更新の結果レスポンスです
type SetShareLinkResponse struct {
	Link        *ShareLinkResponse `json:"link"`
	Replacement *ShareLinkResponse `json:"replacement,omitempty"`
	Deleted     bool               `json:"deleted"`
}

// PrimaryLinkResponse は主リンク取得レスポンスです
type PrimaryLinkResponse struct {
	Link    ShareLinkResponse `json:"link"`
	Created bool              `json:"created"`
}

// LinkStatusResponse は共有リンクの状態レスポンスです
type LinkStatusResponse struct {
	Status    string `json:"status"`
	EntryID   string `json:"entryId,omitempty"`
	EntryType string `json:"entryType,omitempty"`
	Title     string `json:"title,omitempty"`
}

// ToShareLinkResponse はエンティティからレスポンスに変換します
func ToShareLinkResponse(link *entity.ShareLink, baseURL string, now time.Time) ShareLinkResponse {
	return ShareLinkResponse{
		ID:             link.ID.String(),
		EntryID:        link.EntryID.String(),
		EntryType:      link.EntryType.String(),
		Token:          link.Token.String(),
		URL:            baseURL + "/s/" + link.Token.String(),
		Title:          link.Title,
		Access:         link.Access.String(),
		HasPassword:    link.RequiresPassword(),
		ExpirationDate: link.ExpiresAt,
		Expired:        link.IsExpired(now),
		DenyDownload:   link.DenyDownload,
		Internal:       link.Internal,
		Primary:        link.Primary,
		CreatedBy:      link.CreatedBy.String(),
		CreatedAt:      link.CreatedAt,
		UpdatedAt:      link.UpdatedAt,
	}
}

// ToShareLinkListResponse は共有リンクリストをレスポンスリストに変換します
func ToShareLinkListResponse(links []*entity.ShareLink, baseURL string, now time.Time) []ShareLinkResponse {
	responses := make([]ShareLinkResponse, len(links))
	for i, link := range links {
		responses[i] = ToShareLinkResponse(link, baseURL, now)
	}
	return responses
}

// ToSetShareLinkResponse はSetLinkの出力からレスポンスに変換します
func ToSetShareLinkResponse(output *sharingcmd.SetLinkOutput, baseURL string, now time.Time) SetShareLinkResponse {
	res := SetShareLinkResponse{Deleted: output.Deleted}
	if output.Link != nil {
		link := ToShareLinkResponse(output.Link, baseURL, now)
		res.Link = &link
	}
	if output.Replacement != nil {
		replacement := ToShareLinkResponse(output.Replacement, baseURL, now)
		res.Replacement = &replacement
	}
	return res
}

// ToLinkStatusResponse はリンクの状態レスポンスに変換します
// 解除済みでない限りエントリの情報は含めません
func ToLinkStatusResponse(status string, link *entity.ShareLink, unlocked bool) LinkStatusResponse {
	res := LinkStatusResponse{Status: status}
	if unlocked && link != nil {
		res.EntryID = link.EntryID.String()
		res.EntryType = link.EntryType.String()
		res.Title = link.Title
	}
	return res
}
