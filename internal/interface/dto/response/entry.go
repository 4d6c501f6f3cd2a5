package response

import (
	"time"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
)

// EntryResponse はエントリのレスポンスです
type EntryResponse struct {
	ID        string                   `json:"id"`
	Type      string                   `json:"type"`
	ParentID  *string                  `json:"parentId,omitempty"`
	RoomType  string                   `json:"roomType,omitempty"`
	Title     string                   `json:"title"`
	OwnerID   string                   `json:"ownerId"`
	CreatedAt time.Time                `json:"createdAt"`
	UpdatedAt time.Time                `json:"updatedAt"`
	Access    *EffectiveAccessResponse `json:"access,omitempty"`
}

// ToEntryResponse はエンティティからレスポンスに変換します
func ToEntryResponse(entry *entity.Entry) EntryResponse {
	var parentID *string
	if entry.ParentID != nil {
		s := entry.ParentID.String()
		parentID = &s
	}
	return EntryResponse{
		ID:        entry.ID.String(),
		Type:      entry.Type.String(),
		ParentID:  parentID,
		RoomType:  entry.RoomType.String(),
		Title:     entry.Title,
		OwnerID:   entry.OwnerID.String(),
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}
