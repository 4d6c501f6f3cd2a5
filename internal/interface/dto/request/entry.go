package request

// CreateEntryRequest はエントリ作成リクエストです
type CreateEntryRequest struct {
	Type     string  `json:"type" validate:"required,oneof=room folder file"`
	Title    string  `json:"title" validate:"required,max=255,entry_title"`
	ParentID *string `json:"parentId" validate:"omitempty,uuid"`
	RoomType string  `json:"roomType" validate:"omitempty,room_type"`
}
