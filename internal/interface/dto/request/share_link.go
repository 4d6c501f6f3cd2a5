package request

import "time"

// SetShareLinkRequest は共有リンク作成・更新リクエストです
// linkId を省略すると作成、指定すると更新になります
// 更新時に省略したフィールドは変更されず、null は値を消去します
type SetShareLinkRequest struct {
	LinkID         *string             `json:"linkId" validate:"omitempty,uuid"`
	Access         Optional[string]    `json:"access"`
	Password       Optional[string]    `json:"password"`
	ExpirationDate Optional[time.Time] `json:"expirationDate"`
	DenyDownload   Optional[bool]      `json:"denyDownload"`
	Internal       Optional[bool]      `json:"internal"`
	Title          Optional[string]    `json:"title"`
}

// UnlockShareLinkRequest は共有リンクのパスワード解除リクエストです
type UnlockShareLinkRequest struct {
	Password string `json:"password" validate:"required,max=72"`
}
