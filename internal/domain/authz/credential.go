package authz

import "github.com/google/uuid"

// Credential はリクエストが提示した資格情報を表します
// リクエストコンテキストから暗黙に取り出さず、常に値として解決処理に渡します
type Credential struct {
	// UserID は認証済みプリンシパルのID（匿名の場合 nil）
	UserID *uuid.UUID
	// LinkToken は提示された共有リンクのトークン
	LinkToken string
	// SessionKey はパスワード解除後に発行された匿名セッションのキー
	SessionKey string
}

// AuthenticatedUser は認証済みユーザーの資格情報を生成します
func AuthenticatedUser(userID uuid.UUID) Credential {
	return Credential{UserID: &userID}
}

// LinkBearer はリンクトークンのみを持つ匿名の資格情報を生成します
func LinkBearer(token string) Credential {
	return Credential{LinkToken: token}
}

// WithUser は認証済みユーザーを付与した資格情報を返します
func (c Credential) WithUser(userID uuid.UUID) Credential {
	c.UserID = &userID
	return c
}

// WithSession は匿名セッションキーを付与した資格情報を返します
func (c Credential) WithSession(sessionKey string) Credential {
	c.SessionKey = sessionKey
	return c
}

// IsAuthenticated は認証済みプリンシパルを含むかを判定します
func (c Credential) IsAuthenticated() bool {
	return c.UserID != nil && *c.UserID != uuid.Nil
}

// HasLinkToken はリンクトークンを含むかを判定します
func (c Credential) HasLinkToken() bool {
	return c.LinkToken != ""
}

// IsEmpty は何の資格情報も含まないかを判定します
func (c Credential) IsEmpty() bool {
	return !c.IsAuthenticated() && !c.HasLinkToken()
}
