package valueobject

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
)

const (
	ShareTokenLength = 32 // 32 bytes = 43 chars base64 URL-safe
	SessionKeyLength = 32
)

var (
	ErrShareTokenEmpty   = errors.New("share token cannot be empty")
	ErrShareTokenInvalid = errors.New("share token is invalid")
)

var tokenEncoding = base64.URLEncoding.WithPadding(base64.NoPadding)

// ShareToken は共有リンクのベアラートークンを表す値オブジェクト
type ShareToken struct {
	value string
}

// NewShareToken は新しいShareTokenを生成します
func NewShareToken() (ShareToken, error) {
	v, err := randomToken(ShareTokenLength)
	if err != nil {
		return ShareToken{}, err
	}
	return ShareToken{value: v}, nil
}

// ReconstructShareToken は既存のトークン文字列からShareTokenを復元します
func ReconstructShareToken(token string) (ShareToken, error) {
	if token == "" {
		return ShareToken{}, ErrShareTokenEmpty
	}
	if _, err := tokenEncoding.DecodeString(token); err != nil {
		return ShareToken{}, ErrShareTokenInvalid
	}
	return ShareToken{value: token}, nil
}

// String は文字列を返します
func (t ShareToken) String() string {
	return t.value
}

// IsEmpty は空かどうかを判定します
func (t ShareToken) IsEmpty() bool {
	return t.value == ""
}

// Equals は定数時間で等価性を判定します
func (t ShareToken) Equals(other ShareToken) bool {
	return subtle.ConstantTimeCompare([]byte(t.value), []byte(other.value)) == 1
}

// NewSessionKey は匿名セッション用の不透明なキーを生成します
func NewSessionKey() (string, error) {
	return randomToken(SessionKeyLength)
}

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return tokenEncoding.EncodeToString(b), nil
}
