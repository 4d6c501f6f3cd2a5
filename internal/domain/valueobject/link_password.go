package valueobject

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	maxLinkPasswordLength = 72 // bcrypt の入力上限
)

var (
	ErrLinkPasswordEmpty   = errors.New("link password cannot be empty")
	ErrLinkPasswordTooLong = fmt.Errorf("link password must be at most %d bytes", maxLinkPasswordLength)
)

// LinkPassword は共有リンクのパスワードハッシュを表す値オブジェクト
// 平文は保持しません
type LinkPassword struct {
	hash string
}

// NewLinkPassword は平文からLinkPasswordを生成します
func NewLinkPassword(plaintext string) (LinkPassword, error) {
	if plaintext == "" {
		return LinkPassword{}, ErrLinkPasswordEmpty
	}
	if len(plaintext) > maxLinkPasswordLength {
		return LinkPassword{}, ErrLinkPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return LinkPassword{}, fmt.Errorf("failed to hash link password: %w", err)
	}

	return LinkPassword{hash: string(hash)}, nil
}

// LinkPasswordFromHash はハッシュからLinkPasswordを復元します（DBからの復元用）
func LinkPasswordFromHash(hash string) LinkPassword {
	return LinkPassword{hash: hash}
}

// Hash はハッシュを返します
func (p LinkPassword) Hash() string {
	return p.hash
}

// IsSet はパスワードが設定されているかを判定します
func (p LinkPassword) IsSet() bool {
	return p.hash != ""
}

// Verify は平文パスワードがハッシュと一致するか検証します
func (p LinkPassword) Verify(plaintext string) bool {
	if !p.IsSet() {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(p.hash), []byte(plaintext)) == nil
}

// Stamp はハッシュから導出した識別子を返します
// パスワードが変わると値も変わるため、発行済みセッションの失効判定に使います
func (p LinkPassword) Stamp() string {
	if !p.IsSet() {
		return ""
	}
	sum := sha256.Sum256([]byte(p.hash))
	return hex.EncodeToString(sum[:16])
}
