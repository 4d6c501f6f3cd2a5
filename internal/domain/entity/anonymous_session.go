package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
)

const (
	// DefaultAnonymousSessionTTL は匿名セッションのデフォルト有効期限
	DefaultAnonymousSessionTTL = 24 * time.Hour
)

// AnonymousSession はパスワード保護リンクの解除状態を表すエンティティ
// 発行時のリンクとパスワードに対してのみ有効です
type AnonymousSession struct {
	Key           string
	LinkID        uuid.UUID
	PasswordStamp string
	CreatedAt     time.Time
	ExpiresAt     time.Time
}

// NewAnonymousSession はリンクに対する新しい匿名セッションを作成します
func NewAnonymousSession(link *ShareLink, ttl time.Duration, now time.Time) (*AnonymousSession, error) {
	key, err := valueobject.NewSessionKey()
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = DefaultAnonymousSessionTTL
	}

	return &AnonymousSession{
		Key:           key,
		LinkID:        link.ID,
		PasswordStamp: link.PasswordStamp(),
		CreatedAt:     now,
		ExpiresAt:     now.Add(ttl),
	}, nil
}

// IsExpired はセッションが期限切れかを判定します
func (s *AnonymousSession) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// TTL は残りの有効期間を返します
func (s *AnonymousSession) TTL(now time.Time) time.Duration {
	return s.ExpiresAt.Sub(now)
}

// IsValidFor は指定リンクの現在のパスワードに対して有効かを判定します
func (s *AnonymousSession) IsValidFor(link *ShareLink, now time.Time) bool {
	if s.IsExpired(now) {
		return false
	}
	return s.LinkID == link.ID && s.PasswordStamp == link.PasswordStamp()
}
