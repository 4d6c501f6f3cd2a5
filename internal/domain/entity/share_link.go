package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
)

const (
	maxShareLinkTitleLength = 255
)

var (
	ErrShareLinkInvalidPassword = errors.New("invalid share link password")
	ErrShareLinkAccessNone      = errors.New("share link access cannot be none")
	ErrShareLinkTitleTooLong    = errors.New("share link title is too long")
	ErrShareLinkExpiryInPast    = errors.New("share link expiration must be in the future")
)

// ShareLink はエントリに紐づく共有リンクエンティティ
// IDはエントリIDとは別の安定した識別子で、Tokenがクライアントの提示するベアラー資格情報です
type ShareLink struct {
	ID           uuid.UUID
	EntryID      uuid.UUID
	EntryType    authz.EntryType
	Token        valueobject.ShareToken
	Title        string
	Access       authz.AccessLevel
	PasswordHash string
	ExpiresAt    *time.Time
	DenyDownload bool
	// Internal は認証済みの内部ユーザーのみが使えるリンクかを示します
	Internal  bool
	Primary   bool
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewShareLink は新しい共有リンクを作成します
func NewShareLink(
	entry *Entry,
	access authz.AccessLevel,
	primary bool,
	createdBy uuid.UUID,
) (*ShareLink, error) {
	if access.IsNone() {
		return nil, ErrShareLinkAccessNone
	}

	token, err := valueobject.NewShareToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &ShareLink{
		ID:        uuid.New(),
		EntryID:   entry.ID,
		EntryType: entry.Type,
		Token:     token,
		Title:     entry.Title,
		Access:    access,
		Primary:   primary,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NewDefaultShareLink は既定の主リンク（Read・外部公開・期限なし）を作成します
func NewDefaultShareLink(entry *Entry, createdBy uuid.UUID) (*ShareLink, error) {
	return NewShareLink(entry, authz.AccessRead, true, createdBy)
}

// ReconstructShareLink はDBから共有リンクを復元します
func ReconstructShareLink(
	id uuid.UUID,
	entryID uuid.UUID,
	entryType authz.EntryType,
	token valueobject.ShareToken,
	title string,
	access authz.AccessLevel,
	passwordHash string,
	expiresAt *time.Time,
	denyDownload bool,
	internal bool,
	primary bool,
	createdBy uuid.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) *ShareLink {
	return &ShareLink{
		ID:           id,
		EntryID:      entryID,
		EntryType:    entryType,
		Token:        token,
		Title:        title,
		Access:       access,
		PasswordHash: passwordHash,
		ExpiresAt:    expiresAt,
		DenyDownload: denyDownload,
		Internal:     internal,
		Primary:      primary,
		CreatedBy:    createdBy,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// IsExpired は指定時刻において期限切れかを判定します
func (s *ShareLink) IsExpired(now time.Time) bool {
	if s.ExpiresAt == nil {
		return false
	}
	return now.After(*s.ExpiresAt)
}

// IsLive は指定時刻において有効なリンクかを判定します
func (s *ShareLink) IsLive(now time.Time) bool {
	return !s.Access.IsNone() && !s.IsExpired(now)
}

// RequiresPassword はパスワードが必要かを判定します
func (s *ShareLink) RequiresPassword() bool {
	return s.PasswordHash != ""
}

// Password はパスワードハッシュを値オブジェクトとして返します
func (s *ShareLink) Password() valueobject.LinkPassword {
	return valueobject.LinkPasswordFromHash(s.PasswordHash)
}

// PasswordStamp は現在のパスワードを識別するスタンプを返します
func (s *ShareLink) PasswordStamp() string {
	return s.Password().Stamp()
}

// ValidatePassword は提供されたパスワードを検証します
func (s *ShareLink) ValidatePassword(password string) error {
	if !s.RequiresPassword() {
		return nil
	}
	if !s.Password().Verify(password) {
		return ErrShareLinkInvalidPassword
	}
	return nil
}

// UpdateAccess はアクセスレベルを更新します
func (s *ShareLink) UpdateAccess(access authz.AccessLevel) {
	s.Access = access
	s.touch()
}

// UpdatePassword はパスワードを更新します（nil で解除）
func (s *ShareLink) UpdatePassword(password *valueobject.LinkPassword) {
	if password == nil {
		s.PasswordHash = ""
	} else {
		s.PasswordHash = password.Hash()
	}
	s.touch()
}

// UpdateExpiry は有効期限を更新します（nil で無期限）
func (s *ShareLink) UpdateExpiry(expiresAt *time.Time, now time.Time) error {
	if expiresAt != nil && !expiresAt.After(now) {
		return ErrShareLinkExpiryInPast
	}
	if expiresAt != nil {
		utc := expiresAt.UTC()
		expiresAt = &utc
	}
	s.ExpiresAt = expiresAt
	s.touch()
	return nil
}

// UpdateDenyDownload はダウンロード禁止フラグを更新します
func (s *ShareLink) UpdateDenyDownload(deny bool) {
	s.DenyDownload = deny
	s.touch()
}

// UpdateInternal は内部限定フラグを更新します
func (s *ShareLink) UpdateInternal(internal bool) {
	s.Internal = internal
	s.touch()
}

// UpdateTitle はタイトルを更新します
func (s *ShareLink) UpdateTitle(title string) error {
	title = strings.TrimSpace(title)
	if len(title) > maxShareLinkTitleLength {
		return ErrShareLinkTitleTooLong
	}
	s.Title = title
	s.touch()
	return nil
}

// ForcePublic は期限なし・外部公開に固定します
func (s *ShareLink) ForcePublic() {
	s.ExpiresAt = nil
	s.Internal = false
	s.touch()
}

// Replacement は同じエントリに対して新しいIDとトークンを持つ既定の主リンクを作成します
func (s *ShareLink) Replacement(entry *Entry, createdBy uuid.UUID) (*ShareLink, error) {
	return NewDefaultShareLink(entry, createdBy)
}

// Demote は主リンクの指定を外します
func (s *ShareLink) Demote() {
	s.Primary = false
	s.touch()
}

// IsForEntry は指定エントリのリンクかを判定します
func (s *ShareLink) IsForEntry(entryID uuid.UUID) bool {
	return s.EntryID == entryID
}

func (s *ShareLink) touch() {
	s.UpdatedAt = time.Now()
}
