package valueobject

import "errors"

var (
	ErrInvalidShareLinkStatus = errors.New("invalid share link status")
)

// ShareLinkStatus はパスワードゲートから見た共有リンクの状態を表す値オブジェクト
type ShareLinkStatus string

const (
	ShareLinkStatusOk               ShareLinkStatus = "Ok"
	ShareLinkStatusRequiredPassword ShareLinkStatus = "RequiredPassword"
	ShareLinkStatusInvalidPassword  ShareLinkStatus = "InvalidPassword"
)

// NewShareLinkStatus は文字列からShareLinkStatusを生成します
func NewShareLinkStatus(status string) (ShareLinkStatus, error) {
	s := ShareLinkStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidShareLinkStatus
	}
	return s, nil
}

// IsValid は状態が有効かを判定します
func (s ShareLinkStatus) IsValid() bool {
	switch s {
	case ShareLinkStatusOk, ShareLinkStatusRequiredPassword, ShareLinkStatusInvalidPassword:
		return true
	default:
		return false
	}
}

// String は文字列を返します
func (s ShareLinkStatus) String() string {
	return string(s)
}

// IsOk はリンク経由でアクセスできる状態かを判定します
func (s ShareLinkStatus) IsOk() bool {
	return s == ShareLinkStatusOk
}

// NeedsPassword はパスワードの入力が必要な状態かを判定します
func (s ShareLinkStatus) NeedsPassword() bool {
	return s == ShareLinkStatusRequiredPassword || s == ShareLinkStatusInvalidPassword
}
