package authz

import "errors"

var (
	ErrInvalidAccessLevel = errors.New("invalid access level")
)

// AccessLevel はエントリに対するアクセスレベルを表す型
// 順序: None < Read < Review < Comment < Editing
// None は「アクセスなし」を意味し、未評価とは区別されます
type AccessLevel string

const (
	AccessNone    AccessLevel = "none"
	AccessRead    AccessLevel = "read"
	AccessReview  AccessLevel = "review"
	AccessComment AccessLevel = "comment"
	AccessEditing AccessLevel = "editing"
)

// NewAccessLevel は文字列からAccessLevelを生成します
func NewAccessLevel(l string) (AccessLevel, error) {
	level := AccessLevel(l)
	if !level.IsValid() {
		return "", ErrInvalidAccessLevel
	}
	return level, nil
}

// IsValid はアクセスレベルが有効かを判定します
func (l AccessLevel) IsValid() bool {
	switch l {
	case AccessNone, AccessRead, AccessReview, AccessComment, AccessEditing:
		return true
	default:
		return false
	}
}

// String は文字列を返します
func (l AccessLevel) String() string {
	return string(l)
}

// Level はアクセスレベルの順位を返します（比較用）
func (l AccessLevel) Level() int {
	switch l {
	case AccessEditing:
		return 4
	case AccessComment:
		return 3
	case AccessReview:
		return 2
	case AccessRead:
		return 1
	default:
		return 0
	}
}

// IsNone はアクセスなしかを判定します
func (l AccessLevel) IsNone() bool {
	return l.Level() == 0
}

// Includes は指定されたレベルを含むかを判定します（順序的に）
func (l AccessLevel) Includes(other AccessLevel) bool {
	return l.Level() >= other.Level()
}

// Capabilities はレベルから導出される能力を返します
func (l AccessLevel) Capabilities() Capabilities {
	return CapabilitiesOf(l)
}

// MaxAccessLevel は二つのレベルのうち高い方を返します
func MaxAccessLevel(a, b AccessLevel) AccessLevel {
	if b.Level() > a.Level() {
		return b
	}
	if a == "" {
		return AccessNone
	}
	return a
}

// AllAccessLevels は全てのアクセスレベルを昇順で返します
func AllAccessLevels() []AccessLevel {
	return []AccessLevel{AccessNone, AccessRead, AccessReview, AccessComment, AccessEditing}
}
