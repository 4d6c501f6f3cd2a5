package authz

import "errors"

var (
	ErrInvalidEntryType   = errors.New("invalid entry type")
	ErrInvalidSubjectType = errors.New("invalid subject type")
)

// EntryType は共有対象エントリの種類を表す型
type EntryType string

const (
	EntryTypeRoom   EntryType = "room"
	EntryTypeFolder EntryType = "folder"
	EntryTypeFile   EntryType = "file"
)

// NewEntryType は文字列からEntryTypeを生成します
func NewEntryType(t string) (EntryType, error) {
	et := EntryType(t)
	if !et.IsValid() {
		return "", ErrInvalidEntryType
	}
	return et, nil
}

// IsValid はエントリタイプが有効かを判定します
func (t EntryType) IsValid() bool {
	switch t {
	case EntryTypeRoom, EntryTypeFolder, EntryTypeFile:
		return true
	default:
		return false
	}
}

// String は文字列を返します
func (t EntryType) String() string {
	return string(t)
}

// IsRoom はルームかを判定します
func (t EntryType) IsRoom() bool {
	return t == EntryTypeRoom
}

// SubjectType は直接共有の付与対象の種類を表す型
type SubjectType string

const (
	SubjectTypeUser  SubjectType = "user"
	SubjectTypeGroup SubjectType = "group"
)

// NewSubjectType は文字列からSubjectTypeを生成します
func NewSubjectType(t string) (SubjectType, error) {
	st := SubjectType(t)
	if !st.IsValid() {
		return "", ErrInvalidSubjectType
	}
	return st, nil
}

// IsValid は付与対象タイプが有効かを判定します
func (t SubjectType) IsValid() bool {
	switch t {
	case SubjectTypeUser, SubjectTypeGroup:
		return true
	default:
		return false
	}
}

// String は文字列を返します
func (t SubjectType) String() string {
	return string(t)
}

// IsUser はユーザータイプかを判定します
func (t SubjectType) IsUser() bool {
	return t == SubjectTypeUser
}

// IsGroup はグループタイプかを判定します
func (t SubjectType) IsGroup() bool {
	return t == SubjectTypeGroup
}
