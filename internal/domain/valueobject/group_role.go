package valueobject

import "errors"

var (
	ErrInvalidGroupRole = errors.New("invalid group role")
)

// GroupRole はグループ内の所属ロールを表す値オブジェクト
// Note: グループ内のロールであり、エントリのアクセスレベルとは異なる
type GroupRole string

const (
	GroupRoleMember  GroupRole = "member"
	GroupRoleManager GroupRole = "manager"
)

// NewGroupRole は文字列からGroupRoleを生成します
// 空文字の場合は member になります
func NewGroupRole(role string) (GroupRole, error) {
	if role == "" {
		return GroupRoleMember, nil
	}
	r := GroupRole(role)
	if !r.IsValid() {
		return "", ErrInvalidGroupRole
	}
	return r, nil
}

// IsValid はロールが有効かを判定します
func (r GroupRole) IsValid() bool {
	switch r {
	case GroupRoleMember, GroupRoleManager:
		return true
	default:
		return false
	}
}

// String は文字列を返します
func (r GroupRole) String() string {
	return string(r)
}

// CanManageMembers はメンバー管理可能かを判定します（managerのみ）
func (r GroupRole) CanManageMembers() bool {
	return r == GroupRoleManager
}
