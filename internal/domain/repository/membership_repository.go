package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
)

// MembershipRepository はグループ所属とルームメンバーシップのリポジトリインターフェース
type MembershipRepository interface {
	// グループ
	// AddGroupMember は既に所属している場合ロールを上書きします
	AddGroupMember(ctx context.Context, groupID, userID uuid.UUID, role valueobject.GroupRole) error
	// FindGroupRole は所属していない場合 NotFound を返します
	FindGroupRole(ctx context.Context, groupID, userID uuid.UUID) (valueobject.GroupRole, error)
	FindGroupIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	FindGroupMemberIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)

	// ルーム
	// SetRoomMember は None を指定するとメンバーシップを削除します
	SetRoomMember(ctx context.Context, roomID, userID uuid.UUID, level authz.AccessLevel) error
	// FindRoomMemberLevel はメンバーでない場合 None を返します
	FindRoomMemberLevel(ctx context.Context, roomID, userID uuid.UUID) (authz.AccessLevel, error)
}
