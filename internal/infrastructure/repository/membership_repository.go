package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/infrastructure/database"
)

// MembershipRepository はグループ所属とルームメンバーシップのリポジトリ実装です
type MembershipRepository struct {
	*database.BaseRepository
}

// NewMembershipRepository は新しいMembershipRepositoryを作成します
func NewMembershipRepository(txManager *database.TxManager) *MembershipRepository {
	return &MembershipRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

// AddGroupMember はユーザーを指定ロールでグループに追加します
// 既に所属している場合はロールのみ更新します
func (r *MembershipRepository) AddGroupMember(ctx context.Context, groupID, userID uuid.UUID, role valueobject.GroupRole) error {
	_, err := r.Querier(ctx).Exec(ctx, `
		INSERT INTO group_members (group_id, user_id, role) VALUES ($1, $2, $3)
		ON CONFLICT (group_id, user_id) DO UPDATE SET role = EXCLUDED.role`,
		groupID, userID, role.String())
	return r.HandleError(err, "group member")
}

// FindGroupRole はユーザーのグループ内ロールを取得します
func (r *MembershipRepository) FindGroupRole(ctx context.Context, groupID, userID uuid.UUID) (valueobject.GroupRole, error) {
	var role string
	err := r.Querier(ctx).QueryRow(ctx, `
		SELECT role FROM group_members WHERE group_id = $1 AND user_id = $2`,
		groupID, userID).Scan(&role)
	if err != nil {
		return "", r.HandleError(err, "group member")
	}

	groupRole, err := valueobject.NewGroupRole(role)
	if err != nil {
		return "", r.HandleError(err, "group member")
	}
	return groupRole, nil
}

// FindGroupIDsByUser はユーザーの所属グループIDを取得します
func (r *MembershipRepository) FindGroupIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.collectIDs(ctx, `SELECT group_id FROM group_members WHERE user_id = $1 ORDER BY joined_at`, userID)
}

// FindGroupMemberIDs はグループのメンバーIDを取得します
func (r *MembershipRepository) FindGroupMemberIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	return r.collectIDs(ctx, `SELECT user_id FROM group_members WHERE group_id = $1 ORDER BY joined_at`, groupID)
}

// SetRoomMember はルームメンバーのアクセスレベルを設定します
// None を指定するとメンバーシップを削除します
func (r *MembershipRepository) SetRoomMember(ctx context.Context, roomID, userID uuid.UUID, level authz.AccessLevel) error {
	if level.IsNone() {
		_, err := r.Querier(ctx).Exec(ctx, `DELETE FROM room_members WHERE room_id = $1 AND user_id = $2`, roomID, userID)
		return r.HandleError(err, "room member")
	}

	_, err := r.Querier(ctx).Exec(ctx, `
		INSERT INTO room_members (room_id, user_id, access) VALUES ($1, $2, $3)
		ON CONFLICT (room_id, user_id) DO UPDATE SET access = EXCLUDED.access`,
		roomID, userID, level.String())
	return r.HandleError(err, "room")
}

// FindRoomMemberLevel はルームメンバーのアクセスレベルを取得します
// メンバーでない場合は None を返します
func (r *MembershipRepository) FindRoomMemberLevel(ctx context.Context, roomID, userID uuid.UUID) (authz.AccessLevel, error) {
	var access string
	err := r.Querier(ctx).QueryRow(ctx, `
		SELECT access FROM room_members WHERE room_id = $1 AND user_id = $2`,
		roomID, userID).Scan(&access)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return authz.AccessNone, nil
		}
		return authz.AccessNone, r.HandleError(err, "room member")
	}

	level, err := authz.NewAccessLevel(access)
	if err != nil {
		return authz.AccessNone, r.HandleError(err, "room member")
	}
	return level, nil
}

func (r *MembershipRepository) collectIDs(ctx context.Context, sql string, arg uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.Querier(ctx).Query(ctx, sql, arg)
	if err != nil {
		return nil, r.HandleError(err, "group member")
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, r.HandleError(err, "group member")
	}
	return ids, nil
}

// インターフェースの実装を保証
var _ repository.MembershipRepository = (*MembershipRepository)(nil)
