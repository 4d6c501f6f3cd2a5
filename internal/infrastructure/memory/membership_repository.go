package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
)

// MembershipRepository はインメモリのMembershipRepository実装です
type MembershipRepository struct {
	store *Store
}

// NewMembershipRepository は新しいMembershipRepositoryを作成します
func NewMembershipRepository(store *Store) *MembershipRepository {
	return &MembershipRepository{store: store}
}

// AddGroupMember はユーザーを指定ロールでグループに追加します
func (r *MembershipRepository) AddGroupMember(ctx context.Context, groupID, userID uuid.UUID, role valueobject.GroupRole) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	members, ok := r.store.groups[groupID]
	if !ok {
		members = make(map[uuid.UUID]valueobject.GroupRole)
		r.store.groups[groupID] = members
	}
	members[userID] = role
	return nil
}

// FindGroupRole はユーザーのグループ内ロールを取得します
func (r *MembershipRepository) FindGroupRole(ctx context.Context, groupID, userID uuid.UUID) (valueobject.GroupRole, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	role, ok := r.store.groups[groupID][userID]
	if !ok {
		return "", apperror.NewNotFoundError("group member")
	}
	return role, nil
}

// FindGroupIDsByUser はユーザーが所属するグループIDを取得します
func (r *MembershipRepository) FindGroupIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var ids []uuid.UUID
	for groupID, members := range r.store.groups {
		if _, ok := members[userID]; ok {
			ids = append(ids, groupID)
		}
	}
	return ids, nil
}

// FindGroupMemberIDs はグループのメンバーIDを取得します
func (r *MembershipRepository) FindGroupMemberIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ids := make([]uuid.UUID, 0, len(r.store.groups[groupID]))
	for userID := range r.store.groups[groupID] {
		ids = append(ids, userID)
	}
	return ids, nil
}

// SetRoomMember はルームメンバーのレベルを設定します
func (r *MembershipRepository) SetRoomMember(ctx context.Context, roomID, userID uuid.UUID, level authz.AccessLevel) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if level.IsNone() {
		delete(r.store.rooms[roomID], userID)
		return nil
	}

	members, ok := r.store.rooms[roomID]
	if !ok {
		members = make(map[uuid.UUID]authz.AccessLevel)
		r.store.rooms[roomID] = members
	}
	members[userID] = level
	return nil
}

// FindRoomMemberLevel はルームメンバーのレベルを取得します
func (r *MembershipRepository) FindRoomMemberLevel(ctx context.Context, roomID, userID uuid.UUID) (authz.AccessLevel, error) {
	if err := ctx.Err(); err != nil {
		return authz.AccessNone, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	level, ok := r.store.rooms[roomID][userID]
	if !ok {
		return authz.AccessNone, nil
	}
	return level, nil
}

var _ repository.MembershipRepository = (*MembershipRepository)(nil)
