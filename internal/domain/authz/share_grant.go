package authz

import (
	"time"

	"github.com/google/uuid"
)

// ShareGrant はエントリに対するユーザー/グループへの直接共有を表すエンティティ
// 一つのエントリにつき付与対象ごとに最大一件です
type ShareGrant struct {
	ID          uuid.UUID
	EntryID     uuid.UUID
	SubjectType SubjectType
	SubjectID   uuid.UUID
	Access      AccessLevel
	GrantedBy   uuid.UUID
	GrantedAt   time.Time
}

// NewShareGrant は新しいShareGrantを生成します
func NewShareGrant(
	entryID uuid.UUID,
	subjectType SubjectType,
	subjectID uuid.UUID,
	access AccessLevel,
	grantedBy uuid.UUID,
) *ShareGrant {
	return &ShareGrant{
		ID:          uuid.New(),
		EntryID:     entryID,
		SubjectType: subjectType,
		SubjectID:   subjectID,
		Access:      access,
		GrantedBy:   grantedBy,
		GrantedAt:   time.Now(),
	}
}

// IsForUser は指定ユーザー本人への付与かを判定します
func (g *ShareGrant) IsForUser(userID uuid.UUID) bool {
	return g.SubjectType.IsUser() && g.SubjectID == userID
}

// IsForAnyGroup は指定グループのいずれかへの付与かを判定します
func (g *ShareGrant) IsForAnyGroup(groupIDs []uuid.UUID) bool {
	if !g.SubjectType.IsGroup() {
		return false
	}
	for _, id := range groupIDs {
		if g.SubjectID == id {
			return true
		}
	}
	return false
}
