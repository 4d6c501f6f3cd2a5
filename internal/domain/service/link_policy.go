package service

import (
	"fmt"
	"slices"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
)

// LinkPolicy はチェーンの文脈（所属ルームの種類と対象の種類）で許可されるリンク操作を表します
type LinkPolicy struct {
	room   *entity.Entry
	target *entity.Entry
}

// LinkPolicyFor はチェーンからLinkPolicyを生成します
func LinkPolicyFor(chain entity.EntryChain) LinkPolicy {
	return LinkPolicy{room: chain.Room(), target: chain.Target()}
}

// CheckLinkCapable はリンクを持てる文脈かを検証します
func (p LinkPolicy) CheckLinkCapable() error {
	if p.room != nil && !p.room.RoomType.AllowsLinks() {
		return apperror.NewValidationError(
			fmt.Sprintf("room type %q does not support external links", p.room.RoomType),
			[]apperror.FieldError{{Field: "roomType", Message: "external links are not available"}},
		)
	}
	return nil
}

// CheckLevel はアクセスレベルがこの文脈で許可されるかを検証します
func (p LinkPolicy) CheckLevel(level authz.AccessLevel) error {
	if err := p.CheckLinkCapable(); err != nil {
		return err
	}
	if p.allowsLevel(level) {
		return nil
	}
	return apperror.NewValidationError(
		fmt.Sprintf("access level %q is not allowed for this link", level),
		[]apperror.FieldError{{Field: "access", Message: "not allowed in this context"}},
	)
}

func (p LinkPolicy) allowsLevel(level authz.AccessLevel) bool {
	if p.room == nil {
		return slices.Contains(valueobject.PersonalLinkLevels(), level)
	}
	return p.room.RoomType.AllowsLinkLevel(level)
}

// IsRoomLink は対象がルーム自身かを判定します
func (p LinkPolicy) IsRoomLink() bool {
	return p.target != nil && p.target.IsRoom()
}

// IgnoresInternalToggle はルーム自身のリンクで内部限定の切替が無効な文脈かを判定します
func (p LinkPolicy) IgnoresInternalToggle() bool {
	return p.IsRoomLink() && !p.room.RoomType.AllowsInternalLinks()
}

// ForcesPublic は配下のリンクを期限なし・外部公開に固定する文脈かを判定します
func (p LinkPolicy) ForcesPublic() bool {
	return p.room != nil && !p.IsRoomLink() && p.room.RoomType.ForcesPublicChildLinks()
}
