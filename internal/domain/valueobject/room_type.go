package valueobject

import (
	"errors"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
)

var (
	ErrInvalidRoomType = errors.New("invalid room type")
)

// RoomType はルームの種類を表す型
// 種類ごとに共有リンクの可否と許可されるアクセスレベルが決まります
type RoomType string

const (
	RoomTypePublic       RoomType = "public"
	RoomTypeCustom       RoomType = "custom"
	RoomTypeFillingForms RoomType = "filling_forms"
	RoomTypeEditing      RoomType = "editing"
	RoomTypeVirtualData  RoomType = "virtual_data"
)

// NewRoomType は文字列からRoomTypeを生成します
func NewRoomType(t string) (RoomType, error) {
	rt := RoomType(t)
	if !rt.IsValid() {
		return "", ErrInvalidRoomType
	}
	return rt, nil
}

// IsValid はルームタイプが有効かを判定します
func (t RoomType) IsValid() bool {
	switch t {
	case RoomTypePublic, RoomTypeCustom, RoomTypeFillingForms, RoomTypeEditing, RoomTypeVirtualData:
		return true
	default:
		return false
	}
}

// String は文字列を返します
func (t RoomType) String() string {
	return string(t)
}

// AllowsLinks は外部共有リンクを持てるかを判定します
func (t RoomType) AllowsLinks() bool {
	switch t {
	case RoomTypePublic, RoomTypeCustom, RoomTypeFillingForms:
		return true
	default:
		return false
	}
}

// AllowedLinkLevels はリンクに設定可能なアクセスレベルを返します
func (t RoomType) AllowedLinkLevels() []authz.AccessLevel {
	switch t {
	case RoomTypeCustom:
		return []authz.AccessLevel{authz.AccessRead, authz.AccessReview, authz.AccessComment, authz.AccessEditing}
	case RoomTypePublic, RoomTypeFillingForms:
		return []authz.AccessLevel{authz.AccessRead}
	default:
		return nil
	}
}

// AllowsLinkLevel はリンクに指定レベルを設定可能かを判定します
func (t RoomType) AllowsLinkLevel(level authz.AccessLevel) bool {
	for _, l := range t.AllowedLinkLevels() {
		if l == level {
			return true
		}
	}
	return false
}

// AllowsInternalLinks はルーム自身のリンクを内部限定にできるかを判定します
func (t RoomType) AllowsInternalLinks() bool {
	return t != RoomTypePublic
}

// ForcesPublicChildLinks は配下のリンクを期限なし・外部公開に固定するかを判定します
func (t RoomType) ForcesPublicChildLinks() bool {
	return t == RoomTypePublic
}

// PersonalLinkLevels はルーム外（個人ツリー）のエントリに許可されるレベルを返します
func PersonalLinkLevels() []authz.AccessLevel {
	return []authz.AccessLevel{authz.AccessRead, authz.AccessReview, authz.AccessComment, authz.AccessEditing}
}
