package authz

import "github.com/google/uuid"

// Channel はアクセス解決に使われた経路を表す型
type Channel string

const (
	ChannelLink      Channel = "link"
	ChannelPrincipal Channel = "principal"
)

// String は文字列を返します
func (c Channel) String() string {
	return string(c)
}

// EffectiveAccess はエントリと資格情報の組に対する解決済みアクセス
type EffectiveAccess struct {
	EntryID      uuid.UUID
	Level        AccessLevel
	Capabilities Capabilities
	// CanDownload はダウンロード禁止フラグを考慮した結果です
	CanDownload bool
	Channel     Channel
	// LinkID はリンク経由の場合のエントリポイントのリンクID
	LinkID *uuid.UUID
}

// NewEffectiveAccess はレベルから能力を導出してEffectiveAccessを生成します
// リンク経由のアクセスは編集レベルでも再共有できません
func NewEffectiveAccess(entryID uuid.UUID, level AccessLevel, canDownload bool, channel Channel, linkID *uuid.UUID) *EffectiveAccess {
	caps := CapabilitiesOf(level)
	if channel == ChannelLink {
		caps.Share = false
	}
	return &EffectiveAccess{
		EntryID:      entryID,
		Level:        level,
		Capabilities: caps,
		CanDownload:  canDownload && level.Includes(AccessRead),
		Channel:      channel,
		LinkID:       linkID,
	}
}
