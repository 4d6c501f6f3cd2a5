package authz

// Capabilities はアクセスレベルから導出される能力の集合
// ダウンロード可否はレベルだけでは決まらないため含みません
type Capabilities struct {
	Read    bool `json:"read"`
	Review  bool `json:"review"`
	Comment bool `json:"comment"`
	Edit    bool `json:"edit"`
	Share   bool `json:"share"`
}

// CapabilitiesOf はレベルに対応する能力を返します
// 全てのレベルについて定義されており、未知の値は None と同じ扱いです
func CapabilitiesOf(level AccessLevel) Capabilities {
	switch level {
	case AccessEditing:
		return Capabilities{Read: true, Review: true, Comment: true, Edit: true, Share: true}
	case AccessComment:
		return Capabilities{Read: true, Comment: true}
	case AccessReview:
		return Capabilities{Read: true, Review: true, Comment: true}
	case AccessRead:
		return Capabilities{Read: true}
	default:
		return Capabilities{}
	}
}

// Any はいずれかの能力を持つかを判定します
func (c Capabilities) Any() bool {
	return c.Read || c.Review || c.Comment || c.Edit || c.Share
}
