package entity

import "github.com/google/uuid"

// EntryChain はルートから対象エントリまでの包含チェーン（ルート側が先頭）
type EntryChain []*Entry

// Target は対象エントリを返します
func (c EntryChain) Target() *Entry {
	if len(c) == 0 {
		return nil
	}
	return c[len(c)-1]
}

// Room はチェーンが属するルームを返します（ルーム外の場合 nil）
func (c EntryChain) Room() *Entry {
	if len(c) == 0 || !c[0].IsRoom() {
		return nil
	}
	return c[0]
}

// IDs はチェーン上のエントリIDをルート側から順に返します
func (c EntryChain) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(c))
	for i, e := range c {
		ids[i] = e.ID
	}
	return ids
}

// IndexOf はエントリのチェーン上の位置を返します（含まれない場合 -1）
func (c EntryChain) IndexOf(entryID uuid.UUID) int {
	for i, e := range c {
		if e.ID == entryID {
			return i
		}
	}
	return -1
}

// Contains はエントリがチェーンに含まれるかを判定します
func (c EntryChain) Contains(entryID uuid.UUID) bool {
	return c.IndexOf(entryID) >= 0
}
