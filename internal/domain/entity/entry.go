package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
)

const (
	// MaxEntryDepth は階層をたどる際の上限
	MaxEntryDepth = 64
)

var (
	ErrEntryTitleEmpty       = errors.New("entry title cannot be empty")
	ErrRoomHasParent         = errors.New("room cannot have a parent")
	ErrEntryParentRequired   = errors.New("folder and file entries require a parent")
	ErrEntryParentIsFile     = errors.New("a file cannot contain other entries")
	ErrRoomTypeRequired      = errors.New("room type is required for rooms")
	ErrEntryHierarchyCycle   = errors.New("entry hierarchy contains a cycle")
	ErrEntryHierarchyTooDeep = errors.New("entry hierarchy is too deep")
)

// Entry はルーム・フォルダ・ファイルのいずれかを表すエンティティ
// ルームは親を持たず、フォルダとファイルは必ず親を持ちます
type Entry struct {
	ID       uuid.UUID
	Type     authz.EntryType
	ParentID *uuid.UUID
	// RoomType はルームの場合のみ設定されます
	RoomType  valueobject.RoomType
	Title     string
	OwnerID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRoom は新しいルームを作成します
func NewRoom(title string, roomType valueobject.RoomType, ownerID uuid.UUID) (*Entry, error) {
	if !roomType.IsValid() {
		return nil, ErrRoomTypeRequired
	}
	return newEntry(authz.EntryTypeRoom, nil, roomType, title, ownerID)
}

// NewFolder は親エントリの下に新しいフォルダを作成します
// 親を持たないフォルダは個人ツリーのルートとして扱われます
func NewFolder(title string, parent *Entry, ownerID uuid.UUID) (*Entry, error) {
	return newChild(authz.EntryTypeFolder, title, parent, ownerID)
}

// NewFile は親エントリの下に新しいファイルを作成します
func NewFile(title string, parent *Entry, ownerID uuid.UUID) (*Entry, error) {
	if parent == nil {
		return nil, ErrEntryParentRequired
	}
	return newChild(authz.EntryTypeFile, title, parent, ownerID)
}

func newChild(entryType authz.EntryType, title string, parent *Entry, ownerID uuid.UUID) (*Entry, error) {
	if parent == nil {
		return newEntry(entryType, nil, "", title, ownerID)
	}
	if parent.IsFile() {
		return nil, ErrEntryParentIsFile
	}
	parentID := parent.ID
	return newEntry(entryType, &parentID, "", title, ownerID)
}

func newEntry(entryType authz.EntryType, parentID *uuid.UUID, roomType valueobject.RoomType, title string, ownerID uuid.UUID) (*Entry, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEntryTitleEmpty
	}

	now := time.Now()
	return &Entry{
		ID:        uuid.New(),
		Type:      entryType,
		ParentID:  parentID,
		RoomType:  roomType,
		Title:     title,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ReconstructEntry はDBからエントリを復元します
func ReconstructEntry(
	id uuid.UUID,
	entryType authz.EntryType,
	parentID *uuid.UUID,
	roomType valueobject.RoomType,
	title string,
	ownerID uuid.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) *Entry {
	return &Entry{
		ID:        id,
		Type:      entryType,
		ParentID:  parentID,
		RoomType:  roomType,
		Title:     title,
		OwnerID:   ownerID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// IsRoom はルームかを判定します
func (e *Entry) IsRoom() bool {
	return e.Type == authz.EntryTypeRoom
}

// IsFolder はフォルダかを判定します
func (e *Entry) IsFolder() bool {
	return e.Type == authz.EntryTypeFolder
}

// IsFile はファイルかを判定します
func (e *Entry) IsFile() bool {
	return e.Type == authz.EntryTypeFile
}

// IsRoot は親を持たないかを判定します
func (e *Entry) IsRoot() bool {
	return e.ParentID == nil
}

// IsOwnedBy は指定ユーザーが所有者かを判定します
func (e *Entry) IsOwnedBy(userID uuid.UUID) bool {
	return e.OwnerID == userID
}
