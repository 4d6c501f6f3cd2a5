package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
)

// Store はシングルノード・開発用のインメモリ永続化先です
// 全てのリポジトリが一つのRWMutexを共有し、保存・取得時はコピーを渡します
type Store struct {
	mu sync.RWMutex

	entries  map[uuid.UUID]*entity.Entry
	links    map[uuid.UUID]*entity.ShareLink
	tokens   map[string]uuid.UUID
	grants   map[grantKey]*authz.ShareGrant
	groups   map[uuid.UUID]map[uuid.UUID]valueobject.GroupRole // groupID -> userID -> role
	rooms    map[uuid.UUID]map[uuid.UUID]authz.AccessLevel
	sessions map[string]*entity.AnonymousSession
	inbox    map[uuid.UUID]int64
}

type grantKey struct {
	entryID     uuid.UUID
	subjectType authz.SubjectType
	subjectID   uuid.UUID
}

// NewStore は空のStoreを作成します
func NewStore() *Store {
	return &Store{
		entries:  make(map[uuid.UUID]*entity.Entry),
		links:    make(map[uuid.UUID]*entity.ShareLink),
		tokens:   make(map[string]uuid.UUID),
		grants:   make(map[grantKey]*authz.ShareGrant),
		groups:   make(map[uuid.UUID]map[uuid.UUID]valueobject.GroupRole),
		rooms:    make(map[uuid.UUID]map[uuid.UUID]authz.AccessLevel),
		sessions: make(map[string]*entity.AnonymousSession),
		inbox:    make(map[uuid.UUID]int64),
	}
}

func copyEntry(e *entity.Entry) *entity.Entry {
	c := *e
	if e.ParentID != nil {
		p := *e.ParentID
		c.ParentID = &p
	}
	return &c
}

func copyLink(l *entity.ShareLink) *entity.ShareLink {
	c := *l
	if l.ExpiresAt != nil {
		t := *l.ExpiresAt
		c.ExpiresAt = &t
	}
	return &c
}

func copyGrant(g *authz.ShareGrant) *authz.ShareGrant {
	c := *g
	return &c
}

func copySession(s *entity.AnonymousSession) *entity.AnonymousSession {
	c := *s
	return &c
}
