// Package testutil provides shared fixtures for tests
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/service"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/infrastructure/memory"
)

// Backend bundles the in-memory registries and the domain services built on them
type Backend struct {
	Entries     *memory.EntryRepository
	Links       *memory.ShareLinkRepository
	Grants      *memory.ShareGrantRepository
	Memberships *memory.MembershipRepository
	Sessions    *memory.AnonymousSessionRepository
	Inbox       *memory.SharedInboxRepository
	Locker      *memory.EntryLocker

	Hierarchy service.EntryHierarchyService
	Engine    service.AccessEngine
	Gate      service.LinkGate
}

// NewBackend creates an isolated in-memory backend for a single test
func NewBackend(t *testing.T) *Backend {
	t.Helper()
	store := memory.NewStore()

	b := &Backend{
		Entries:     memory.NewEntryRepository(store),
		Links:       memory.NewShareLinkRepository(store),
		Grants:      memory.NewShareGrantRepository(store),
		Memberships: memory.NewMembershipRepository(store),
		Sessions:    memory.NewAnonymousSessionRepository(store),
		Inbox:       memory.NewSharedInboxRepository(store),
		Locker:      memory.NewEntryLocker(),
	}
	b.Hierarchy = service.NewEntryHierarchyService(b.Entries)
	b.Engine = service.NewAccessEngine(
		b.Hierarchy,
		service.NewShareGrantResolver(b.Grants, b.Memberships),
		b.Links,
		b.Memberships,
		b.Sessions,
	)
	b.Gate = service.NewLinkGate(b.Links, b.Sessions, service.WithSessionTTL(time.Hour))
	return b
}

// Room creates and stores a room
func (b *Backend) Room(t *testing.T, roomType valueobject.RoomType, owner uuid.UUID) *entity.Entry {
	t.Helper()
	room, err := entity.NewRoom("Room", roomType, owner)
	require.NoError(t, err)
	require.NoError(t, b.Entries.Create(context.Background(), room))
	return room
}

// Folder creates and stores a folder under parent (nil for a personal root)
func (b *Backend) Folder(t *testing.T, parent *entity.Entry, owner uuid.UUID) *entity.Entry {
	t.Helper()
	folder, err := entity.NewFolder("Folder", parent, owner)
	require.NoError(t, err)
	require.NoError(t, b.Entries.Create(context.Background(), folder))
	return folder
}

// File creates and stores a file under parent
func (b *Backend) File(t *testing.T, parent *entity.Entry, owner uuid.UUID) *entity.Entry {
	t.Helper()
	file, err := entity.NewFile("File.docx", parent, owner)
	require.NoError(t, err)
	require.NoError(t, b.Entries.Create(context.Background(), file))
	return file
}

// Link stores a link on entry, primary when the entry has none yet
func (b *Backend) Link(t *testing.T, entry *entity.Entry, level authz.AccessLevel, opts ...func(*entity.ShareLink)) *entity.ShareLink {
	t.Helper()
	ctx := context.Background()
	_, err := b.Links.FindPrimaryByEntryID(ctx, entry.ID)
	primary := err != nil

	link, err := entity.NewShareLink(entry, level, primary, entry.OwnerID)
	require.NoError(t, err)
	for _, opt := range opts {
		opt(link)
	}
	require.NoError(t, b.Links.Create(ctx, link))
	return link
}

// WithPassword sets a link password
func WithPassword(t *testing.T, plaintext string) func(*entity.ShareLink) {
	pw, err := valueobject.NewLinkPassword(plaintext)
	require.NoError(t, err)
	return func(l *entity.ShareLink) { l.UpdatePassword(&pw) }
}
