package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/service"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/infrastructure/memory"
)

type resolverFixture struct {
	grants      *memory.ShareGrantRepository
	memberships *memory.MembershipRepository
	resolver    service.ShareGrantResolver
	chain       entity.EntryChain
}

func newResolverFixture(t *testing.T) *resolverFixture {
	t.Helper()
	store := memory.NewStore()
	owner := uuid.New()

	room, err := entity.NewRoom("Room", valueobject.RoomTypeCustom, owner)
	require.NoError(t, err)
	folder, err := entity.NewFolder("Folder", room, owner)
	require.NoError(t, err)
	file, err := entity.NewFile("file.txt", folder, owner)
	require.NoError(t, err)

	f := &resolverFixture{
		grants:      memory.NewShareGrantRepository(store),
		memberships: memory.NewMembershipRepository(store),
		chain:       entity.EntryChain{room, folder, file},
	}
	f.resolver = service.NewShareGrantResolver(f.grants, f.memberships)
	return f
}

func (f *resolverFixture) grant(t *testing.T, entry *entity.Entry, subjectType authz.SubjectType, subjectID uuid.UUID, level authz.AccessLevel) {
	t.Helper()
	require.NoError(t, f.grants.Upsert(context.Background(), authz.NewShareGrant(entry.ID, subjectType, subjectID, level, entry.OwnerID)))
}

func TestShareGrantResolver_EffectiveLevel(t *testing.T) {
	ctx := context.Background()

	t.Run("user grant wins over higher group grant", func(t *testing.T) {
		f := newResolverFixture(t)
		user, group := uuid.New(), uuid.New()
		require.NoError(t, f.memberships.AddGroupMember(ctx, group, user, valueobject.GroupRoleMember))
		room := f.chain[0]
		f.grant(t, room, authz.SubjectTypeGroup, group, authz.AccessEditing)
		f.grant(t, room, authz.SubjectTypeUser, user, authz.AccessRead)

		level, err := f.resolver.EffectiveLevel(ctx, room.ID, user)

		require.NoError(t, err)
		assert.Equal(t, authz.AccessRead, level)
	})

	t.Run("group grants merge by maximum", func(t *testing.T) {
		f := newResolverFixture(t)
		user, g1, g2 := uuid.New(), uuid.New(), uuid.New()
		require.NoError(t, f.memberships.AddGroupMember(ctx, g1, user, valueobject.GroupRoleMember))
		require.NoError(t, f.memberships.AddGroupMember(ctx, g2, user, valueobject.GroupRoleMember))
		room := f.chain[0]
		f.grant(t, room, authz.SubjectTypeGroup, g1, authz.AccessReview)
		f.grant(t, room, authz.SubjectTypeGroup, g2, authz.AccessComment)

		level, err := f.resolver.EffectiveLevel(ctx, room.ID, user)

		require.NoError(t, err)
		assert.Equal(t, authz.AccessComment, level)
	})

	t.Run("no grant is none", func(t *testing.T) {
		f := newResolverFixture(t)

		level, err := f.resolver.EffectiveLevel(ctx, f.chain[0].ID, uuid.New())

		require.NoError(t, err)
		assert.Equal(t, authz.AccessNone, level)
	})
}

func TestShareGrantResolver_ChainLevel(t *testing.T) {
	ctx := context.Background()
	f := newResolverFixture(t)
	user := uuid.New()
	room, folder, file := f.chain[0], f.chain[1], f.chain[2]

	f.grant(t, room, authz.SubjectTypeUser, user, authz.AccessReview)
	f.grant(t, folder, authz.SubjectTypeUser, user, authz.AccessEditing)

	level, err := f.resolver.ChainLevel(ctx, f.chain, user)
	require.NoError(t, err)
	assert.Equal(t, authz.AccessEditing, level)

	// a lower grant deeper in the tree does not reduce inherited access
	f.grant(t, file, authz.SubjectTypeUser, user, authz.AccessRead)
	level, err = f.resolver.ChainLevel(ctx, f.chain, user)
	require.NoError(t, err)
	assert.Equal(t, authz.AccessEditing, level)

	level, err = f.resolver.ChainLevel(ctx, nil, user)
	require.NoError(t, err)
	assert.Equal(t, authz.AccessNone, level)
}
