package query_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/usecase/sharing/query"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/tests/testutil/mocks"
)

func TestListLinksQuery_Execute(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()
	room, err := entity.NewRoom("Room", valueobject.RoomTypeCustom, actor)
	require.NoError(t, err)

	t.Run("returns links of the entry", func(t *testing.T) {
		engine := mocks.NewMockAccessEngine(t)
		links := mocks.NewMockShareLinkRepository(t)
		primary, err := entity.NewDefaultShareLink(room, actor)
		require.NoError(t, err)
		extra, err := entity.NewShareLink(room, authz.AccessEditing, false, actor)
		require.NoError(t, err)

		engine.On("AuthorizeManage", ctx, room.ID, actor).Return(entity.EntryChain{room}, nil)
		links.On("FindByEntryID", ctx, room.ID).Return([]*entity.ShareLink{primary, extra}, nil)

		output, err := query.NewListLinksQuery(engine, links).Execute(ctx, query.ListLinksInput{Actor: actor, EntryID: room.ID})

		require.NoError(t, err)
		assert.Equal(t, []*entity.ShareLink{primary, extra}, output.Links)
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		engine := mocks.NewMockAccessEngine(t)
		links := mocks.NewMockShareLinkRepository(t)

		engine.On("AuthorizeManage", ctx, room.ID, actor).Return(entity.EntryChain{room}, nil)
		links.On("FindByEntryID", ctx, room.ID).Return(nil, nil)

		output, err := query.NewListLinksQuery(engine, links).Execute(ctx, query.ListLinksInput{Actor: actor, EntryID: room.ID})

		require.NoError(t, err)
		assert.NotNil(t, output.Links)
		assert.Empty(t, output.Links)
	})

	t.Run("requires manage rights", func(t *testing.T) {
		engine := mocks.NewMockAccessEngine(t)
		links := mocks.NewMockShareLinkRepository(t)
		viewer := uuid.New()

		engine.On("AuthorizeManage", ctx, room.ID, viewer).Return(nil, apperror.NewForbiddenError("no"))

		_, err := query.NewListLinksQuery(engine, links).Execute(ctx, query.ListLinksInput{Actor: viewer, EntryID: room.ID})

		assert.True(t, apperror.IsForbidden(err))
	})
}
