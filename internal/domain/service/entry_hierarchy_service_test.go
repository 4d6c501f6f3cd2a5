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
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/tests/testutil/mocks"
)

func TestEntryHierarchyService_Chain_ReturnsRootFirst(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockEntryRepository(t)
	owner := uuid.New()

	room, err := entity.NewRoom("Room", valueobject.RoomTypeCustom, owner)
	require.NoError(t, err)
	folder, err := entity.NewFolder("Folder", room, owner)
	require.NoError(t, err)
	file, err := entity.NewFile("a.txt", folder, owner)
	require.NoError(t, err)

	repo.On("FindByID", ctx, file.ID).Return(file, nil)
	repo.On("FindByID", ctx, folder.ID).Return(folder, nil)
	repo.On("FindByID", ctx, room.ID).Return(room, nil)

	chain, err := service.NewEntryHierarchyService(repo).Chain(ctx, file.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.EntryChain{room, folder, file}, chain)
}

func TestEntryHierarchyService_Chain_MissingEntry(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockEntryRepository(t)
	id := uuid.New()
	repo.On("FindByID", ctx, id).Return(nil, apperror.NewNotFoundError("entry"))

	_, err := service.NewEntryHierarchyService(repo).Chain(ctx, id)

	assert.True(t, apperror.IsNotFound(err))
}

func TestEntryHierarchyService_Chain_DanglingParentIsInternal(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockEntryRepository(t)
	parentID := uuid.New()
	file := &entity.Entry{ID: uuid.New(), Type: authz.EntryTypeFile, ParentID: &parentID, Title: "x"}

	repo.On("FindByID", ctx, file.ID).Return(file, nil)
	repo.On("FindByID", ctx, parentID).Return(nil, apperror.NewNotFoundError("entry"))

	_, err := service.NewEntryHierarchyService(repo).Chain(ctx, file.ID)

	code, ok := apperror.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInternalError, code)
}

func TestEntryHierarchyService_Chain_DetectsCycle(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockEntryRepository(t)
	aID, bID := uuid.New(), uuid.New()
	a := &entity.Entry{ID: aID, Type: authz.EntryTypeFolder, ParentID: &bID, Title: "a"}
	b := &entity.Entry{ID: bID, Type: authz.EntryTypeFolder, ParentID: &aID, Title: "b"}

	repo.On("FindByID", ctx, aID).Return(a, nil)
	repo.On("FindByID", ctx, bID).Return(b, nil)

	_, err := service.NewEntryHierarchyService(repo).Chain(ctx, aID)

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrEntryHierarchyCycle)
}
