package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/service"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
)

func roomChain(t *testing.T, roomType valueobject.RoomType) (room, file entity.EntryChain) {
	t.Helper()
	owner := uuid.New()
	r, err := entity.NewRoom("Room", roomType, owner)
	require.NoError(t, err)
	f, err := entity.NewFile("a.txt", r, owner)
	require.NoError(t, err)
	return entity.EntryChain{r}, entity.EntryChain{r, f}
}

func TestLinkPolicy_RoomTypes(t *testing.T) {
	publicRoom, publicFile := roomChain(t, valueobject.RoomTypePublic)
	customRoom, customFile := roomChain(t, valueobject.RoomTypeCustom)
	vdrRoom, vdrFile := roomChain(t, valueobject.RoomTypeVirtualData)

	assert.NoError(t, service.LinkPolicyFor(publicRoom).CheckLevel(authz.AccessRead))
	assert.True(t, apperror.IsValidation(service.LinkPolicyFor(publicRoom).CheckLevel(authz.AccessEditing)))
	assert.True(t, service.LinkPolicyFor(publicRoom).IgnoresInternalToggle())
	assert.False(t, service.LinkPolicyFor(publicRoom).ForcesPublic())
	assert.True(t, service.LinkPolicyFor(publicFile).ForcesPublic())
	assert.False(t, service.LinkPolicyFor(publicFile).IgnoresInternalToggle())

	assert.NoError(t, service.LinkPolicyFor(customRoom).CheckLevel(authz.AccessEditing))
	assert.NoError(t, service.LinkPolicyFor(customFile).CheckLevel(authz.AccessComment))
	assert.False(t, service.LinkPolicyFor(customRoom).IgnoresInternalToggle())
	assert.False(t, service.LinkPolicyFor(customFile).ForcesPublic())

	assert.True(t, apperror.IsValidation(service.LinkPolicyFor(vdrRoom).CheckLinkCapable()))
	assert.True(t, apperror.IsValidation(service.LinkPolicyFor(vdrFile).CheckLevel(authz.AccessRead)))
}

func TestLinkPolicy_PersonalTree(t *testing.T) {
	folder, err := entity.NewFolder("My", nil, uuid.New())
	require.NoError(t, err)
	policy := service.LinkPolicyFor(entity.EntryChain{folder})

	assert.NoError(t, policy.CheckLinkCapable())
	assert.NoError(t, policy.CheckLevel(authz.AccessEditing))
	assert.True(t, apperror.IsValidation(policy.CheckLevel(authz.AccessNone)))
	assert.False(t, policy.ForcesPublic())
	assert.False(t, policy.IsRoomLink())
}
