package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/usecase/authz/command"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/tests/testutil/mocks"
)

func TestAddGroupMemberCommand_Execute(t *testing.T) {
	ctx := context.Background()
	groupID, managerID, userID := uuid.New(), uuid.New(), uuid.New()

	t.Run("manager adds member", func(t *testing.T) {
		memberships := mocks.NewMockMembershipRepository(t)
		memberships.On("FindGroupRole", ctx, groupID, managerID).Return(valueobject.GroupRoleManager, nil)
		memberships.On("AddGroupMember", ctx, groupID, userID, valueobject.GroupRoleMember).Return(nil)

		err := command.NewAddGroupMemberCommand(memberships).Execute(ctx, command.AddGroupMemberInput{
			Actor: managerID, GroupID: groupID, UserID: userID,
		})

		require.NoError(t, err)
	})

	t.Run("manager promotes member", func(t *testing.T) {
		memberships := mocks.NewMockMembershipRepository(t)
		memberships.On("FindGroupRole", ctx, groupID, managerID).Return(valueobject.GroupRoleManager, nil)
		memberships.On("AddGroupMember", ctx, groupID, userID, valueobject.GroupRoleManager).Return(nil)

		err := command.NewAddGroupMemberCommand(memberships).Execute(ctx, command.AddGroupMemberInput{
			Actor: managerID, GroupID: groupID, UserID: userID, Role: "manager",
		})

		require.NoError(t, err)
	})

	t.Run("non-member cannot join themselves", func(t *testing.T) {
		memberships := mocks.NewMockMembershipRepository(t)
		memberships.On("FindGroupRole", ctx, groupID, userID).Return(valueobject.GroupRole(""), apperror.NewNotFoundError("group member"))

		err := command.NewAddGroupMemberCommand(memberships).Execute(ctx, command.AddGroupMemberInput{
			Actor: userID, GroupID: groupID, UserID: userID,
		})

		assert.True(t, apperror.IsForbidden(err))
		memberships.AssertNotCalled(t, "AddGroupMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("plain member cannot add others", func(t *testing.T) {
		memberships := mocks.NewMockMembershipRepository(t)
		memberships.On("FindGroupRole", ctx, groupID, userID).Return(valueobject.GroupRoleMember, nil)

		err := command.NewAddGroupMemberCommand(memberships).Execute(ctx, command.AddGroupMemberInput{
			Actor: userID, GroupID: groupID, UserID: uuid.New(),
		})

		assert.True(t, apperror.IsForbidden(err))
		memberships.AssertNotCalled(t, "AddGroupMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		memberships := mocks.NewMockMembershipRepository(t)

		err := command.NewAddGroupMemberCommand(memberships).Execute(ctx, command.AddGroupMemberInput{
			Actor: managerID, GroupID: groupID, UserID: userID, Role: "owner",
		})

		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		memberships := mocks.NewMockMembershipRepository(t)
		memberships.On("FindGroupRole", ctx, groupID, managerID).Return(valueobject.GroupRoleManager, nil)
		memberships.On("AddGroupMember", ctx, groupID, userID, valueobject.GroupRoleMember).Return(errors.New("boom"))

		err := command.NewAddGroupMemberCommand(memberships).Execute(ctx, command.AddGroupMemberInput{
			Actor: managerID, GroupID: groupID, UserID: userID,
		})

		assert.EqualError(t, err, "boom")
	})
}

func TestCreateGroupCommand_Execute(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()

	t.Run("creator becomes manager", func(t *testing.T) {
		memberships := mocks.NewMockMembershipRepository(t)
		memberships.On("AddGroupMember", ctx, mock.AnythingOfType("uuid.UUID"), actor, valueobject.GroupRoleManager).Return(nil)

		output, err := command.NewCreateGroupCommand(memberships).Execute(ctx, command.CreateGroupInput{Actor: actor})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, output.GroupID)
		memberships.AssertCalled(t, "AddGroupMember", ctx, output.GroupID, actor, valueobject.GroupRoleManager)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		memberships := mocks.NewMockMembershipRepository(t)
		memberships.On("AddGroupMember", ctx, mock.Anything, actor, valueobject.GroupRoleManager).Return(errors.New("boom"))

		output, err := command.NewCreateGroupCommand(memberships).Execute(ctx, command.CreateGroupInput{Actor: actor})

		assert.Nil(t, output)
		assert.EqualError(t, err, "boom")
	})
}
