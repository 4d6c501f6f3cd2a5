package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/usecase/sharing/command"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/tests/testutil/mocks"
)

func TestMarkSharedSeenCommand_Execute_ResetsCounter(t *testing.T) {
	ctx := context.Background()
	inbox := mocks.NewMockSharedInboxRepository(t)
	userID := uuid.New()
	inbox.On("Reset", ctx, userID).Return(nil)

	err := command.NewMarkSharedSeenCommand(inbox).Execute(ctx, command.MarkSharedSeenInput{UserID: userID})

	assert.NoError(t, err)
}

func TestMarkSharedSeenCommand_Execute_PropagatesError(t *testing.T) {
	ctx := context.Background()
	inbox := mocks.NewMockSharedInboxRepository(t)
	userID := uuid.New()
	inbox.On("Reset", ctx, userID).Return(errors.New("redis down"))

	err := command.NewMarkSharedSeenCommand(inbox).Execute(ctx, command.MarkSharedSeenInput{UserID: userID})

	assert.Error(t, err)
}
