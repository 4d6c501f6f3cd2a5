package query_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/usecase/sharing/query"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/tests/testutil/mocks"
)

func TestGetNewItemsCountQuery_Execute(t *testing.T) {
	ctx := context.Background()
	inbox := mocks.NewMockSharedInboxRepository(t)
	userID := uuid.New()
	inbox.On("Count", ctx, userID).Return(int64(3), nil)

	output, err := query.NewGetNewItemsCountQuery(inbox).Execute(ctx, query.GetNewItemsCountInput{UserID: userID})

	require.NoError(t, err)
	assert.Equal(t, int64(3), output.Count)
}
