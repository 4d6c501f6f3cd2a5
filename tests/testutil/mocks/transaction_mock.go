package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock of repository.TransactionManager
type MockTransactionManager struct {
	mock.Mock
}

func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// WithTransaction executes the function directly without a real transaction
func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// MockEntryLocker is a mock of repository.EntryLocker
type MockEntryLocker struct {
	mock.Mock
}

func NewMockEntryLocker(t *testing.T) *MockEntryLocker {
	m := &MockEntryLocker{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// WithEntryLock executes the function directly without holding a lock
func (m *MockEntryLocker) WithEntryLock(ctx context.Context, entryID uuid.UUID, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
