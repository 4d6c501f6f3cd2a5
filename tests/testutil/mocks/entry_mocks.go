package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
)

// MockEntryRepository is a mock of repository.EntryRepository
type MockEntryRepository struct {
	mock.Mock
}

func NewMockEntryRepository(t *testing.T) *MockEntryRepository {
	m := &MockEntryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEntryRepository) Create(ctx context.Context, entry *entity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindByParentID(ctx context.Context, parentID uuid.UUID) ([]*entity.Entry, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Entry), args.Error(1)
}

// MockEntryHierarchyService is a mock of service.EntryHierarchyService
type MockEntryHierarchyService struct {
	mock.Mock
}

func NewMockEntryHierarchyService(t *testing.T) *MockEntryHierarchyService {
	m := &MockEntryHierarchyService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEntryHierarchyService) Chain(ctx context.Context, entryID uuid.UUID) (entity.EntryChain, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(entity.EntryChain), args.Error(1)
}
