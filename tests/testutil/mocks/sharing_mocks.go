package mocks

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
)

// MockShareLinkRepository is a mock of repository.ShareLinkRepository
type MockShareLinkRepository struct {
	mock.Mock
}

func NewMockShareLinkRepository(t *testing.T) *MockShareLinkRepository {
	m := &MockShareLinkRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockShareLinkRepository) Create(ctx context.Context, link *entity.ShareLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockShareLinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShareLink, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ShareLink), args.Error(1)
}

func (m *MockShareLinkRepository) Update(ctx context.Context, link *entity.ShareLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockShareLinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShareLinkRepository) FindByToken(ctx context.Context, token valueobject.ShareToken) (*entity.ShareLink, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ShareLink), args.Error(1)
}

func (m *MockShareLinkRepository) FindByEntryID(ctx context.Context, entryID uuid.UUID) ([]*entity.ShareLink, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ShareLink), args.Error(1)
}

func (m *MockShareLinkRepository) FindPrimaryByEntryID(ctx context.Context, entryID uuid.UUID) (*entity.ShareLink, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ShareLink), args.Error(1)
}

func (m *MockShareLinkRepository) DeleteExpiredBefore(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// MockAnonymousSessionRepository is a mock of repository.AnonymousSessionRepository
type MockAnonymousSessionRepository struct {
	mock.Mock
}

func NewMockAnonymousSessionRepository(t *testing.T) *MockAnonymousSessionRepository {
	m := &MockAnonymousSessionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAnonymousSessionRepository) Save(ctx context.Context, session *entity.AnonymousSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockAnonymousSessionRepository) FindByKey(ctx context.Context, key string) (*entity.AnonymousSession, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AnonymousSession), args.Error(1)
}

func (m *MockAnonymousSessionRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockSharedInboxRepository is a mock of repository.SharedInboxRepository
type MockSharedInboxRepository struct {
	mock.Mock
}

func NewMockSharedInboxRepository(t *testing.T) *MockSharedInboxRepository {
	m := &MockSharedInboxRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSharedInboxRepository) Increment(ctx context.Context, userIDs []uuid.UUID) error {
	args := m.Called(ctx, userIDs)
	return args.Error(0)
}

func (m *MockSharedInboxRepository) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSharedInboxRepository) Reset(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
