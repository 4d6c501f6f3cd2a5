package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
)

// MockShareGrantRepository is a mock of authz.ShareGrantRepository
type MockShareGrantRepository struct {
	mock.Mock
}

func NewMockShareGrantRepository(t *testing.T) *MockShareGrantRepository {
	m := &MockShareGrantRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockShareGrantRepository) Upsert(ctx context.Context, grant *authz.ShareGrant) error {
	args := m.Called(ctx, grant)
	return args.Error(0)
}

func (m *MockShareGrantRepository) Delete(ctx context.Context, entryID uuid.UUID, subjectType authz.SubjectType, subjectID uuid.UUID) error {
	args := m.Called(ctx, entryID, subjectType, subjectID)
	return args.Error(0)
}

func (m *MockShareGrantRepository) FindBySubject(ctx context.Context, entryID uuid.UUID, subjectType authz.SubjectType, subjectID uuid.UUID) (*authz.ShareGrant, error) {
	args := m.Called(ctx, entryID, subjectType, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authz.ShareGrant), args.Error(1)
}

func (m *MockShareGrantRepository) FindByEntryID(ctx context.Context, entryID uuid.UUID) ([]*authz.ShareGrant, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*authz.ShareGrant), args.Error(1)
}

func (m *MockShareGrantRepository) FindByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) ([]*authz.ShareGrant, error) {
	args := m.Called(ctx, entryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*authz.ShareGrant), args.Error(1)
}

// MockMembershipRepository is a mock of repository.MembershipRepository
type MockMembershipRepository struct {
	mock.Mock
}

func NewMockMembershipRepository(t *testing.T) *MockMembershipRepository {
	m := &MockMembershipRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockMembershipRepository) AddGroupMember(ctx context.Context, groupID, userID uuid.UUID, role valueobject.GroupRole) error {
	args := m.Called(ctx, groupID, userID, role)
	return args.Error(0)
}

func (m *MockMembershipRepository) FindGroupRole(ctx context.Context, groupID, userID uuid.UUID) (valueobject.GroupRole, error) {
	args := m.Called(ctx, groupID, userID)
	return args.Get(0).(valueobject.GroupRole), args.Error(1)
}

func (m *MockMembershipRepository) FindGroupIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockMembershipRepository) FindGroupMemberIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockMembershipRepository) SetRoomMember(ctx context.Context, roomID, userID uuid.UUID, level authz.AccessLevel) error {
	args := m.Called(ctx, roomID, userID, level)
	return args.Error(0)
}

func (m *MockMembershipRepository) FindRoomMemberLevel(ctx context.Context, roomID, userID uuid.UUID) (authz.AccessLevel, error) {
	args := m.Called(ctx, roomID, userID)
	return args.Get(0).(authz.AccessLevel), args.Error(1)
}

// MockAccessEngine is a mock of service.AccessEngine
type MockAccessEngine struct {
	mock.Mock
}

func NewMockAccessEngine(t *testing.T) *MockAccessEngine {
	m := &MockAccessEngine{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccessEngine) Resolve(ctx context.Context, entryID uuid.UUID, cred authz.Credential) (*authz.EffectiveAccess, error) {
	args := m.Called(ctx, entryID, cred)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authz.EffectiveAccess), args.Error(1)
}

func (m *MockAccessEngine) PrincipalLevel(ctx context.Context, chain entity.EntryChain, userID uuid.UUID) (authz.AccessLevel, error) {
	args := m.Called(ctx, chain, userID)
	return args.Get(0).(authz.AccessLevel), args.Error(1)
}

func (m *MockAccessEngine) AuthorizeManage(ctx context.Context, entryID, userID uuid.UUID) (entity.EntryChain, error) {
	args := m.Called(ctx, entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(entity.EntryChain), args.Error(1)
}
