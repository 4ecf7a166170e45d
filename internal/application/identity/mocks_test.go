package identity

import (
	"context"

	"github.com/clubpanel/backend/internal/domain/identity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockClubRepository is a mock implementation of identity.ClubRepository
type MockClubRepository struct {
	mock.Mock
}

func (m *MockClubRepository) Create(ctx context.Context, club *identity.Club) error {
	args := m.Called(ctx, club)
	return args.Error(0)
}

func (m *MockClubRepository) CreateWithOwner(ctx context.Context, club *identity.Club, owner *identity.Membership) error {
	args := m.Called(ctx, club, owner)
	return args.Error(0)
}

func (m *MockClubRepository) Update(ctx context.Context, club *identity.Club) error {
	args := m.Called(ctx, club)
	return args.Error(0)
}

func (m *MockClubRepository) FindByID(ctx context.Context, id int64) (*identity.Club, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Club), args.Error(1)
}

func (m *MockClubRepository) FindByIDs(ctx context.Context, ids []int64) ([]*identity.Club, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*identity.Club), args.Error(1)
}

// MockMembershipRepository is a mock implementation of identity.MembershipRepository
type MockMembershipRepository struct {
	mock.Mock
}

func (m *MockMembershipRepository) Create(ctx context.Context, membership *identity.Membership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockMembershipRepository) Update(ctx context.Context, membership *identity.Membership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockMembershipRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMembershipRepository) FindByID(ctx context.Context, id int64) (*identity.Membership, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Membership), args.Error(1)
}

func (m *MockMembershipRepository) FindByUserAndClub(ctx context.Context, userID uuid.UUID, clubID int64) (*identity.Membership, error) {
	args := m.Called(ctx, userID, clubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Membership), args.Error(1)
}

func (m *MockMembershipRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*identity.Membership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*identity.Membership), args.Error(1)
}

func (m *MockMembershipRepository) ListMembers(ctx context.Context, clubID int64) ([]*identity.Member, error) {
	args := m.Called(ctx, clubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*identity.Member), args.Error(1)
}

func (m *MockMembershipRepository) CountByRole(ctx context.Context, clubID int64, role identity.Role) (int64, error) {
	args := m.Called(ctx, clubID, role)
	return args.Get(0).(int64), args.Error(1)
}

var (
	_ identity.UserRepository       = (*MockUserRepository)(nil)
	_ identity.ClubRepository       = (*MockClubRepository)(nil)
	_ identity.MembershipRepository = (*MockMembershipRepository)(nil)
)
