package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/clubpanel/backend/internal/domain/accounting"
	"github.com/clubpanel/backend/internal/domain/identity"
	"github.com/clubpanel/backend/internal/domain/shared"
)

// MockClubRepository implements identity.ClubRepository for testing
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

// MockMembershipRepository implements identity.MembershipRepository for testing
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

// MockUserRepository implements identity.UserRepository for testing
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

// MockSupplierRepository implements accounting.SupplierRepository for testing
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) Create(ctx context.Context, supplier *accounting.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Update(ctx context.Context, supplier *accounting.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) DeleteForClub(ctx context.Context, clubID, id int64) error {
	args := m.Called(ctx, clubID, id)
	return args.Error(0)
}

func (m *MockSupplierRepository) FindByIDForClub(ctx context.Context, clubID, id int64) (*accounting.Supplier, error) {
	args := m.Called(ctx, clubID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounting.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAllForClub(ctx context.Context, clubID int64, filter shared.Filter) ([]accounting.Supplier, int64, error) {
	args := m.Called(ctx, clubID, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]accounting.Supplier), args.Get(1).(int64), args.Error(2)
}

// MockEntryRepository implements accounting.EntryRepository for testing
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) Create(ctx context.Context, entry *accounting.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) Update(ctx context.Context, entry *accounting.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) DeleteForClub(ctx context.Context, clubID, id int64) error {
	args := m.Called(ctx, clubID, id)
	return args.Error(0)
}

func (m *MockEntryRepository) FindByIDForClub(ctx context.Context, clubID, id int64) (*accounting.Entry, error) {
	args := m.Called(ctx, clubID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounting.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindAllForClub(ctx context.Context, clubID int64, filter accounting.EntryFilter) ([]accounting.Entry, int64, error) {
	args := m.Called(ctx, clubID, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]accounting.Entry), args.Get(1).(int64), args.Error(2)
}

// MockBankMovementRepository implements accounting.BankMovementRepository for testing
type MockBankMovementRepository struct {
	mock.Mock
}

func (m *MockBankMovementRepository) Create(ctx context.Context, movement *accounting.BankMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockBankMovementRepository) FindByIDForClub(ctx context.Context, clubID, id int64) (*accounting.BankMovement, error) {
	args := m.Called(ctx, clubID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounting.BankMovement), args.Error(1)
}

func (m *MockBankMovementRepository) FindAllForClub(ctx context.Context, clubID int64, filter shared.Filter) ([]accounting.BankMovement, int64, error) {
	args := m.Called(ctx, clubID, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]accounting.BankMovement), args.Get(1).(int64), args.Error(2)
}

// MockMatchRepository implements accounting.MatchRepository for testing
type MockMatchRepository struct {
	mock.Mock
}

func (m *MockMatchRepository) CreateIgnoreDuplicate(ctx context.Context, match *accounting.ReconciliationMatch) (bool, error) {
	args := m.Called(ctx, match)
	return args.Bool(0), args.Error(1)
}

func (m *MockMatchRepository) FindAllForClub(ctx context.Context, clubID int64, filter shared.Filter) ([]accounting.ReconciliationMatch, int64, error) {
	args := m.Called(ctx, clubID, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]accounting.ReconciliationMatch), args.Get(1).(int64), args.Error(2)
}

// MockSuggestionRepository implements accounting.SuggestionRepository for testing
type MockSuggestionRepository struct {
	mock.Mock
}

func (m *MockSuggestionRepository) FindForClub(ctx context.Context, clubID int64, limit int) ([]accounting.MatchSuggestion, error) {
	args := m.Called(ctx, clubID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]accounting.MatchSuggestion), args.Error(1)
}

var (
	_ identity.ClubRepository          = (*MockClubRepository)(nil)
	_ identity.MembershipRepository    = (*MockMembershipRepository)(nil)
	_ identity.UserRepository          = (*MockUserRepository)(nil)
	_ accounting.SupplierRepository    = (*MockSupplierRepository)(nil)
	_ accounting.EntryRepository       = (*MockEntryRepository)(nil)
	_ accounting.BankMovementRepository = (*MockBankMovementRepository)(nil)
	_ accounting.MatchRepository       = (*MockMatchRepository)(nil)
	_ accounting.SuggestionRepository  = (*MockSuggestionRepository)(nil)
)
