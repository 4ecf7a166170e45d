package accounting

import (
	"context"

	"github.com/clubpanel/backend/internal/domain/accounting"
	"github.com/clubpanel/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockSupplierRepository is a mock implementation of accounting.SupplierRepository
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
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]accounting.Supplier), args.Get(1).(int64), args.Error(2)
}

// MockEntryRepository is a mock implementation of accounting.EntryRepository
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
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]accounting.Entry), args.Get(1).(int64), args.Error(2)
}

// MockBankMovementRepository is a mock implementation of accounting.BankMovementRepository
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
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]accounting.BankMovement), args.Get(1).(int64), args.Error(2)
}

// MockMatchRepository is a mock implementation of accounting.MatchRepository
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
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]accounting.ReconciliationMatch), args.Get(1).(int64), args.Error(2)
}

// MockSuggestionRepository is a mock implementation of accounting.SuggestionRepository
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
	_ accounting.SupplierRepository     = (*MockSupplierRepository)(nil)
	_ accounting.EntryRepository        = (*MockEntryRepository)(nil)
	_ accounting.BankMovementRepository = (*MockBankMovementRepository)(nil)
	_ accounting.MatchRepository        = (*MockMatchRepository)(nil)
	_ accounting.SuggestionRepository   = (*MockSuggestionRepository)(nil)
)
