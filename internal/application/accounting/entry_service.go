package accounting

import (
	"context"

	"github.com/clubpanel/backend/internal/domain/accounting"
	"github.com/clubpanel/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// EntryService manages a club's accounting entries
type EntryService struct {
	entryRepo    accounting.EntryRepository
	supplierRepo accounting.SupplierRepository
	logger       *zap.Logger
}

// NewEntryService creates a new entry service
func NewEntryService(
	entryRepo accounting.EntryRepository,
	supplierRepo accounting.SupplierRepository,
	logger *zap.Logger,
) *EntryService {
	return &EntryService{
		entryRepo:    entryRepo,
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

// CreateEntry creates an accounting entry in the club
func (s *EntryService) CreateEntry(ctx context.Context, clubID int64, input EntryInput) (*accounting.Entry, error) {
	entry, err := accounting.NewEntry(clubID, input.Kind, input.Date, input.TotalAmount, input.Description)
	if err != nil {
		return nil, err
	}
	entry.InvoiceNumber = input.InvoiceNumber
	entry.PaymentDate = input.PaymentDate

	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.FindByIDForClub(ctx, clubID, *input.SupplierID)
		if err != nil {
			if err == shared.ErrNotFound {
				return nil, shared.NewDomainError("SUPPLIER_NOT_FOUND", "Supplier does not exist in this club")
			}
			s.logger.Error("Failed to load supplier", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create entry")
		}
		if err := entry.AttachSupplier(supplier); err != nil {
			return nil, err
		}
	}

	if err := s.entryRepo.Create(ctx, entry); err != nil {
		s.logger.Error("Failed to create entry", zap.Int64("club_id", clubID), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create entry")
	}

	s.logger.Info("Entry created",
		zap.Int64("club_id", clubID),
		zap.Int64("entry_id", entry.ID),
		zap.String("kind", string(entry.Kind)),
	)
	return entry, nil
}

// UpdateEntry updates an entry belonging to the club
func (s *EntryService) UpdateEntry(ctx context.Context, clubID, id int64, input EntryInput) (*accounting.Entry, error) {
	entry, err := s.entryRepo.FindByIDForClub(ctx, clubID, id)
	if err != nil {
		return nil, err
	}

	updated, err := accounting.NewEntry(clubID, input.Kind, input.Date, input.TotalAmount, input.Description)
	if err != nil {
		return nil, err
	}
	entry.Kind = updated.Kind
	entry.Date = updated.Date
	entry.TotalAmount = updated.TotalAmount
	entry.Description = updated.Description
	entry.InvoiceNumber = input.InvoiceNumber
	entry.PaymentDate = input.PaymentDate

	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.FindByIDForClub(ctx, clubID, *input.SupplierID)
		if err != nil {
			if err == shared.ErrNotFound {
				return nil, shared.NewDomainError("SUPPLIER_NOT_FOUND", "Supplier does not exist in this club")
			}
			s.logger.Error("Failed to load supplier", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update entry")
		}
		if err := entry.AttachSupplier(supplier); err != nil {
			return nil, err
		}
	} else {
		entry.SupplierID = nil
	}

	if err := s.entryRepo.Update(ctx, entry); err != nil {
		s.logger.Error("Failed to update entry", zap.Int64("entry_id", id), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update entry")
	}
	return entry, nil
}

// DeleteEntry deletes an entry belonging to the club
func (s *EntryService) DeleteEntry(ctx context.Context, clubID, id int64) error {
	return s.entryRepo.DeleteForClub(ctx, clubID, id)
}

// GetEntry returns an entry belonging to the club
func (s *EntryService) GetEntry(ctx context.Context, clubID, id int64) (*accounting.Entry, error) {
	return s.entryRepo.FindByIDForClub(ctx, clubID, id)
}

// ListEntries lists the club's entries narrowed by the filter
func (s *EntryService) ListEntries(ctx context.Context, clubID int64, filter accounting.EntryFilter) (*shared.Paginated[accounting.Entry], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	entries, total, err := s.entryRepo.FindAllForClub(ctx, clubID, filter)
	if err != nil {
		s.logger.Error("Failed to list entries", zap.Int64("club_id", clubID), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list entries")
	}

	page := shared.NewPaginated(entries, total, filter.Page, filter.PageSize)
	return &page, nil
}
