package accounting

import (
	"context"

	"github.com/clubpanel/backend/internal/domain/accounting"
	"github.com/clubpanel/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// SupplierService manages a club's supplier records
type SupplierService struct {
	supplierRepo accounting.SupplierRepository
	logger       *zap.Logger
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo accounting.SupplierRepository, logger *zap.Logger) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo, logger: logger}
}

// CreateSupplier creates a supplier in the club
func (s *SupplierService) CreateSupplier(ctx context.Context, clubID int64, input SupplierInput) (*accounting.Supplier, error) {
	supplier, err := accounting.NewSupplier(clubID, input.Name)
	if err != nil {
		return nil, err
	}
	if err := supplier.Update(input.Name, input.TaxID, input.Address, input.Phone, input.Email, input.ContactName); err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		s.logger.Error("Failed to create supplier", zap.Int64("club_id", clubID), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create supplier")
	}

	s.logger.Info("Supplier created",
		zap.Int64("club_id", clubID),
		zap.Int64("supplier_id", supplier.ID),
	)
	return supplier, nil
}

// UpdateSupplier updates a supplier belonging to the club
func (s *SupplierService) UpdateSupplier(ctx context.Context, clubID, id int64, input SupplierInput) (*accounting.Supplier, error) {
	supplier, err := s.supplierRepo.FindByIDForClub(ctx, clubID, id)
	if err != nil {
		return nil, err
	}

	if err := supplier.Update(input.Name, input.TaxID, input.Address, input.Phone, input.Email, input.ContactName); err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		s.logger.Error("Failed to update supplier", zap.Int64("supplier_id", id), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update supplier")
	}
	return supplier, nil
}

// DeleteSupplier deletes a supplier belonging to the club
func (s *SupplierService) DeleteSupplier(ctx context.Context, clubID, id int64) error {
	return s.supplierRepo.DeleteForClub(ctx, clubID, id)
}

// GetSupplier returns a supplier belonging to the club
func (s *SupplierService) GetSupplier(ctx context.Context, clubID, id int64) (*accounting.Supplier, error) {
	return s.supplierRepo.FindByIDForClub(ctx, clubID, id)
}

// normalizeFilter fills in pagination defaults
func normalizeFilter(filter shared.Filter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	return filter
}

// ListSuppliers lists the club's suppliers
func (s *SupplierService) ListSuppliers(ctx context.Context, clubID int64, filter shared.Filter) (*shared.Paginated[accounting.Supplier], error) {
	filter = normalizeFilter(filter)
	suppliers, total, err := s.supplierRepo.FindAllForClub(ctx, clubID, filter)
	if err != nil {
		s.logger.Error("Failed to list suppliers", zap.Int64("club_id", clubID), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list suppliers")
	}

	page := shared.NewPaginated(suppliers, total, filter.Page, filter.PageSize)
	return &page, nil
}
