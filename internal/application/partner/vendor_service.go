package partner

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/partner"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

// VendorService handles vendor master data operations
type VendorService struct {
	vendorRepo partner.VendorRepository
	logger     *zap.Logger
}

// NewVendorService creates a new VendorService
func NewVendorService(vendorRepo partner.VendorRepository, logger *zap.Logger) *VendorService {
	return &VendorService{
		vendorRepo: vendorRepo,
		logger:     logger,
	}
}

// Create creates a new vendor
func (s *VendorService) Create(ctx context.Context, tenantID uuid.UUID, req CreateVendorRequest) (*VendorResponse, error) {
	existing, err := s.vendorRepo.FindByCode(ctx, tenantID, req.Code)
	if err != nil && !shared.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Vendor with this code already exists")
	}

	currency, err := valueobject.ParseCurrency(req.Currency)
	if err != nil {
		return nil, err
	}

	vendor, err := partner.NewVendor(tenantID, req.Code, req.Name, currency, req.PaymentTermDays)
	if err != nil {
		return nil, err
	}
	if req.ContactName != "" || req.Email != "" || req.Phone != "" || req.TaxID != "" {
		vendor.SetContact(req.ContactName, req.Email, req.Phone, req.TaxID)
	}

	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}

	s.logger.Info("vendor created",
		zap.String("tenant_id", tenantID.String()),
		zap.String("code", vendor.Code))

	response := ToVendorResponse(vendor)
	return &response, nil
}

// Update changes vendor master data
func (s *VendorService) Update(ctx context.Context, tenantID, vendorID uuid.UUID, req UpdateVendorRequest) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, tenantID, vendorID)
	if err != nil {
		return nil, err
	}

	if err := vendor.Update(req.Name, req.PaymentTermDays); err != nil {
		return nil, err
	}
	vendor.SetContact(req.ContactName, req.Email, req.Phone, req.TaxID)

	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}

	response := ToVendorResponse(vendor)
	return &response, nil
}

// Deactivate blocks the vendor from new documents
func (s *VendorService) Deactivate(ctx context.Context, tenantID, vendorID uuid.UUID) error {
	vendor, err := s.vendorRepo.FindByID(ctx, tenantID, vendorID)
	if err != nil {
		return err
	}
	if err := vendor.Deactivate(); err != nil {
		return err
	}
	return s.vendorRepo.Save(ctx, vendor)
}

// Activate re-enables an inactive vendor
func (s *VendorService) Activate(ctx context.Context, tenantID, vendorID uuid.UUID) error {
	vendor, err := s.vendorRepo.FindByID(ctx, tenantID, vendorID)
	if err != nil {
		return err
	}
	if err := vendor.Activate(); err != nil {
		return err
	}
	return s.vendorRepo.Save(ctx, vendor)
}

// GetByID retrieves a vendor by ID
func (s *VendorService) GetByID(ctx context.Context, tenantID, vendorID uuid.UUID) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, tenantID, vendorID)
	if err != nil {
		return nil, err
	}
	response := ToVendorResponse(vendor)
	return &response, nil
}

// List lists vendors for a tenant
func (s *VendorService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]VendorResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	vendors, total, err := s.vendorRepo.FindAll(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		responses = append(responses, ToVendorResponse(v))
	}
	return responses, total, nil
}
