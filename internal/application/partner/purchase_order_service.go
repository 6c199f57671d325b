package partner

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/partner"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

// PurchaseOrderService handles purchase order operations
type PurchaseOrderService struct {
	orderRepo   partner.PurchaseOrderRepository
	vendorRepo  partner.VendorRepository
	productRepo partner.ProductRepository
	logger      *zap.Logger
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(orderRepo partner.PurchaseOrderRepository, vendorRepo partner.VendorRepository, productRepo partner.ProductRepository, logger *zap.Logger) *PurchaseOrderService {
	return &PurchaseOrderService{
		orderRepo:   orderRepo,
		vendorRepo:  vendorRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create creates a purchase order, optionally confirming it immediately
func (s *PurchaseOrderService) Create(ctx context.Context, tenantID uuid.UUID, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	existing, err := s.orderRepo.FindByNumber(ctx, tenantID, req.OrderNumber)
	if err != nil && !shared.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Order number already used")
	}

	vendor, err := s.vendorRepo.FindByID(ctx, tenantID, req.VendorID)
	if err != nil {
		return nil, err
	}
	if !vendor.IsActive() {
		return nil, shared.NewDomainError("VENDOR_INACTIVE", "Vendor is not active")
	}

	currency, err := valueobject.ParseCurrency(req.Currency)
	if err != nil {
		return nil, err
	}

	if err := s.checkProducts(ctx, tenantID, req.Lines); err != nil {
		return nil, err
	}

	order, err := partner.NewPurchaseOrder(tenantID, req.OrderNumber, req.VendorID, currency, req.OrderDate)
	if err != nil {
		return nil, err
	}
	for _, line := range req.Lines {
		if _, err := order.AddLine(line.ProductID, line.Description, line.Quantity, line.UnitPrice); err != nil {
			return nil, err
		}
	}
	if req.Confirm {
		if err := order.Confirm(); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("purchase order created",
		zap.String("tenant_id", tenantID.String()),
		zap.String("order_number", order.OrderNumber),
		zap.String("status", order.Status.String()))

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Confirm moves a draft order into the confirmed state
func (s *PurchaseOrderService) Confirm(ctx context.Context, tenantID, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}

	expectedVersion := order.GetVersion()
	if err := order.Confirm(); err != nil {
		return nil, err
	}
	if err := s.orderRepo.SaveWithLock(ctx, order, expectedVersion); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Cancel cancels an order that has not been received against
func (s *PurchaseOrderService) Cancel(ctx context.Context, tenantID, orderID uuid.UUID, reason string) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}

	expectedVersion := order.GetVersion()
	if err := order.Cancel(reason); err != nil {
		return nil, err
	}
	if err := s.orderRepo.SaveWithLock(ctx, order, expectedVersion); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// GetByID retrieves an order with its lines
func (s *PurchaseOrderService) GetByID(ctx context.Context, tenantID, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// List lists orders for a tenant
func (s *PurchaseOrderService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]PurchaseOrderResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	orders, total, err := s.orderRepo.FindAll(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PurchaseOrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, ToPurchaseOrderResponse(o))
	}
	return responses, total, nil
}

func (s *PurchaseOrderService) checkProducts(ctx context.Context, tenantID uuid.UUID, lines []OrderLineInput) error {
	ids := make([]uuid.UUID, 0, len(lines))
	seen := make(map[uuid.UUID]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ProductID]; !ok {
			seen[line.ProductID] = struct{}{}
			ids = append(ids, line.ProductID)
		}
	}

	found, err := s.productRepo.FindByIDs(ctx, tenantID, ids)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		return shared.NewDomainError("UNKNOWN_PRODUCT", "One or more products do not exist")
	}
	return nil
}
