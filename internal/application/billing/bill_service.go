package billing

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/billing"
)

// BillService exposes queries and payment application for vendor bills.
// Bills are created by the goods receipt flow, never directly.
type BillService struct {
	billRepo billing.BillRepository
	logger   *zap.Logger
}

// NewBillService creates a new BillService
func NewBillService(billRepo billing.BillRepository, logger *zap.Logger) *BillService {
	return &BillService{
		billRepo: billRepo,
		logger:   logger,
	}
}

// GetByID retrieves a bill with its lines
func (s *BillService) GetByID(ctx context.Context, tenantID, billID uuid.UUID) (*BillResponse, error) {
	bill, err := s.billRepo.FindByID(ctx, tenantID, billID)
	if err != nil {
		return nil, err
	}
	response := ToBillResponse(bill)
	return &response, nil
}

// GetByGoodsReceipt retrieves the bill created from a goods receipt
func (s *BillService) GetByGoodsReceipt(ctx context.Context, tenantID, receiptID uuid.UUID) (*BillResponse, error) {
	bill, err := s.billRepo.FindByGoodsReceipt(ctx, tenantID, receiptID)
	if err != nil {
		return nil, err
	}
	response := ToBillResponse(bill)
	return &response, nil
}

// List lists bills for a tenant
func (s *BillService) List(ctx context.Context, tenantID uuid.UUID, filter billing.BillFilter) ([]BillResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	bills, total, err := s.billRepo.FindAll(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]BillResponse, 0, len(bills))
	for _, b := range bills {
		responses = append(responses, ToBillResponse(b))
	}
	return responses, total, nil
}

// ApplyPayment records a payment against an open bill
func (s *BillService) ApplyPayment(ctx context.Context, tenantID, billID uuid.UUID, req ApplyPaymentRequest) (*BillResponse, error) {
	bill, err := s.billRepo.FindByID(ctx, tenantID, billID)
	if err != nil {
		return nil, err
	}

	expectedVersion := bill.GetVersion()
	if err := bill.ApplyPayment(req.Amount); err != nil {
		return nil, err
	}
	if err := s.billRepo.SaveWithLock(ctx, bill, expectedVersion); err != nil {
		return nil, err
	}

	s.logger.Info("payment applied",
		zap.String("tenant_id", tenantID.String()),
		zap.String("bill_number", bill.BillNumber),
		zap.String("amount", req.Amount.String()),
		zap.String("status", bill.Status.String()))

	response := ToBillResponse(bill)
	return &response, nil
}

// Cancel cancels an unpaid bill
func (s *BillService) Cancel(ctx context.Context, tenantID, billID uuid.UUID, req CancelBillRequest) (*BillResponse, error) {
	bill, err := s.billRepo.FindByID(ctx, tenantID, billID)
	if err != nil {
		return nil, err
	}

	expectedVersion := bill.GetVersion()
	if err := bill.Cancel(req.Reason); err != nil {
		return nil, err
	}
	if err := s.billRepo.SaveWithLock(ctx, bill, expectedVersion); err != nil {
		return nil, err
	}

	response := ToBillResponse(bill)
	return &response, nil
}
