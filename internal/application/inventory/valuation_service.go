package inventory

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/inventory"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
)

// ValuationService applies stock receipts and issues to positions at weighted
// average cost. The position update and its movement record are always written
// in the same transaction scope.
type ValuationService struct {
	txScope TransactionScope
	logger  *zap.Logger
}

// NewValuationService creates a new ValuationService
func NewValuationService(txScope TransactionScope, logger *zap.Logger) *ValuationService {
	return &ValuationService{
		txScope: txScope,
		logger:  logger,
	}
}

// Receive adds stock to the product-location position, recomputing the
// weighted average cost, and records the movement
func (s *ValuationService) Receive(ctx context.Context, tenantID uuid.UUID, req ReceiveStockRequest) (*PositionResponse, error) {
	var response PositionResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		position, err := repos.PositionRepo().GetOrCreate(ctx, tenantID, req.ProductID, req.LocationID)
		if err != nil {
			return err
		}

		before := position.QuantityOnHand
		if err := position.Receive(req.Quantity, req.UnitCost); err != nil {
			return err
		}
		if err := repos.PositionRepo().SaveWithLock(ctx, position); err != nil {
			return err
		}

		movement, err := inventory.NewStockMovement(tenantID, position, inventory.MovementTypeReceipt,
			req.Quantity, req.UnitCost, before, req.SourceType, req.SourceID)
		if err != nil {
			return err
		}
		if req.Remark != "" {
			movement.WithRemark(req.Remark)
		}
		if err := repos.MovementRepo().Create(ctx, movement); err != nil {
			return err
		}

		response = ToPositionResponse(position)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("stock received",
		zap.String("tenant_id", tenantID.String()),
		zap.String("product_id", req.ProductID.String()),
		zap.String("quantity", req.Quantity.String()),
		zap.String("avg_cost", response.AverageUnitCost.String()))

	return &response, nil
}

// Issue removes stock from the position at the current average unit cost and
// records the movement
func (s *ValuationService) Issue(ctx context.Context, tenantID uuid.UUID, req IssueStockRequest) (*PositionResponse, error) {
	var response PositionResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		position, err := repos.PositionRepo().FindByProductAndLocation(ctx, tenantID, req.ProductID, req.LocationID)
		if err != nil {
			return err
		}

		before := position.QuantityOnHand
		issueCost := position.AverageUnitCost
		if err := position.Issue(req.Quantity); err != nil {
			return err
		}
		if err := repos.PositionRepo().SaveWithLock(ctx, position); err != nil {
			return err
		}

		movement, err := inventory.NewStockMovement(tenantID, position, inventory.MovementTypeIssue,
			req.Quantity.Neg(), issueCost, before, req.SourceType, req.SourceID)
		if err != nil {
			return err
		}
		if req.Remark != "" {
			movement.WithRemark(req.Remark)
		}
		if err := repos.MovementRepo().Create(ctx, movement); err != nil {
			return err
		}

		response = ToPositionResponse(position)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("stock issued",
		zap.String("tenant_id", tenantID.String()),
		zap.String("product_id", req.ProductID.String()),
		zap.String("quantity", req.Quantity.String()))

	return &response, nil
}

// GetPosition retrieves the valuation state of one product-location position
func (s *ValuationService) GetPosition(ctx context.Context, tenantID, productID, locationID uuid.UUID) (*PositionResponse, error) {
	var response PositionResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		position, err := repos.PositionRepo().FindByProductAndLocation(ctx, tenantID, productID, locationID)
		if err != nil {
			return err
		}
		response = ToPositionResponse(position)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// ListMovements lists the movement history for a position, newest first
func (s *ValuationService) ListMovements(ctx context.Context, tenantID, positionID uuid.UUID, filter shared.Filter) ([]MovementResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	var responses []MovementResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		movements, err := repos.MovementRepo().FindByPosition(ctx, tenantID, positionID, filter)
		if err != nil {
			return err
		}
		responses = make([]MovementResponse, 0, len(movements))
		for i := range movements {
			responses = append(responses, ToMovementResponse(&movements[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}
