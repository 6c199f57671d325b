package receiving

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/billing"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/currency"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/inventory"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/ledger"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/partner"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/receiving"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

// priceVarianceThreshold is the relative deviation from a product's last
// purchase price above which a receipt line gets a warning. Warnings never
// block the receipt.
var priceVarianceThreshold = decimal.NewFromFloat(0.10)

// GoodsReceiptService runs the full goods receipt flow: vendor and order
// validation, stock valuation at weighted average cost, landed cost
// allocation, ledger posting, bill creation and purchase order update. The
// whole flow executes in one transaction scope; any failure rolls back every
// side effect.
type GoodsReceiptService struct {
	txScope      TransactionScope
	resolver     *currency.Resolver
	posting      *ledger.PostingService
	baseCurrency valueobject.Currency
	logger       *zap.Logger
}

// NewGoodsReceiptService creates a new GoodsReceiptService
func NewGoodsReceiptService(txScope TransactionScope, resolver *currency.Resolver, baseCurrency valueobject.Currency, logger *zap.Logger) *GoodsReceiptService {
	return &GoodsReceiptService{
		txScope:      txScope,
		resolver:     resolver,
		posting:      ledger.NewPostingService(),
		baseCurrency: baseCurrency,
		logger:       logger,
	}
}

// ReceiveGoods processes one vendor delivery end to end and returns the
// posted receipt with any price variance warnings
func (s *GoodsReceiptService) ReceiveGoods(ctx context.Context, tenantID uuid.UUID, req ReceiveGoodsRequest) (*GoodsReceiptResponse, error) {
	docCurrency, err := valueobject.ParseCurrency(req.Currency)
	if err != nil {
		return nil, err
	}

	var receipt *receiving.GoodsReceipt
	var warnings []string

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		vendor, err := repos.VendorRepo().FindByID(ctx, tenantID, req.VendorID)
		if err != nil {
			return err
		}
		if !vendor.IsActive() {
			return shared.NewDomainError("VENDOR_INACTIVE", fmt.Sprintf("Vendor %s is not active", vendor.Code))
		}

		var order *partner.PurchaseOrder
		if req.PurchaseOrderID != nil {
			order, err = repos.PurchaseOrderRepo().FindByID(ctx, tenantID, *req.PurchaseOrderID)
			if err != nil {
				return err
			}
			if order.IsCancelled() {
				return shared.NewDomainError("ORDER_CANCELLED", "Cannot receive goods against a cancelled purchase order")
			}
			if !order.Status.CanReceive() {
				return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot receive goods for order in %s status", order.Status))
			}
		}

		receipt, err = s.buildReceipt(tenantID, req, docCurrency)
		if err != nil {
			return err
		}
		if order != nil {
			receipt.LinkPurchaseOrder(order.ID)
		}

		rate, err := s.resolveRate(ctx, tenantID, receipt, docCurrency)
		if err != nil {
			return err
		}

		products, err := s.loadProducts(ctx, repos, tenantID, receipt)
		if err != nil {
			return err
		}
		warnings = s.priceVarianceWarnings(receipt, products, rate)

		positions, err := s.receiveStock(ctx, repos, tenantID, receipt, rate)
		if err != nil {
			return err
		}

		lineLanded, err := s.allocateLandedCosts(ctx, repos, tenantID, receipt, positions, rate)
		if err != nil {
			return err
		}

		var ledgerTxID *uuid.UUID
		if req.Accounts != nil {
			tx, err := s.postToLedger(ctx, repos, tenantID, req, receipt, products, *req.Accounts, rate, lineLanded)
			if err != nil {
				return err
			}
			ledgerTxID = &tx.ID
		}

		if req.CreateBill {
			bill, err := s.createBill(ctx, repos, tenantID, req, receipt, vendor, ledgerTxID)
			if err != nil {
				return err
			}
			receipt.LinkBill(bill.ID)
		}

		if ledgerTxID != nil {
			if err := receipt.MarkPosted(*ledgerTxID); err != nil {
				return err
			}
		}
		if err := repos.ReceiptRepo().Create(ctx, receipt); err != nil {
			return err
		}

		if err := s.updateLastPurchasePrices(ctx, repos, receipt, products, rate); err != nil {
			return err
		}

		if order != nil {
			if err := s.applyToOrder(ctx, repos, order, receipt); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("goods receipt recorded",
		zap.String("tenant_id", tenantID.String()),
		zap.String("receipt_number", receipt.ReceiptNumber),
		zap.String("status", receipt.Status.String()),
		zap.String("currency", receipt.Currency.String()),
		zap.String("total", receipt.Total.String()),
		zap.Int("warnings", len(warnings)))

	response := ToGoodsReceiptResponse(receipt, warnings)
	return &response, nil
}

// GetByID retrieves a goods receipt with its lines
func (s *GoodsReceiptService) GetByID(ctx context.Context, tenantID, receiptID uuid.UUID) (*GoodsReceiptResponse, error) {
	var response GoodsReceiptResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		receipt, err := repos.ReceiptRepo().FindByIDForTenant(ctx, tenantID, receiptID)
		if err != nil {
			return err
		}
		response = ToGoodsReceiptResponse(receipt, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// List retrieves goods receipts for a tenant
func (s *GoodsReceiptService) List(ctx context.Context, tenantID uuid.UUID, filter receiving.ReceiptFilter) ([]GoodsReceiptResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	var responses []GoodsReceiptResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		receipts, err := repos.ReceiptRepo().FindAllForTenant(ctx, tenantID, filter)
		if err != nil {
			return err
		}
		responses = make([]GoodsReceiptResponse, 0, len(receipts))
		for i := range receipts {
			responses = append(responses, ToGoodsReceiptResponse(&receipts[i], nil))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

func (s *GoodsReceiptService) buildReceipt(tenantID uuid.UUID, req ReceiveGoodsRequest, docCurrency valueobject.Currency) (*receiving.GoodsReceipt, error) {
	lines := make([]receiving.LineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, receiving.LineInput{
			ProductID:           l.ProductID,
			ProductName:         l.ProductName,
			Quantity:            l.Quantity,
			UnitPrice:           l.UnitPrice,
			TaxRate:             l.TaxRate,
			Weight:              l.Weight,
			Volume:              l.Volume,
			PurchaseOrderLineID: l.PurchaseOrderLineID,
		})
	}

	receipt, err := receiving.NewGoodsReceipt(tenantID, req.ReceiptNumber, req.VendorID, req.LocationID, req.ReceiptDate, docCurrency, lines)
	if err != nil {
		return nil, err
	}
	if req.Remark != "" {
		receipt.Remark = req.Remark
	}
	if req.CreatedBy != nil {
		receipt.SetCreatedBy(*req.CreatedBy)
	}
	if req.ExchangeRate != nil {
		if err := receipt.SetExchangeRate(*req.ExchangeRate); err != nil {
			return nil, err
		}
	}

	if req.LandedCosts != nil {
		method := receiving.AllocationMethod(req.LandedCosts.AllocationMethod)
		components := receiving.CostComponents{
			Freight:     req.LandedCosts.Freight,
			Insurance:   req.LandedCosts.Insurance,
			CustomsDuty: req.LandedCosts.CustomsDuty,
			Other:       req.LandedCosts.Other,
		}
		if err := receipt.SetLandedCosts(components, method); err != nil {
			return nil, err
		}
	}

	return receipt, nil
}

// resolveRate determines the document-to-base conversion rate. A rate
// embedded on the receipt takes precedence over any resolver lookup; when the
// resolver is consulted, the resolved rate is embedded so the document stays
// self-contained.
func (s *GoodsReceiptService) resolveRate(ctx context.Context, tenantID uuid.UUID, receipt *receiving.GoodsReceipt, docCurrency valueobject.Currency) (decimal.Decimal, error) {
	if docCurrency == s.baseCurrency {
		return decimal.NewFromInt(1), nil
	}

	if rate, ok := s.requestedRate(receipt); ok {
		return rate, nil
	}

	lookup, err := s.resolver.Lookup(ctx, tenantID, docCurrency, s.baseCurrency, receipt.ReceiptDate)
	if err != nil {
		return decimal.Zero, err
	}
	if lookup.Outcome == currency.LookupFoundInverse {
		s.logger.Debug("receipt rate derived from inverse pair",
			zap.String("pair", docCurrency.String()+"/"+s.baseCurrency.String()))
	}
	if err := receipt.SetExchangeRate(lookup.Rate); err != nil {
		return decimal.Zero, err
	}
	return lookup.Rate, nil
}

func (s *GoodsReceiptService) requestedRate(receipt *receiving.GoodsReceipt) (decimal.Decimal, bool) {
	if receipt.ExchangeRate != nil {
		return *receipt.ExchangeRate, true
	}
	return decimal.Zero, false
}

func (s *GoodsReceiptService) loadProducts(ctx context.Context, repos TransactionalRepositories, tenantID uuid.UUID, receipt *receiving.GoodsReceipt) (map[uuid.UUID]*partner.Product, error) {
	ids := make([]uuid.UUID, 0, len(receipt.Lines))
	seen := make(map[uuid.UUID]struct{}, len(receipt.Lines))
	for _, l := range receipt.Lines {
		if _, ok := seen[l.ProductID]; !ok {
			seen[l.ProductID] = struct{}{}
			ids = append(ids, l.ProductID)
		}
	}

	found, err := repos.ProductRepo().FindByIDs(ctx, tenantID, ids)
	if err != nil {
		return nil, err
	}
	products := make(map[uuid.UUID]*partner.Product, len(found))
	for _, p := range found {
		products[p.ID] = p
	}

	for _, id := range ids {
		if _, ok := products[id]; !ok {
			return nil, shared.NewDomainError("UNKNOWN_PRODUCT", fmt.Sprintf("Product %s does not exist", id))
		}
	}
	return products, nil
}

func (s *GoodsReceiptService) priceVarianceWarnings(receipt *receiving.GoodsReceipt, products map[uuid.UUID]*partner.Product, rate decimal.Decimal) []string {
	warnings := make([]string, 0)
	for _, l := range receipt.Lines {
		product := products[l.ProductID]
		unitCostBase := l.UnitPrice.Mul(rate).Round(valueobject.CostPlaces)
		if product.PriceVarianceExceeds(unitCostBase, priceVarianceThreshold) {
			warnings = append(warnings, fmt.Sprintf(
				"price variance for %s: unit cost %s deviates more than %s%% from last purchase price %s",
				l.ProductName, unitCostBase,
				priceVarianceThreshold.Mul(decimal.NewFromInt(100)),
				product.LastPurchasePrice))
		}
	}
	return warnings
}

// receiveStock applies each line to its product-location position at weighted
// average cost and records the receipt movements. Returns the touched
// positions keyed by product so the landed cost pass can correct them.
func (s *GoodsReceiptService) receiveStock(ctx context.Context, repos TransactionalRepositories, tenantID uuid.UUID, receipt *receiving.GoodsReceipt, rate decimal.Decimal) (map[uuid.UUID]*inventory.InventoryPosition, error) {
	positions := make(map[uuid.UUID]*inventory.InventoryPosition)

	for _, l := range receipt.Lines {
		position, ok := positions[l.ProductID]
		if !ok {
			var err error
			position, err = repos.PositionRepo().GetOrCreate(ctx, tenantID, l.ProductID, receipt.LocationID)
			if err != nil {
				return nil, err
			}
			positions[l.ProductID] = position
		}

		before := position.QuantityOnHand
		unitCostBase := l.OriginalUnitCost.Mul(rate).Round(valueobject.CostPlaces)
		if err := position.Receive(l.Quantity, unitCostBase); err != nil {
			return nil, err
		}
		if err := repos.PositionRepo().SaveWithLock(ctx, position); err != nil {
			return nil, err
		}

		movement, err := inventory.NewStockMovement(tenantID, position, inventory.MovementTypeReceipt,
			l.Quantity, unitCostBase, before, "GOODS_RECEIPT", receipt.ID)
		if err != nil {
			return nil, err
		}
		if err := repos.MovementRepo().Create(ctx, movement); err != nil {
			return nil, err
		}
	}

	return positions, nil
}

// allocateLandedCosts distributes the receipt's indirect costs across its
// lines, corrects the already-averaged positions by the base-currency cost
// delta, and returns the per-line base-currency landed cost aligned with
// receipt.Lines for the posting. Nil when the receipt has no landed costs.
func (s *GoodsReceiptService) allocateLandedCosts(ctx context.Context, repos TransactionalRepositories, tenantID uuid.UUID, receipt *receiving.GoodsReceipt, positions map[uuid.UUID]*inventory.InventoryPosition, rate decimal.Decimal) ([]decimal.Decimal, error) {
	if !receipt.HasLandedCosts() {
		return nil, nil
	}
	if receipt.AllocationMethod == nil {
		return nil, shared.NewDomainError("INVALID_METHOD", "Landed costs require an allocation method")
	}

	results, err := receiving.AllocateLandedCosts(receipt.LandedCosts, receipt.AllocationLines(), *receipt.AllocationMethod)
	if err != nil {
		return nil, err
	}

	perLine := make([]decimal.Decimal, len(receipt.Lines))
	for i, result := range results {
		receipt.Lines[i].SetLandedUnitCost(result.NewUnitCost)
		if result.AllocatedCost.IsZero() {
			continue
		}

		position := positions[result.ProductID]
		costDeltaBase := result.AllocatedCost.Mul(rate).Round(valueobject.MoneyPlaces)
		if err := position.AdjustReceiptCost(costDeltaBase); err != nil {
			return nil, err
		}
		if err := repos.PositionRepo().SaveWithLock(ctx, position); err != nil {
			return nil, err
		}

		perUnitBase := costDeltaBase.Div(receipt.Lines[i].Quantity).Round(valueobject.CostPlaces)
		movement, err := inventory.NewStockMovement(tenantID, position, inventory.MovementTypeCostAdjustment,
			decimal.Zero, perUnitBase, position.QuantityOnHand, "GOODS_RECEIPT", receipt.ID)
		if err != nil {
			return nil, err
		}
		movement.WithRemark("landed cost allocation")
		if err := repos.MovementRepo().Create(ctx, movement); err != nil {
			return nil, err
		}

		perLine[i] = costDeltaBase
	}

	return perLine, nil
}

// postToLedger posts the receipt in the base currency. Inventory debits
// group by each product's inventory account, falling back to the
// request-level account for products without one; tax is debited and the
// vendor payable plus any landed cost accrual are credited. Per-line sums
// carry the rounding so debits and credits balance exactly.
func (s *GoodsReceiptService) postToLedger(ctx context.Context, repos TransactionalRepositories, tenantID uuid.UUID, req ReceiveGoodsRequest, receipt *receiving.GoodsReceipt, products map[uuid.UUID]*partner.Product, accounts PostingAccounts, rate decimal.Decimal, lineLanded []decimal.Decimal) (*ledger.LedgerTransaction, error) {
	taxBase := receipt.TaxTotal.Mul(rate).Round(valueobject.MoneyPlaces)

	subtotalBase := decimal.Zero
	landedBase := decimal.Zero
	inventoryDebits := make(map[uuid.UUID]decimal.Decimal, len(receipt.Lines))
	debitOrder := make([]uuid.UUID, 0, len(receipt.Lines))
	for i := range receipt.Lines {
		l := &receipt.Lines[i]
		lineBase := l.LineSubtotal.Mul(rate).Round(valueobject.MoneyPlaces)
		subtotalBase = subtotalBase.Add(lineBase)

		debit := lineBase
		if lineLanded != nil {
			debit = debit.Add(lineLanded[i])
			landedBase = landedBase.Add(lineLanded[i])
		}

		accountID := accounts.InventoryAccountID
		if p := products[l.ProductID]; p != nil && p.InventoryAccountID != nil {
			accountID = *p.InventoryAccountID
		}
		if _, ok := inventoryDebits[accountID]; !ok {
			debitOrder = append(debitOrder, accountID)
		}
		inventoryDebits[accountID] = inventoryDebits[accountID].Add(debit)
	}

	entries := make([]ledger.EntryInput, 0, len(debitOrder)+3)
	for _, accountID := range debitOrder {
		amount := inventoryDebits[accountID]
		if !amount.IsPositive() {
			continue
		}
		entries = append(entries, ledger.EntryInput{
			AccountID:   accountID,
			Direction:   ledger.DirectionDebit,
			Amount:      amount,
			Description: "Goods received " + receipt.ReceiptNumber,
		})
	}
	if taxBase.IsPositive() {
		if accounts.TaxAccountID == nil {
			return nil, shared.NewDomainError("MISSING_ACCOUNT", "A tax account is required for a taxed receipt")
		}
		entries = append(entries, ledger.EntryInput{
			AccountID:   *accounts.TaxAccountID,
			Direction:   ledger.DirectionDebit,
			Amount:      taxBase,
			Description: "Input tax " + receipt.ReceiptNumber,
		})
	}
	entries = append(entries, ledger.EntryInput{
		AccountID:   accounts.PayableAccountID,
		Direction:   ledger.DirectionCredit,
		Amount:      subtotalBase.Add(taxBase),
		Description: "Vendor payable " + receipt.ReceiptNumber,
	})
	if landedBase.IsPositive() {
		if accounts.LandedCostAccountID == nil {
			return nil, shared.NewDomainError("MISSING_ACCOUNT", "A landed cost account is required when landed costs are allocated")
		}
		entries = append(entries, ledger.EntryInput{
			AccountID:   *accounts.LandedCostAccountID,
			Direction:   ledger.DirectionCredit,
			Amount:      landedBase,
			Description: "Landed cost accrual " + receipt.ReceiptNumber,
		})
	}

	txNumber := req.TransactionNumber
	if txNumber == "" {
		txNumber = "JE-" + receipt.ReceiptNumber
	}
	header := ledger.TransactionHeader{
		TransactionNumber: txNumber,
		TransactionDate:   receipt.ReceiptDate,
		Type:              ledger.TransactionTypeBill,
		Currency:          s.baseCurrency,
		Description:       "Goods receipt " + receipt.ReceiptNumber,
		ReferenceType:     "GOODS_RECEIPT",
		ReferenceID:       &receipt.ID,
		CreatedBy:         req.CreatedBy,
	}

	ledgerAccounts, err := s.loadAccounts(ctx, repos, tenantID, entries)
	if err != nil {
		return nil, err
	}

	tx, err := s.posting.Post(tenantID, header, entries, ledgerAccounts)
	if err != nil {
		return nil, err
	}
	if err := repos.LedgerTransactionRepo().Create(ctx, tx); err != nil {
		return nil, err
	}
	for _, account := range ledgerAccounts {
		if err := repos.AccountRepo().SaveWithLock(ctx, account); err != nil {
			return nil, err
		}
	}
	return tx, nil
}

func (s *GoodsReceiptService) loadAccounts(ctx context.Context, repos TransactionalRepositories, tenantID uuid.UUID, entries []ledger.EntryInput) (map[uuid.UUID]*ledger.Account, error) {
	ids := make([]uuid.UUID, 0, len(entries))
	seen := make(map[uuid.UUID]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.AccountID]; !ok {
			seen[e.AccountID] = struct{}{}
			ids = append(ids, e.AccountID)
		}
	}

	found, err := repos.AccountRepo().FindByIDs(ctx, tenantID, ids)
	if err != nil {
		return nil, err
	}
	accounts := make(map[uuid.UUID]*ledger.Account, len(found))
	for i := range found {
		accounts[found[i].ID] = &found[i]
	}
	return accounts, nil
}

// createBill raises the vendor bill in the document currency, due per the
// vendor's payment terms, linked both ways to the receipt. The ledger
// transaction link is recorded only when the receipt was posted.
func (s *GoodsReceiptService) createBill(ctx context.Context, repos TransactionalRepositories, tenantID uuid.UUID, req ReceiveGoodsRequest, receipt *receiving.GoodsReceipt, vendor *partner.Vendor, ledgerTxID *uuid.UUID) (*billing.Bill, error) {
	billNumber := req.BillNumber
	if billNumber == "" {
		billNumber = "BILL-" + receipt.ReceiptNumber
	}

	lines := make([]billing.BillLineInput, 0, len(receipt.Lines))
	for i := range receipt.Lines {
		l := &receipt.Lines[i]
		lines = append(lines, billing.BillLineInput{
			ProductID:   &l.ProductID,
			Description: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			TaxRate:     l.TaxRate,
		})
	}

	bill, err := billing.NewBill(tenantID, billNumber, vendor.ID, receipt.Currency,
		receipt.ReceiptDate, vendor.DueDateFrom(receipt.ReceiptDate), lines)
	if err != nil {
		return nil, err
	}
	bill.LinkGoodsReceipt(receipt.ID)
	if ledgerTxID != nil {
		bill.LinkLedgerTransaction(*ledgerTxID)
	}
	if req.CreatedBy != nil {
		bill.SetCreatedBy(*req.CreatedBy)
	}

	if err := repos.BillRepo().Save(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

func (s *GoodsReceiptService) updateLastPurchasePrices(ctx context.Context, repos TransactionalRepositories, receipt *receiving.GoodsReceipt, products map[uuid.UUID]*partner.Product, rate decimal.Decimal) error {
	for _, l := range receipt.Lines {
		product := products[l.ProductID]
		unitCostBase := l.UnitPrice.Mul(rate).Round(valueobject.CostPlaces)
		product.RecordPurchasePrice(unitCostBase)
		if err := repos.ProductRepo().Save(ctx, product); err != nil {
			return err
		}
	}
	return nil
}

func (s *GoodsReceiptService) applyToOrder(ctx context.Context, repos TransactionalRepositories, order *partner.PurchaseOrder, receipt *receiving.GoodsReceipt) error {
	quantities := make(map[uuid.UUID]decimal.Decimal, len(receipt.Lines))
	for _, l := range receipt.Lines {
		lineID := l.PurchaseOrderLineID
		if lineID == nil {
			orderLine := order.GetLineByProduct(l.ProductID)
			if orderLine == nil {
				return shared.NewDomainError("LINE_NOT_FOUND", fmt.Sprintf("Product %s is not on purchase order %s", l.ProductID, order.OrderNumber))
			}
			lineID = &orderLine.ID
		}
		quantities[*lineID] = quantities[*lineID].Add(l.Quantity)
	}

	expectedVersion := order.GetVersion()
	if err := order.ApplyReceipt(quantities); err != nil {
		return err
	}
	return repos.PurchaseOrderRepo().SaveWithLock(ctx, order, expectedVersion)
}
