package receiving

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/billing"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/currency"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/inventory"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/ledger"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/partner"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/receiving"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

// In-memory repositories backing the orchestrator tests.

type fakeReceiptRepo struct {
	receipts map[uuid.UUID]*receiving.GoodsReceipt
}

func (r *fakeReceiptRepo) Create(_ context.Context, receipt *receiving.GoodsReceipt) error {
	r.receipts[receipt.ID] = receipt
	return nil
}

func (r *fakeReceiptRepo) FindByID(_ context.Context, id uuid.UUID) (*receiving.GoodsReceipt, error) {
	if rec, ok := r.receipts[id]; ok {
		return rec, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeReceiptRepo) FindByIDForTenant(_ context.Context, tenantID, id uuid.UUID) (*receiving.GoodsReceipt, error) {
	if rec, ok := r.receipts[id]; ok && rec.TenantID == tenantID {
		return rec, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeReceiptRepo) FindByNumber(_ context.Context, tenantID uuid.UUID, number string) (*receiving.GoodsReceipt, error) {
	for _, rec := range r.receipts {
		if rec.TenantID == tenantID && rec.ReceiptNumber == number {
			return rec, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeReceiptRepo) FindAllForTenant(_ context.Context, tenantID uuid.UUID, _ receiving.ReceiptFilter) ([]receiving.GoodsReceipt, error) {
	out := make([]receiving.GoodsReceipt, 0)
	for _, rec := range r.receipts {
		if rec.TenantID == tenantID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *fakeReceiptRepo) Save(_ context.Context, receipt *receiving.GoodsReceipt) error {
	r.receipts[receipt.ID] = receipt
	return nil
}

type fakePositionRepo struct {
	positions map[uuid.UUID]*inventory.InventoryPosition
}

func (r *fakePositionRepo) FindByID(_ context.Context, id uuid.UUID) (*inventory.InventoryPosition, error) {
	if p, ok := r.positions[id]; ok {
		return p, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakePositionRepo) FindByProductAndLocation(_ context.Context, tenantID, productID, locationID uuid.UUID) (*inventory.InventoryPosition, error) {
	for _, p := range r.positions {
		if p.TenantID == tenantID && p.ProductID == productID && p.LocationID == locationID {
			return p, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakePositionRepo) GetOrCreate(ctx context.Context, tenantID, productID, locationID uuid.UUID) (*inventory.InventoryPosition, error) {
	if p, err := r.FindByProductAndLocation(ctx, tenantID, productID, locationID); err == nil {
		return p, nil
	}
	p, err := inventory.NewInventoryPosition(tenantID, productID, locationID)
	if err != nil {
		return nil, err
	}
	r.positions[p.ID] = p
	return p, nil
}

func (r *fakePositionRepo) FindByProduct(_ context.Context, tenantID, productID uuid.UUID, _ shared.Filter) ([]inventory.InventoryPosition, error) {
	out := make([]inventory.InventoryPosition, 0)
	for _, p := range r.positions {
		if p.TenantID == tenantID && p.ProductID == productID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePositionRepo) FindAllForTenant(_ context.Context, tenantID uuid.UUID, _ shared.Filter) ([]inventory.InventoryPosition, error) {
	out := make([]inventory.InventoryPosition, 0)
	for _, p := range r.positions {
		if p.TenantID == tenantID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePositionRepo) SaveWithLock(_ context.Context, position *inventory.InventoryPosition) error {
	r.positions[position.ID] = position
	return nil
}

type fakeMovementRepo struct {
	movements []*inventory.StockMovement
}

func (r *fakeMovementRepo) Create(_ context.Context, movement *inventory.StockMovement) error {
	r.movements = append(r.movements, movement)
	return nil
}

func (r *fakeMovementRepo) FindByPosition(_ context.Context, tenantID, positionID uuid.UUID, _ shared.Filter) ([]inventory.StockMovement, error) {
	out := make([]inventory.StockMovement, 0)
	for _, m := range r.movements {
		if m.TenantID == tenantID && m.PositionID == positionID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) FindBySource(_ context.Context, tenantID uuid.UUID, sourceType string, sourceID uuid.UUID) ([]inventory.StockMovement, error) {
	out := make([]inventory.StockMovement, 0)
	for _, m := range r.movements {
		if m.TenantID == tenantID && m.SourceType == sourceType && m.SourceID == sourceID {
			out = append(out, *m)
		}
	}
	return out, nil
}

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*ledger.Account
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*ledger.Account, error) {
	if a, ok := r.accounts[id]; ok {
		return a, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeAccountRepo) FindByIDForTenant(_ context.Context, tenantID, id uuid.UUID) (*ledger.Account, error) {
	if a, ok := r.accounts[id]; ok && a.TenantID == tenantID {
		return a, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeAccountRepo) FindByCode(_ context.Context, tenantID uuid.UUID, code string) (*ledger.Account, error) {
	for _, a := range r.accounts {
		if a.TenantID == tenantID && a.Code == code {
			return a, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeAccountRepo) FindByIDs(_ context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]ledger.Account, error) {
	out := make([]ledger.Account, 0, len(ids))
	for _, id := range ids {
		if a, ok := r.accounts[id]; ok && a.TenantID == tenantID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAccountRepo) FindByType(_ context.Context, tenantID uuid.UUID, accountType ledger.AccountType, _ shared.Filter) ([]ledger.Account, error) {
	out := make([]ledger.Account, 0)
	for _, a := range r.accounts {
		if a.TenantID == tenantID && a.Type == accountType {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAccountRepo) FindAllForTenant(_ context.Context, tenantID uuid.UUID, _ shared.Filter) ([]ledger.Account, error) {
	out := make([]ledger.Account, 0)
	for _, a := range r.accounts {
		if a.TenantID == tenantID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAccountRepo) Save(_ context.Context, account *ledger.Account) error {
	r.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) SaveWithLock(_ context.Context, account *ledger.Account) error {
	r.accounts[account.ID] = account
	return nil
}

type fakeLedgerTxRepo struct {
	transactions map[uuid.UUID]*ledger.LedgerTransaction
}

func (r *fakeLedgerTxRepo) Create(_ context.Context, tx *ledger.LedgerTransaction) error {
	r.transactions[tx.ID] = tx
	return nil
}

func (r *fakeLedgerTxRepo) FindByID(_ context.Context, id uuid.UUID) (*ledger.LedgerTransaction, error) {
	if tx, ok := r.transactions[id]; ok {
		return tx, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeLedgerTxRepo) FindByIDForTenant(_ context.Context, tenantID, id uuid.UUID) (*ledger.LedgerTransaction, error) {
	if tx, ok := r.transactions[id]; ok && tx.TenantID == tenantID {
		return tx, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeLedgerTxRepo) FindByNumber(_ context.Context, tenantID uuid.UUID, number string) (*ledger.LedgerTransaction, error) {
	for _, tx := range r.transactions {
		if tx.TenantID == tenantID && tx.TransactionNumber == number {
			return tx, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeLedgerTxRepo) FindByReference(_ context.Context, tenantID uuid.UUID, referenceType string, referenceID uuid.UUID) ([]ledger.LedgerTransaction, error) {
	out := make([]ledger.LedgerTransaction, 0)
	for _, tx := range r.transactions {
		if tx.TenantID == tenantID && tx.ReferenceType == referenceType && tx.ReferenceID != nil && *tx.ReferenceID == referenceID {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (r *fakeLedgerTxRepo) FindAllForTenant(_ context.Context, tenantID uuid.UUID, _ ledger.TransactionFilter) ([]ledger.LedgerTransaction, error) {
	out := make([]ledger.LedgerTransaction, 0)
	for _, tx := range r.transactions {
		if tx.TenantID == tenantID {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (r *fakeLedgerTxRepo) CountForTenant(_ context.Context, tenantID uuid.UUID, _ ledger.TransactionFilter) (int64, error) {
	var n int64
	for _, tx := range r.transactions {
		if tx.TenantID == tenantID {
			n++
		}
	}
	return n, nil
}

type fakeBillRepo struct {
	bills map[uuid.UUID]*billing.Bill
}

func (r *fakeBillRepo) FindByID(_ context.Context, tenantID, id uuid.UUID) (*billing.Bill, error) {
	if b, ok := r.bills[id]; ok && b.TenantID == tenantID {
		return b, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeBillRepo) FindByNumber(_ context.Context, tenantID uuid.UUID, billNumber string) (*billing.Bill, error) {
	for _, b := range r.bills {
		if b.TenantID == tenantID && b.BillNumber == billNumber {
			return b, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeBillRepo) FindByGoodsReceipt(_ context.Context, tenantID, receiptID uuid.UUID) (*billing.Bill, error) {
	for _, b := range r.bills {
		if b.TenantID == tenantID && b.GoodsReceiptID != nil && *b.GoodsReceiptID == receiptID {
			return b, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeBillRepo) FindAll(_ context.Context, tenantID uuid.UUID, _ billing.BillFilter) ([]*billing.Bill, int64, error) {
	out := make([]*billing.Bill, 0)
	for _, b := range r.bills {
		if b.TenantID == tenantID {
			out = append(out, b)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeBillRepo) Save(_ context.Context, bill *billing.Bill) error {
	r.bills[bill.ID] = bill
	return nil
}

func (r *fakeBillRepo) SaveWithLock(_ context.Context, bill *billing.Bill, _ int) error {
	r.bills[bill.ID] = bill
	return nil
}

type fakeVendorRepo struct {
	vendors map[uuid.UUID]*partner.Vendor
}

func (r *fakeVendorRepo) FindByID(_ context.Context, tenantID, id uuid.UUID) (*partner.Vendor, error) {
	if v, ok := r.vendors[id]; ok && v.TenantID == tenantID {
		return v, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeVendorRepo) FindByCode(_ context.Context, tenantID uuid.UUID, code string) (*partner.Vendor, error) {
	for _, v := range r.vendors {
		if v.TenantID == tenantID && v.Code == code {
			return v, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeVendorRepo) FindAll(_ context.Context, tenantID uuid.UUID, _ shared.Filter) ([]*partner.Vendor, int64, error) {
	out := make([]*partner.Vendor, 0)
	for _, v := range r.vendors {
		if v.TenantID == tenantID {
			out = append(out, v)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeVendorRepo) Save(_ context.Context, vendor *partner.Vendor) error {
	r.vendors[vendor.ID] = vendor
	return nil
}

func (r *fakeVendorRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	delete(r.vendors, id)
	return nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*partner.Product
}

func (r *fakeProductRepo) FindByID(_ context.Context, tenantID, id uuid.UUID) (*partner.Product, error) {
	if p, ok := r.products[id]; ok && p.TenantID == tenantID {
		return p, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeProductRepo) FindBySKU(_ context.Context, tenantID uuid.UUID, sku string) (*partner.Product, error) {
	for _, p := range r.products {
		if p.TenantID == tenantID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeProductRepo) FindByIDs(_ context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]*partner.Product, error) {
	out := make([]*partner.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok && p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) FindAll(_ context.Context, tenantID uuid.UUID, _ shared.Filter) ([]*partner.Product, int64, error) {
	out := make([]*partner.Product, 0)
	for _, p := range r.products {
		if p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) Save(_ context.Context, product *partner.Product) error {
	r.products[product.ID] = product
	return nil
}

type fakePurchaseOrderRepo struct {
	orders map[uuid.UUID]*partner.PurchaseOrder
}

func (r *fakePurchaseOrderRepo) FindByID(_ context.Context, tenantID, id uuid.UUID) (*partner.PurchaseOrder, error) {
	if o, ok := r.orders[id]; ok && o.TenantID == tenantID {
		return o, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakePurchaseOrderRepo) FindByNumber(_ context.Context, tenantID uuid.UUID, orderNumber string) (*partner.PurchaseOrder, error) {
	for _, o := range r.orders {
		if o.TenantID == tenantID && o.OrderNumber == orderNumber {
			return o, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakePurchaseOrderRepo) FindAll(_ context.Context, tenantID uuid.UUID, _ shared.Filter) ([]*partner.PurchaseOrder, int64, error) {
	out := make([]*partner.PurchaseOrder, 0)
	for _, o := range r.orders {
		if o.TenantID == tenantID {
			out = append(out, o)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakePurchaseOrderRepo) Save(_ context.Context, order *partner.PurchaseOrder) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakePurchaseOrderRepo) SaveWithLock(_ context.Context, order *partner.PurchaseOrder, expectedVersion int) error {
	if existing, ok := r.orders[order.ID]; ok && existing != order && existing.GetVersion() != expectedVersion {
		return shared.ErrConcurrencyConflict
	}
	r.orders[order.ID] = order
	return nil
}

type memRateRepo struct {
	rows []*currency.ExchangeRate
}

func (r *memRateRepo) FindLatestOnOrBefore(_ context.Context, tenantID uuid.UUID, from, to valueobject.Currency, date time.Time) (*currency.ExchangeRate, error) {
	var best *currency.ExchangeRate
	for _, row := range r.rows {
		if row.TenantID != tenantID || row.FromCurrency != from || row.ToCurrency != to {
			continue
		}
		if row.EffectiveDate.After(date) {
			continue
		}
		if best == nil || row.EffectiveDate.After(best.EffectiveDate) {
			best = row
		}
	}
	return best, nil
}

func (r *memRateRepo) FindByKey(_ context.Context, tenantID uuid.UUID, from, to valueobject.Currency, effectiveDate time.Time) (*currency.ExchangeRate, error) {
	for _, row := range r.rows {
		if row.TenantID == tenantID && row.FromCurrency == from && row.ToCurrency == to && row.EffectiveDate.Equal(effectiveDate) {
			return row, nil
		}
	}
	return nil, nil
}

func (r *memRateRepo) Upsert(_ context.Context, rate *currency.ExchangeRate) error {
	r.rows = append(r.rows, rate)
	return nil
}

func (r *memRateRepo) FindByPair(_ context.Context, tenantID uuid.UUID, from, to valueobject.Currency, _ shared.Filter) ([]currency.ExchangeRate, error) {
	out := make([]currency.ExchangeRate, 0)
	for _, row := range r.rows {
		if row.TenantID == tenantID && row.FromCurrency == from && row.ToCurrency == to {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (r *memRateRepo) FindAllForTenant(_ context.Context, tenantID uuid.UUID, _ shared.Filter) ([]currency.ExchangeRate, error) {
	out := make([]currency.ExchangeRate, 0)
	for _, row := range r.rows {
		if row.TenantID == tenantID {
			out = append(out, *row)
		}
	}
	return out, nil
}
