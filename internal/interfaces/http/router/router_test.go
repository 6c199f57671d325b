package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	billingapp "github.com/Mudegi/YourBookSuit-sub006/internal/application/billing"
	currencyapp "github.com/Mudegi/YourBookSuit-sub006/internal/application/currency"
	inventoryapp "github.com/Mudegi/YourBookSuit-sub006/internal/application/inventory"
	ledgerapp "github.com/Mudegi/YourBookSuit-sub006/internal/application/ledger"
	partnerapp "github.com/Mudegi/YourBookSuit-sub006/internal/application/partner"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/partner"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
	"github.com/Mudegi/YourBookSuit-sub006/internal/infrastructure/config"
	"github.com/Mudegi/YourBookSuit-sub006/internal/infrastructure/persistence"
	"github.com/Mudegi/YourBookSuit-sub006/internal/interfaces/http/handler"
)

type stubVendorRepo struct{}

func (r *stubVendorRepo) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*partner.Vendor, error) {
	return nil, shared.ErrNotFound
}

func (r *stubVendorRepo) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*partner.Vendor, error) {
	return nil, shared.ErrNotFound
}

func (r *stubVendorRepo) FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]*partner.Vendor, int64, error) {
	return nil, 0, nil
}

func (r *stubVendorRepo) Save(ctx context.Context, vendor *partner.Vendor) error { return nil }

func (r *stubVendorRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error { return nil }

func newTestEngine(t *testing.T) http.Handler {
	t.Helper()

	log := zap.NewNop()
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.HTTP.MaxBodySize = 1 << 20

	vendorService := partnerapp.NewVendorService(&stubVendorRepo{}, log)

	handlers := Handlers{
		System:        handler.NewSystemHandler(&persistence.Database{}),
		Ledger:        handler.NewLedgerHandler(ledgerapp.NewLedgerService(nil, log)),
		Rates:         handler.NewRateHandler(currencyapp.NewRateService(nil, nil, nil, log)),
		Inventory:     handler.NewInventoryHandler(inventoryapp.NewValuationService(nil, log)),
		GoodsReceipts: handler.NewGoodsReceiptHandler(nil),
		Vendors:       handler.NewVendorHandler(vendorService),
		Products:      handler.NewProductHandler(partnerapp.NewProductService(nil, log)),
		Orders:        handler.NewPurchaseOrderHandler(nil),
		Bills:         handler.NewBillHandler(billingapp.NewBillService(nil, log)),
	}

	return New(cfg, log, handlers)
}

func TestRouterHealthEndpoint(t *testing.T) {
	engine := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestRouterRequiresTenantOnAPIRoutes(t *testing.T) {
	engine := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vendors", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_TENANT")
}

func TestRouterServesTenantScopedRoute(t *testing.T) {
	engine := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vendors", nil)
	req.Header.Set("X-Tenant-ID", uuid.New().String())
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterSetsRequestIDHeader(t *testing.T) {
	engine := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
