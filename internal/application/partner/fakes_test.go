package partner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/partner"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

func mustCurrency(t *testing.T, code string) valueobject.Currency {
	t.Helper()
	c, err := valueobject.ParseCurrency(code)
	require.NoError(t, err)
	return c
}

type fakeVendorRepo struct {
	vendors map[uuid.UUID]*partner.Vendor
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{vendors: make(map[uuid.UUID]*partner.Vendor)}
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
	out := make([]*partner.Vendor, 0, len(r.vendors))
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

func (r *fakeVendorRepo) Delete(_ context.Context, tenantID, id uuid.UUID) error {
	if v, ok := r.vendors[id]; ok && v.TenantID == tenantID {
		delete(r.vendors, id)
		return nil
	}
	return shared.ErrNotFound
}

type fakeProductRepo struct {
	products map[uuid.UUID]*partner.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*partner.Product)}
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
	out := make([]*partner.Product, 0, len(r.products))
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

type fakeOrderRepo struct {
	orders    map[uuid.UUID]*partner.PurchaseOrder
	conflict  bool
	saveCalls int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*partner.PurchaseOrder)}
}

func (r *fakeOrderRepo) FindByID(_ context.Context, tenantID, id uuid.UUID) (*partner.PurchaseOrder, error) {
	if o, ok := r.orders[id]; ok && o.TenantID == tenantID {
		return o, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeOrderRepo) FindByNumber(_ context.Context, tenantID uuid.UUID, orderNumber string) (*partner.PurchaseOrder, error) {
	for _, o := range r.orders {
		if o.TenantID == tenantID && o.OrderNumber == orderNumber {
			return o, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeOrderRepo) FindAll(_ context.Context, tenantID uuid.UUID, _ shared.Filter) ([]*partner.PurchaseOrder, int64, error) {
	out := make([]*partner.PurchaseOrder, 0, len(r.orders))
	for _, o := range r.orders {
		if o.TenantID == tenantID {
			out = append(out, o)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) Save(_ context.Context, order *partner.PurchaseOrder) error {
	r.saveCalls++
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) SaveWithLock(_ context.Context, order *partner.PurchaseOrder, _ int) error {
	if r.conflict {
		return shared.ErrConcurrencyConflict
	}
	r.orders[order.ID] = order
	return nil
}
