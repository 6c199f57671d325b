package partner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/partner"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
)

func TestVendorService_Create(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates an active vendor with contact details", func(t *testing.T) {
		repo := newFakeVendorRepo()
		service := NewVendorService(repo, zap.NewNop())

		resp, err := service.Create(context.Background(), tenantID, CreateVendorRequest{
			Code:            "V-001",
			Name:            "Kampala Traders Ltd",
			Currency:        "UGX",
			PaymentTermDays: 30,
			ContactName:     "A. Okello",
			Email:           "accounts@kampalatraders.example",
		})
		require.NoError(t, err)

		assert.Equal(t, "V-001", resp.Code)
		assert.Equal(t, "ACTIVE", resp.Status)
		assert.Equal(t, "UGX", resp.Currency)
		assert.Equal(t, 30, resp.PaymentTermDays)
		assert.Equal(t, "A. Okello", resp.ContactName)
		assert.Len(t, repo.vendors, 1)
	})

	t.Run("rejects a duplicate code", func(t *testing.T) {
		repo := newFakeVendorRepo()
		service := NewVendorService(repo, zap.NewNop())

		_, err := service.Create(context.Background(), tenantID, CreateVendorRequest{
			Code: "V-001", Name: "First", Currency: "UGX",
		})
		require.NoError(t, err)

		_, err = service.Create(context.Background(), tenantID, CreateVendorRequest{
			Code: "V-001", Name: "Second", Currency: "UGX",
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})

	t.Run("same code is allowed for a different tenant", func(t *testing.T) {
		repo := newFakeVendorRepo()
		service := NewVendorService(repo, zap.NewNop())

		_, err := service.Create(context.Background(), tenantID, CreateVendorRequest{
			Code: "V-001", Name: "First", Currency: "UGX",
		})
		require.NoError(t, err)

		_, err = service.Create(context.Background(), uuid.New(), CreateVendorRequest{
			Code: "V-001", Name: "Other tenant", Currency: "KES",
		})
		require.NoError(t, err)
		assert.Len(t, repo.vendors, 2)
	})

	t.Run("rejects an unknown currency", func(t *testing.T) {
		repo := newFakeVendorRepo()
		service := NewVendorService(repo, zap.NewNop())

		_, err := service.Create(context.Background(), tenantID, CreateVendorRequest{
			Code: "V-002", Name: "Bad currency", Currency: "XXX",
		})
		require.Error(t, err)
		assert.Empty(t, repo.vendors)
	})
}

func TestVendorService_Lifecycle(t *testing.T) {
	tenantID := uuid.New()

	seedVendor := func(t *testing.T, repo *fakeVendorRepo) *partner.Vendor {
		t.Helper()
		vendor, err := partner.NewVendor(tenantID, "V-010", "Seeded", mustCurrency(t, "UGX"), 14)
		require.NoError(t, err)
		require.NoError(t, repo.Save(context.Background(), vendor))
		return vendor
	}

	t.Run("update changes name and terms", func(t *testing.T) {
		repo := newFakeVendorRepo()
		service := NewVendorService(repo, zap.NewNop())
		vendor := seedVendor(t, repo)

		resp, err := service.Update(context.Background(), tenantID, vendor.ID, UpdateVendorRequest{
			Name:            "Renamed Ltd",
			PaymentTermDays: 45,
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed Ltd", resp.Name)
		assert.Equal(t, 45, resp.PaymentTermDays)
	})

	t.Run("deactivate then activate round-trips the status", func(t *testing.T) {
		repo := newFakeVendorRepo()
		service := NewVendorService(repo, zap.NewNop())
		vendor := seedVendor(t, repo)

		require.NoError(t, service.Deactivate(context.Background(), tenantID, vendor.ID))
		assert.False(t, repo.vendors[vendor.ID].IsActive())

		// Deactivating twice is rejected
		err := service.Deactivate(context.Background(), tenantID, vendor.ID)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_INACTIVE", domainErr.Code)

		require.NoError(t, service.Activate(context.Background(), tenantID, vendor.ID))
		assert.True(t, repo.vendors[vendor.ID].IsActive())
	})

	t.Run("unknown vendor returns not found", func(t *testing.T) {
		repo := newFakeVendorRepo()
		service := NewVendorService(repo, zap.NewNop())

		_, err := service.GetByID(context.Background(), tenantID, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
