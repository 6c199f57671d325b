package partner

import (
	"time"

	"github.com/google/uuid"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

// VendorStatus is the lifecycle state of a vendor
type VendorStatus string

const (
	VendorStatusActive   VendorStatus = "ACTIVE"
	VendorStatusInactive VendorStatus = "INACTIVE"
)

// IsValid checks if the status is valid
func (s VendorStatus) IsValid() bool {
	return s == VendorStatusActive || s == VendorStatusInactive
}

// Vendor is a supplier of goods. The receiving core reads vendors; it never
// mutates them.
type Vendor struct {
	shared.TenantAggregateRoot
	Code            string               `gorm:"type:varchar(50);not null;uniqueIndex:idx_vendor_tenant_code,priority:2"`
	Name            string               `gorm:"type:varchar(200);not null"`
	Status          VendorStatus         `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	Currency        valueobject.Currency `gorm:"type:varchar(3);not null"`
	PaymentTermDays int                  `gorm:"not null;default:0"`
	ContactName     string               `gorm:"type:varchar(100)"`
	Email           string               `gorm:"type:varchar(200)"`
	Phone           string               `gorm:"type:varchar(50)"`
	TaxID           string               `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (Vendor) TableName() string {
	return "vendors"
}

// NewVendor creates a new active vendor
func NewVendor(tenantID uuid.UUID, code, name string, currency valueobject.Currency, paymentTermDays int) (*Vendor, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Vendor code cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Vendor name cannot be empty")
	}
	if !currency.IsValid() {
		return nil, shared.NewDomainError("INVALID_CURRENCY", "Unknown currency code")
	}
	if paymentTermDays < 0 {
		return nil, shared.NewDomainError("INVALID_TERMS", "Payment term days cannot be negative")
	}

	return &Vendor{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                code,
		Name:                name,
		Status:              VendorStatusActive,
		Currency:            currency,
		PaymentTermDays:     paymentTermDays,
	}, nil
}

// IsActive returns true if the vendor can be used on new documents
func (v *Vendor) IsActive() bool {
	return v.Status == VendorStatusActive
}

// Update changes vendor master data
func (v *Vendor) Update(name string, paymentTermDays int) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Vendor name cannot be empty")
	}
	if paymentTermDays < 0 {
		return shared.NewDomainError("INVALID_TERMS", "Payment term days cannot be negative")
	}
	v.Name = name
	v.PaymentTermDays = paymentTermDays
	v.IncrementVersion()
	return nil
}

// SetContact updates the vendor's contact details
func (v *Vendor) SetContact(contactName, email, phone, taxID string) {
	v.ContactName = contactName
	v.Email = email
	v.Phone = phone
	v.TaxID = taxID
	v.IncrementVersion()
}

// Deactivate blocks the vendor from new documents
func (v *Vendor) Deactivate() error {
	if v.Status == VendorStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Vendor is already inactive")
	}
	v.Status = VendorStatusInactive
	v.IncrementVersion()
	return nil
}

// Activate re-enables an inactive vendor
func (v *Vendor) Activate() error {
	if v.Status == VendorStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Vendor is already active")
	}
	v.Status = VendorStatusActive
	v.IncrementVersion()
	return nil
}

// DueDateFrom computes the payment due date from the vendor's terms
func (v *Vendor) DueDateFrom(documentDate time.Time) time.Time {
	return documentDate.AddDate(0, 0, v.PaymentTermDays)
}
