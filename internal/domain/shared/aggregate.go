package shared

import (
	"time"

	"github.com/google/uuid"
)

// TenantAggregateRoot carries the fields every persisted aggregate shares:
// identity, timestamps, the optimistic lock version, and the owning tenant.
// Domain types embed it anonymously so GORM flattens the columns into their
// tables.
type TenantAggregateRoot struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	TenantID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Version   int        `gorm:"not null;default:1"`
	CreatedBy *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
}

// NewTenantAggregateRoot mints a fresh aggregate identity for the tenant
// with version 1.
func NewTenantAggregateRoot(tenantID uuid.UUID) TenantAggregateRoot {
	now := time.Now()
	return TenantAggregateRoot{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GetVersion returns the version the aggregate was loaded at. Repositories
// compare it against the stored row when saving.
func (t *TenantAggregateRoot) GetVersion() int {
	return t.Version
}

// IncrementVersion bumps the optimistic lock version. Mutators call this
// once per state change.
func (t *TenantAggregateRoot) IncrementVersion() {
	t.Version++
}

// SetCreatedBy records the user who created the aggregate, when known.
func (t *TenantAggregateRoot) SetCreatedBy(userID uuid.UUID) {
	t.CreatedBy = &userID
}
