package persistence

import (
	"strings"

	"gorm.io/gorm"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
)

// sortableColumns whitelists the columns queries may order by. Anything else
// falls back to created_at so a caller cannot inject arbitrary SQL through
// the order parameter.
var sortableColumns = map[string]bool{
	"created_at":         true,
	"updated_at":         true,
	"transaction_date":   true,
	"transaction_number": true,
	"effective_date":     true,
	"receipt_date":       true,
	"receipt_number":     true,
	"bill_date":          true,
	"due_date":           true,
	"bill_number":        true,
	"order_date":         true,
	"order_number":       true,
	"code":               true,
	"sku":                true,
	"name":               true,
}

// applyFilter applies pagination and ordering from the shared filter
func applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := filter.OrderBy
	if !sortableColumns[orderBy] {
		orderBy = "created_at"
	}
	orderDir := "ASC"
	if strings.ToLower(filter.OrderDir) == "desc" || filter.OrderBy == "" {
		orderDir = "DESC"
	}
	return query.Order(orderBy + " " + orderDir)
}
