package valueobject

import "fmt"

// Currency represents a currency code (ISO 4217).
// The set is closed: every currency the system trades in is listed here, so an
// unknown code is rejected at construction time instead of surfacing later as
// a failed rate lookup.
type Currency string

const (
	UGX Currency = "UGX" // Ugandan Shilling (default)
	USD Currency = "USD" // US Dollar
	EUR Currency = "EUR" // Euro
	GBP Currency = "GBP" // British Pound
	KES Currency = "KES" // Kenyan Shilling
	TZS Currency = "TZS" // Tanzanian Shilling
	CNY Currency = "CNY" // Chinese Yuan
	JPY Currency = "JPY" // Japanese Yen
	AED Currency = "AED" // UAE Dirham
	INR Currency = "INR" // Indian Rupee
	ZAR Currency = "ZAR" // South African Rand
)

// DefaultCurrency is the base currency for the system
const DefaultCurrency = UGX

// IsValid checks if the currency is one of the supported codes
func (c Currency) IsValid() bool {
	switch c {
	case UGX, USD, EUR, GBP, KES, TZS, CNY, JPY, AED, INR, ZAR:
		return true
	}
	return false
}

// String returns the string representation of the currency
func (c Currency) String() string {
	return string(c)
}

// ParseCurrency validates a raw code and returns the Currency
func ParseCurrency(code string) (Currency, error) {
	c := Currency(code)
	if !c.IsValid() {
		return "", fmt.Errorf("unsupported currency code: %q", code)
	}
	return c, nil
}
