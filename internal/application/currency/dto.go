package currency

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/currency"
)

// ==================== Exchange Rate DTOs ====================

// SaveRateRequest represents a request to store an exchange rate
type SaveRateRequest struct {
	FromCurrency  string          `json:"from_currency" binding:"required,currencycode"`
	ToCurrency    string          `json:"to_currency" binding:"required,currencycode"`
	EffectiveDate time.Time       `json:"effective_date" binding:"required"`
	Rate          decimal.Decimal `json:"rate" binding:"required"`
	Source        string          `json:"source"`
}

// LookupRateRequest represents a rate resolution query
type LookupRateRequest struct {
	FromCurrency string    `form:"from_currency" binding:"required,currencycode"`
	ToCurrency   string    `form:"to_currency" binding:"required,currencycode"`
	AsOf         time.Time `form:"as_of"`
}

// ConvertRequest represents an amount conversion query
type ConvertRequest struct {
	Amount       decimal.Decimal `form:"amount" binding:"required"`
	FromCurrency string          `form:"from_currency" binding:"required,currencycode"`
	ToCurrency   string          `form:"to_currency" binding:"required,currencycode"`
	AsOf         time.Time       `form:"as_of"`
}

// RateResponse represents a stored exchange rate
type RateResponse struct {
	FromCurrency  string          `json:"from_currency"`
	ToCurrency    string          `json:"to_currency"`
	EffectiveDate time.Time       `json:"effective_date"`
	Rate          decimal.Decimal `json:"rate"`
	Source        string          `json:"source"`
}

// LookupResponse represents a resolved rate with its resolution outcome
type LookupResponse struct {
	FromCurrency string          `json:"from_currency"`
	ToCurrency   string          `json:"to_currency"`
	AsOf         time.Time       `json:"as_of"`
	Outcome      string          `json:"outcome"`
	Rate         decimal.Decimal `json:"rate"`
}

// ConvertResponse represents a converted amount
type ConvertResponse struct {
	Amount       decimal.Decimal `json:"amount"`
	FromCurrency string          `json:"from_currency"`
	ToCurrency   string          `json:"to_currency"`
	Rate         decimal.Decimal `json:"rate"`
	Converted    decimal.Decimal `json:"converted"`
}

// ToRateResponse maps a stored rate to its response shape
func ToRateResponse(rate *currency.ExchangeRate) RateResponse {
	return RateResponse{
		FromCurrency:  rate.FromCurrency.String(),
		ToCurrency:    rate.ToCurrency.String(),
		EffectiveDate: rate.EffectiveDate,
		Rate:          rate.Rate,
		Source:        string(rate.Source),
	}
}
