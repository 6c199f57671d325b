package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	ledgerapp "github.com/Mudegi/YourBookSuit-sub006/internal/application/ledger"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/ledger"
)

// LedgerHandler handles chart-of-accounts and journal posting endpoints
type LedgerHandler struct {
	BaseHandler
	service *ledgerapp.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(service *ledgerapp.LedgerService) *LedgerHandler {
	return &LedgerHandler{service: service}
}

// CreateAccount handles POST /api/v1/ledger/accounts
func (h *LedgerHandler) CreateAccount(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}

	var req ledgerapp.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	account, err := h.service.CreateAccount(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, account)
}

// GetAccount handles GET /api/v1/ledger/accounts/:id
func (h *LedgerHandler) GetAccount(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}
	accountID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	account, err := h.service.GetAccountBalance(c.Request.Context(), tenantID, accountID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, account)
}

// ListAccounts handles GET /api/v1/ledger/accounts
func (h *LedgerHandler) ListAccounts(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}

	accounts, err := h.service.ListAccounts(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, accounts)
}

// PostTransaction handles POST /api/v1/ledger/transactions
func (h *LedgerHandler) PostTransaction(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}

	var req ledgerapp.PostTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	tx, err := h.service.Post(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, tx)
}

// ReverseTransaction handles POST /api/v1/ledger/transactions/:id/reverse
func (h *LedgerHandler) ReverseTransaction(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}
	transactionID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req ledgerapp.ReverseTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	reversal, err := h.service.Reverse(c.Request.Context(), tenantID, transactionID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, reversal)
}

// GetTransaction handles GET /api/v1/ledger/transactions/:id
func (h *LedgerHandler) GetTransaction(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}
	transactionID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	tx, err := h.service.GetByID(c.Request.Context(), tenantID, transactionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tx)
}

// ListTransactions handles GET /api/v1/ledger/transactions
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}
	base, ok := h.listFilter(c)
	if !ok {
		return
	}

	filter := ledger.TransactionFilter{Filter: base}
	if v := c.Query("type"); v != "" {
		txType := ledger.TransactionType(v)
		filter.Type = &txType
	}
	if v := c.Query("account_id"); v != "" {
		accountID, err := uuid.Parse(v)
		if err != nil {
			h.BadRequest(c, "account_id must be a valid UUID")
			return
		}
		filter.AccountID = &accountID
	}
	if v := c.Query("from_date"); v != "" {
		from, err := time.Parse("2006-01-02", v)
		if err != nil {
			h.BadRequest(c, "from_date must be YYYY-MM-DD")
			return
		}
		filter.FromDate = &from
	}
	if v := c.Query("to_date"); v != "" {
		to, err := time.Parse("2006-01-02", v)
		if err != nil {
			h.BadRequest(c, "to_date must be YYYY-MM-DD")
			return
		}
		filter.ToDate = &to
	}

	txs, total, err := h.service.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, txs, total, filter.Page, filter.PageSize)
}
