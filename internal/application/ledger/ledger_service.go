package ledger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/ledger"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

// LedgerService posts and reverses ledger transactions. Every posting runs
// inside one transaction scope so the transaction log and the touched account
// balances always commit together.
type LedgerService struct {
	txScope TransactionScope
	posting *ledger.PostingService
	logger  *zap.Logger
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(txScope TransactionScope, logger *zap.Logger) *LedgerService {
	return &LedgerService{
		txScope: txScope,
		posting: ledger.NewPostingService(),
		logger:  logger,
	}
}

// Post validates and posts a balanced transaction, updating account balances
func (s *LedgerService) Post(ctx context.Context, tenantID uuid.UUID, req PostTransactionRequest) (*TransactionResponse, error) {
	header, entries, err := s.buildPosting(req)
	if err != nil {
		return nil, err
	}

	var posted *ledger.LedgerTransaction
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		existing, err := repos.TransactionRepo().FindByNumber(ctx, tenantID, req.TransactionNumber)
		if err != nil && !shared.IsNotFound(err) {
			return err
		}
		if existing != nil {
			return shared.NewDomainError("DUPLICATE_NUMBER", "Transaction number already used")
		}

		accounts, err := s.loadAccounts(ctx, repos, tenantID, entries)
		if err != nil {
			return err
		}

		tx, err := s.posting.Post(tenantID, header, entries, accounts)
		if err != nil {
			return err
		}

		if err := repos.TransactionRepo().Create(ctx, tx); err != nil {
			return err
		}
		for _, account := range accounts {
			if err := repos.AccountRepo().SaveWithLock(ctx, account); err != nil {
				return err
			}
		}

		posted = tx
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ledger transaction posted",
		zap.String("tenant_id", tenantID.String()),
		zap.String("transaction_number", posted.TransactionNumber),
		zap.String("type", posted.Type.String()),
		zap.String("amount", posted.TotalDebits().String()))

	response := ToTransactionResponse(posted)
	return &response, nil
}

// Reverse posts a new transaction that undoes a previously posted one. The
// original transaction is never mutated.
func (s *LedgerService) Reverse(ctx context.Context, tenantID, transactionID uuid.UUID, req ReverseTransactionRequest) (*TransactionResponse, error) {
	var posted *ledger.LedgerTransaction
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		original, err := repos.TransactionRepo().FindByIDForTenant(ctx, tenantID, transactionID)
		if err != nil {
			return err
		}

		header, entries := s.posting.BuildReversal(original, req.TransactionNumber, req.Description, req.ReversalDate)

		accounts, err := s.loadAccounts(ctx, repos, tenantID, entries)
		if err != nil {
			return err
		}

		tx, err := s.posting.Post(tenantID, header, entries, accounts)
		if err != nil {
			return err
		}

		if err := repos.TransactionRepo().Create(ctx, tx); err != nil {
			return err
		}
		for _, account := range accounts {
			if err := repos.AccountRepo().SaveWithLock(ctx, account); err != nil {
				return err
			}
		}

		posted = tx
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ledger transaction reversed",
		zap.String("tenant_id", tenantID.String()),
		zap.String("original_id", transactionID.String()),
		zap.String("reversal_number", posted.TransactionNumber))

	response := ToTransactionResponse(posted)
	return &response, nil
}

// GetByID retrieves a posted transaction with its entries
func (s *LedgerService) GetByID(ctx context.Context, tenantID, transactionID uuid.UUID) (*TransactionResponse, error) {
	var response TransactionResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		tx, err := repos.TransactionRepo().FindByIDForTenant(ctx, tenantID, transactionID)
		if err != nil {
			return err
		}
		response = ToTransactionResponse(tx)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// List retrieves transactions for a tenant with filtering
func (s *LedgerService) List(ctx context.Context, tenantID uuid.UUID, filter ledger.TransactionFilter) ([]TransactionResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	var responses []TransactionResponse
	var total int64
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		txs, err := repos.TransactionRepo().FindAllForTenant(ctx, tenantID, filter)
		if err != nil {
			return err
		}
		total, err = repos.TransactionRepo().CountForTenant(ctx, tenantID, filter)
		if err != nil {
			return err
		}

		responses = make([]TransactionResponse, 0, len(txs))
		for i := range txs {
			responses = append(responses, ToTransactionResponse(&txs[i]))
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return responses, total, nil
}

// GetAccountBalance retrieves an account with its running balance
func (s *LedgerService) GetAccountBalance(ctx context.Context, tenantID, accountID uuid.UUID) (*AccountResponse, error) {
	var response AccountResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		account, err := repos.AccountRepo().FindByIDForTenant(ctx, tenantID, accountID)
		if err != nil {
			return err
		}
		response = ToAccountResponse(account)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// CreateAccount adds an account to the tenant's chart of accounts
func (s *LedgerService) CreateAccount(ctx context.Context, tenantID uuid.UUID, req CreateAccountRequest) (*AccountResponse, error) {
	currency, err := valueobject.ParseCurrency(req.Currency)
	if err != nil {
		return nil, err
	}

	var response AccountResponse
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		existing, err := repos.AccountRepo().FindByCode(ctx, tenantID, req.Code)
		if err != nil && !shared.IsNotFound(err) {
			return err
		}
		if existing != nil {
			return shared.NewDomainError("CODE_EXISTS", "Account code already used")
		}

		account, err := ledger.NewAccount(tenantID, req.Code, req.Name, ledger.AccountType(req.Type), currency)
		if err != nil {
			return err
		}
		if err := repos.AccountRepo().Save(ctx, account); err != nil {
			return err
		}
		response = ToAccountResponse(account)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("account created",
		zap.String("tenant_id", tenantID.String()),
		zap.String("code", req.Code))
	return &response, nil
}

// ListAccounts lists the tenant's chart of accounts
func (s *LedgerService) ListAccounts(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]AccountResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}

	var responses []AccountResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		accounts, err := repos.AccountRepo().FindAllForTenant(ctx, tenantID, filter)
		if err != nil {
			return err
		}
		responses = make([]AccountResponse, 0, len(accounts))
		for i := range accounts {
			responses = append(responses, ToAccountResponse(&accounts[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

func (s *LedgerService) buildPosting(req PostTransactionRequest) (ledger.TransactionHeader, []ledger.EntryInput, error) {
	currency, err := valueobject.ParseCurrency(req.Currency)
	if err != nil {
		return ledger.TransactionHeader{}, nil, err
	}

	txType := ledger.TransactionType(req.Type)
	if !txType.IsValid() {
		return ledger.TransactionHeader{}, nil, shared.NewDomainError("INVALID_TYPE", "Unknown transaction type")
	}

	header := ledger.TransactionHeader{
		TransactionNumber: req.TransactionNumber,
		TransactionDate:   req.TransactionDate,
		Type:              txType,
		Currency:          currency,
		Description:       req.Description,
		ReferenceType:     req.ReferenceType,
		ReferenceID:       req.ReferenceID,
		CreatedBy:         req.CreatedBy,
	}

	entries := make([]ledger.EntryInput, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, ledger.EntryInput{
			AccountID:   e.AccountID,
			Direction:   ledger.EntryDirection(e.Direction),
			Amount:      e.Amount,
			Description: e.Description,
		})
	}
	return header, entries, nil
}

func (s *LedgerService) loadAccounts(ctx context.Context, repos TransactionalRepositories, tenantID uuid.UUID, entries []ledger.EntryInput) (map[uuid.UUID]*ledger.Account, error) {
	ids := make([]uuid.UUID, 0, len(entries))
	seen := make(map[uuid.UUID]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.AccountID]; !ok {
			seen[e.AccountID] = struct{}{}
			ids = append(ids, e.AccountID)
		}
	}

	found, err := repos.AccountRepo().FindByIDs(ctx, tenantID, ids)
	if err != nil {
		return nil, err
	}

	accounts := make(map[uuid.UUID]*ledger.Account, len(found))
	for i := range found {
		accounts[found[i].ID] = &found[i]
	}
	return accounts, nil
}
