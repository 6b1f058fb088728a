package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/fintrack/fintrack-server/internal/logger"
	"github.com/fintrack/fintrack-server/internal/model"
)

// TransactionService defines owner-scoped transaction operations.
type TransactionService interface {
	Create(ctx context.Context, params model.CreateTransactionParams) (model.Transaction, error)
	List(ctx context.Context, ownerID uuid.UUID, filter model.TransactionFilter) ([]model.Transaction, error)
	Get(ctx context.Context, callerID uuid.UUID, id uuid.UUID) (model.Transaction, error)
	Update(ctx context.Context, callerID uuid.UUID, params model.UpdateTransactionParams) (model.Transaction, error)
	Delete(ctx context.Context, callerID uuid.UUID, id uuid.UUID) error
}

// Transaction handles HTTP endpoints for transactions.
type Transaction struct {
	transactionService TransactionService
	contextManager     model.ContextManager
	logger             *logger.Logger
}

// NewTransaction creates a new Transaction handler.
func NewTransaction(transactionService TransactionService, contextManager model.ContextManager, logger *logger.Logger) *Transaction {
	return &Transaction{
		transactionService: transactionService,
		contextManager:     contextManager,
		logger:             logger,
	}
}

type createTransactionRequest struct {
	Kind          string    `json:"kind"`
	Amount        float64   `json:"amount"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Date          time.Time `json:"date"`
	PaymentMethod string    `json:"payment_method"`
}

type updateTransactionRequest struct {
	Kind          *string    `json:"kind"`
	Amount        *float64   `json:"amount"`
	Category      *string    `json:"category"`
	Description   *string    `json:"description"`
	Date          *time.Time `json:"date"`
	PaymentMethod *string    `json:"payment_method"`
}

type listTransactionsResponse struct {
	Count        int                   `json:"count"`
	Transactions []transactionResponse `json:"transactions"`
}

// Create stores a new transaction owned by the caller.
func (h *Transaction) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		WriteError(w, model.ErrUnauthenticated)
		return
	}

	var req createTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	transaction, err := h.transactionService.Create(r.Context(), model.CreateTransactionParams{
		OwnerID:       identity.ID,
		Kind:          model.TransactionKind(req.Kind),
		Amount:        req.Amount,
		Category:      req.Category,
		Description:   req.Description,
		Date:          req.Date,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		h.logger.Error("Transaction handler: create failed",
			"owner_id", identity.ID,
			"error", err.Error())
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]transactionResponse{"transaction": toTransactionResponse(transaction)})
}

// List returns the caller's transactions, optionally filtered by kind,
// category and date range.
func (h *Transaction) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		WriteError(w, model.ErrUnauthenticated)
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	transactions, err := h.transactionService.List(r.Context(), identity.ID, filter)
	if err != nil {
		h.logger.Error("Transaction handler: list failed",
			"owner_id", identity.ID,
			"error", err.Error())
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, listTransactionsResponse{
		Count:        len(transactions),
		Transactions: toTransactionResponses(transactions),
	})
}

// Get returns a single transaction owned by the caller.
func (h *Transaction) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		WriteError(w, model.ErrUnauthenticated)
		return
	}

	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	transaction, err := h.transactionService.Get(r.Context(), identity.ID, id)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]transactionResponse{"transaction": toTransactionResponse(transaction)})
}

// Update applies a partial update to a transaction owned by the caller.
func (h *Transaction) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		WriteError(w, model.ErrUnauthenticated)
		return
	}

	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req updateTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	params := model.UpdateTransactionParams{
		ID:            id,
		Amount:        req.Amount,
		Category:      req.Category,
		Description:   req.Description,
		Date:          req.Date,
		PaymentMethod: req.PaymentMethod,
	}
	if req.Kind != nil {
		kind := model.TransactionKind(*req.Kind)
		params.Kind = &kind
	}

	transaction, err := h.transactionService.Update(r.Context(), identity.ID, params)
	if err != nil {
		h.logger.Error("Transaction handler: update failed",
			"transaction_id", id,
			"error", err.Error())
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]transactionResponse{"transaction": toTransactionResponse(transaction)})
}

// Delete removes a transaction owned by the caller.
func (h *Transaction) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		WriteError(w, model.ErrUnauthenticated)
		return
	}

	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.transactionService.Delete(r.Context(), identity.ID, id); err != nil {
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"message": "transaction deleted"})
}

func parseFilter(r *http.Request) (model.TransactionFilter, error) {
	q := r.URL.Query()
	filter := model.TransactionFilter{
		Kind:     model.TransactionKind(q.Get("kind")),
		Category: q.Get("category"),
	}

	if raw := q.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			// Bare dates are accepted as a convenience.
			from, err = time.Parse("2006-01-02", raw)
			if err != nil {
				return model.TransactionFilter{}, model.ErrInvalidInput
			}
		}
		filter.From = from
	}
	if raw := q.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			to, err = time.Parse("2006-01-02", raw)
			if err != nil {
				return model.TransactionFilter{}, model.ErrInvalidInput
			}
		}
		filter.To = to
	}

	return filter, nil
}
