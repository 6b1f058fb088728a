package handler

import (
	"time"

	"github.com/fintrack/fintrack-server/internal/model"
)

// userResponse is the wire form of a user. The password hash never
// appears here.
type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// transactionResponse is the wire form of a transaction.
type transactionResponse struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	Kind          string    `json:"kind"`
	Amount        float64   `json:"amount"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Date          time.Time `json:"date"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toUserResponse(user model.User) userResponse {
	return userResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toUserResponses(users []model.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}
	return out
}

func toTransactionResponse(transaction model.Transaction) transactionResponse {
	return transactionResponse{
		ID:            transaction.ID.String(),
		OwnerID:       transaction.OwnerID.String(),
		Kind:          string(transaction.Kind),
		Amount:        transaction.Amount,
		Category:      transaction.Category,
		Description:   transaction.Description,
		Date:          transaction.Date,
		PaymentMethod: transaction.PaymentMethod,
		CreatedAt:     transaction.CreatedAt,
		UpdatedAt:     transaction.UpdatedAt,
	}
}

func toTransactionResponses(transactions []model.Transaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		out = append(out, toTransactionResponse(transaction))
	}
	return out
}
