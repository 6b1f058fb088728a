package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fintrack/fintrack-server/internal/model"
)

var _ model.TransactionStore = (*TransactionRepository)(nil)

type TransactionRepository struct {
	db *Connection
}

func NewTransactionRepository(db *Connection) *TransactionRepository {
	return &TransactionRepository{
		db: db,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, transaction model.Transaction) (model.Transaction, error) {
	query := `INSERT INTO transactions (id, owner_id, kind, amount, category, description, date, payment_method, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id, owner_id, kind, amount, category, description, date, payment_method, created_at, updated_at`

	var saved model.Transaction
	err := r.db.QueryRow(ctx, query,
		transaction.ID, transaction.OwnerID, string(transaction.Kind), transaction.Amount,
		transaction.Category, transaction.Description, transaction.Date, transaction.PaymentMethod,
		transaction.CreatedAt, transaction.UpdatedAt,
	).Scan(
		&saved.ID, &saved.OwnerID, &saved.Kind, &saved.Amount,
		&saved.Category, &saved.Description, &saved.Date, &saved.PaymentMethod,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	return saved, nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Transaction, error) {
	query := `SELECT id, owner_id, kind, amount, category, description, date, payment_method, created_at, updated_at
			  FROM transactions WHERE id = $1`

	var transaction model.Transaction
	err := r.db.QueryRow(ctx, query, id).Scan(
		&transaction.ID, &transaction.OwnerID, &transaction.Kind, &transaction.Amount,
		&transaction.Category, &transaction.Description, &transaction.Date, &transaction.PaymentMethod,
		&transaction.CreatedAt, &transaction.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Transaction{}, model.ErrNotFound
		}
		return model.Transaction{}, fmt.Errorf("failed to get transaction by id: %w", err)
	}

	return transaction, nil
}

func (r *TransactionRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID, filter model.TransactionFilter) ([]model.Transaction, error) {
	query := `SELECT id, owner_id, kind, amount, category, description, date, payment_method, created_at, updated_at
			  FROM transactions WHERE owner_id = $1`
	args := []any{ownerID}

	if filter.Kind != "" {
		args = append(args, string(filter.Kind))
		query += fmt.Sprintf(" AND kind = $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []model.Transaction
	for rows.Next() {
		var transaction model.Transaction
		err := rows.Scan(
			&transaction.ID, &transaction.OwnerID, &transaction.Kind, &transaction.Amount,
			&transaction.Category, &transaction.Description, &transaction.Date, &transaction.PaymentMethod,
			&transaction.CreatedAt, &transaction.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}

func (r *TransactionRepository) Update(ctx context.Context, transaction model.Transaction) (model.Transaction, error) {
	query := `UPDATE transactions
			  SET kind = $2, amount = $3, category = $4, description = $5, date = $6, payment_method = $7, updated_at = $8
			  WHERE id = $1
			  RETURNING id, owner_id, kind, amount, category, description, date, payment_method, created_at, updated_at`

	var saved model.Transaction
	err := r.db.QueryRow(ctx, query,
		transaction.ID, string(transaction.Kind), transaction.Amount, transaction.Category,
		transaction.Description, transaction.Date, transaction.PaymentMethod, transaction.UpdatedAt,
	).Scan(
		&saved.ID, &saved.OwnerID, &saved.Kind, &saved.Amount,
		&saved.Category, &saved.Description, &saved.Date, &saved.PaymentMethod,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Transaction{}, model.ErrNotFound
		}
		return model.Transaction{}, fmt.Errorf("failed to update transaction: %w", err)
	}

	return saved, nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM transactions WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
