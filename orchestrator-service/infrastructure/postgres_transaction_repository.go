package infrastructure

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/draftea/vehicle-sales-system/orchestrator-service/domain"
	"github.com/draftea/vehicle-sales-system/shared/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// PostgresTransactionRepository implements TransactionRepository using PostgreSQL
type PostgresTransactionRepository struct {
	db *sqlx.DB
}

// NewPostgresTransactionRepository creates a new PostgresTransactionRepository
func NewPostgresTransactionRepository(db *sqlx.DB) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{db: db}
}

// postgresTransaction represents a saga transaction in the database
type postgresTransaction struct {
	ID             string     `db:"id"`
	CustomerID     string     `db:"customer_id"`
	VehicleID      string     `db:"vehicle_id"`
	Type           string     `db:"type"`
	Status         string     `db:"status"`
	CompletedSteps []byte     `db:"completed_steps"`
	Context        []byte     `db:"context"`
	FailureReason  *string    `db:"failure_reason"`
	FailedStep     *string    `db:"failed_step"`
	ClaimedBy      *string    `db:"claimed_by"`
	LeaseExpiresAt *time.Time `db:"lease_expires_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
	Version        int        `db:"version"`
}

const selectColumns = `
	id, customer_id, vehicle_id, type, status, completed_steps, context,
	failure_reason, failed_step, claimed_by, lease_expires_at,
	created_at, updated_at, deleted_at, version`

// Save inserts a new transaction
func (r *PostgresTransactionRepository) Save(ctx context.Context, transaction *domain.Transaction) error {
	query := `
		INSERT INTO saga_transactions (
			id, customer_id, vehicle_id, type, status, completed_steps,
			context, failure_reason, failed_step, created_at, updated_at, version
		) VALUES (
			:id, :customer_id, :vehicle_id, :type, :status, :completed_steps,
			:context, :failure_reason, :failed_step, :created_at, :updated_at, :version
		)`

	pgTransaction, err := r.toPostgres(transaction)
	if err != nil {
		return err
	}

	if _, err := r.db.NamedExecContext(ctx, query, pgTransaction); err != nil {
		return errors.Wrap(err, "failed to insert transaction")
	}

	transaction.MarkPersisted()
	return nil
}

// Update persists a mutated transaction with optimistic locking
func (r *PostgresTransactionRepository) Update(ctx context.Context, transaction *domain.Transaction) error {
	query := `
		UPDATE saga_transactions
		SET status = :status, completed_steps = :completed_steps, context = :context,
		    failure_reason = :failure_reason, failed_step = :failed_step,
		    updated_at = :updated_at, version = :version
		WHERE id = :id AND version = :old_version AND deleted_at IS NULL`

	completedSteps, err := json.Marshal(transaction.CompletedSteps)
	if err != nil {
		return errors.Wrap(err, "failed to marshal completed steps")
	}

	contextData, err := json.Marshal(transaction.Context)
	if err != nil {
		return errors.Wrap(err, "failed to marshal context")
	}

	res, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":              transaction.ID.String(),
		"status":          string(transaction.Status),
		"completed_steps": completedSteps,
		"context":         contextData,
		"failure_reason":  transaction.FailureReason,
		"failed_step":     transaction.FailedStep,
		"updated_at":      transaction.Timestamps.UpdatedAt,
		"version":         transaction.Version.Value,
		"old_version":     transaction.PersistedVersion(), // Optimistic locking
	})
	if err != nil {
		return errors.Wrap(err, "failed to update transaction")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read update result")
	}
	if affected == 0 {
		return errors.Errorf("concurrent update detected for transaction %s", transaction.ID)
	}

	transaction.MarkPersisted()
	return nil
}

// FindByID finds a transaction by ID, returning nil when absent
func (r *PostgresTransactionRepository) FindByID(ctx context.Context, id models.ID) (*domain.Transaction, error) {
	query := `SELECT ` + selectColumns + `
		FROM saga_transactions
		WHERE id = $1 AND deleted_at IS NULL`

	var pgTransaction postgresTransaction
	err := r.db.GetContext(ctx, &pgTransaction, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Transaction not found
		}
		return nil, errors.Wrap(err, "failed to find transaction")
	}

	return r.toDomain(&pgTransaction)
}

// FindByCustomerID finds all transactions started by a customer
func (r *PostgresTransactionRepository) FindByCustomerID(ctx context.Context, customerID models.ID) ([]*domain.Transaction, error) {
	query := `SELECT ` + selectColumns + `
		FROM saga_transactions
		WHERE customer_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC`

	return r.selectTransactions(ctx, query, customerID.String())
}

// FindByStatus finds all transactions in a given status
func (r *PostgresTransactionRepository) FindByStatus(ctx context.Context, status domain.TransactionStatus) ([]*domain.Transaction, error) {
	query := `SELECT ` + selectColumns + `
		FROM saga_transactions
		WHERE status = $1 AND deleted_at IS NULL
		ORDER BY created_at ASC`

	return r.selectTransactions(ctx, query, string(status))
}

// FindPendingTransactions finds every non-terminal transaction, oldest first
func (r *PostgresTransactionRepository) FindPendingTransactions(ctx context.Context) ([]*domain.Transaction, error) {
	query := `SELECT ` + selectColumns + `
		FROM saga_transactions
		WHERE status IN ($1, $2, $3) AND deleted_at IS NULL
		ORDER BY created_at ASC`

	return r.selectTransactions(ctx, query,
		string(domain.TransactionStatusStarted),
		string(domain.TransactionStatusInProgress),
		string(domain.TransactionStatusCompensating),
	)
}

// Delete soft-deletes a transaction
func (r *PostgresTransactionRepository) Delete(ctx context.Context, id models.ID) error {
	query := `UPDATE saga_transactions SET deleted_at = $2 WHERE id = $1 AND deleted_at IS NULL`

	if _, err := r.db.ExecContext(ctx, query, id.String(), time.Now()); err != nil {
		return errors.Wrap(err, "failed to delete transaction")
	}

	return nil
}

// Claim takes a time-bound lease through a conditional update: it succeeds
// only when no other owner holds a live lease on the transaction.
func (r *PostgresTransactionRepository) Claim(ctx context.Context, id models.ID, owner string, lease time.Duration) (bool, error) {
	query := `
		UPDATE saga_transactions
		SET claimed_by = $2, lease_expires_at = $3
		WHERE id = $1 AND deleted_at IS NULL
		  AND (claimed_by IS NULL OR claimed_by = $2 OR lease_expires_at < NOW())`

	res, err := r.db.ExecContext(ctx, query, id.String(), owner, time.Now().Add(lease))
	if err != nil {
		return false, errors.Wrap(err, "failed to claim transaction")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "failed to read claim result")
	}

	return affected == 1, nil
}

// Release drops the lease held by owner. Leases held by someone else are
// left untouched.
func (r *PostgresTransactionRepository) Release(ctx context.Context, id models.ID, owner string) error {
	query := `
		UPDATE saga_transactions
		SET claimed_by = NULL, lease_expires_at = NULL
		WHERE id = $1 AND claimed_by = $2`

	if _, err := r.db.ExecContext(ctx, query, id.String(), owner); err != nil {
		return errors.Wrap(err, "failed to release transaction")
	}

	return nil
}

func (r *PostgresTransactionRepository) selectTransactions(ctx context.Context, query string, args ...interface{}) ([]*domain.Transaction, error) {
	var pgTransactions []postgresTransaction
	if err := r.db.SelectContext(ctx, &pgTransactions, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to select transactions")
	}

	transactions := make([]*domain.Transaction, len(pgTransactions))
	for i := range pgTransactions {
		transaction, err := r.toDomain(&pgTransactions[i])
		if err != nil {
			return nil, err
		}
		transactions[i] = transaction
	}

	return transactions, nil
}

// toPostgres converts a domain transaction to its database shape
func (r *PostgresTransactionRepository) toPostgres(transaction *domain.Transaction) (*postgresTransaction, error) {
	completedSteps, err := json.Marshal(transaction.CompletedSteps)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal completed steps")
	}

	contextData, err := json.Marshal(transaction.Context)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal context")
	}

	return &postgresTransaction{
		ID:             transaction.ID.String(),
		CustomerID:     transaction.CustomerID.String(),
		VehicleID:      transaction.VehicleID.String(),
		Type:           string(transaction.Type),
		Status:         string(transaction.Status),
		CompletedSteps: completedSteps,
		Context:        contextData,
		FailureReason:  transaction.FailureReason,
		FailedStep:     transaction.FailedStep,
		ClaimedBy:      transaction.ClaimedBy,
		LeaseExpiresAt: transaction.LeaseExpiresAt,
		CreatedAt:      transaction.Timestamps.CreatedAt,
		UpdatedAt:      transaction.Timestamps.UpdatedAt,
		DeletedAt:      transaction.Timestamps.DeletedAt,
		Version:        transaction.Version.Value,
	}, nil
}

// toDomain rebuilds a domain transaction through its explicit restore
// constructor; no field injection.
func (r *PostgresTransactionRepository) toDomain(pgTransaction *postgresTransaction) (*domain.Transaction, error) {
	var completedSteps []string
	if err := json.Unmarshal(pgTransaction.CompletedSteps, &completedSteps); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal completed steps")
	}

	var contextData map[string]interface{}
	if err := json.Unmarshal(pgTransaction.Context, &contextData); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal context")
	}

	return domain.RestoreTransaction(
		models.ID(pgTransaction.ID),
		models.ID(pgTransaction.CustomerID),
		models.ID(pgTransaction.VehicleID),
		domain.TransactionType(pgTransaction.Type),
		domain.TransactionStatus(pgTransaction.Status),
		completedSteps,
		contextData,
		pgTransaction.FailureReason,
		pgTransaction.FailedStep,
		pgTransaction.ClaimedBy,
		pgTransaction.LeaseExpiresAt,
		models.Timestamps{
			CreatedAt: pgTransaction.CreatedAt,
			UpdatedAt: pgTransaction.UpdatedAt,
			DeletedAt: pgTransaction.DeletedAt,
		},
		models.Version{Value: pgTransaction.Version},
	), nil
}
