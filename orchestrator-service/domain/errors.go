package domain

import "github.com/pkg/errors"

// Business errors surfaced to callers. Handlers map these to HTTP status
// codes; everything else is treated as an internal failure.
var (
	ErrTransactionNotFound         = errors.New("transaction not found")
	ErrTransactionNotRetryable     = errors.New("transaction is not in failed status")
	ErrTransactionNotCompensatable = errors.New("transaction cannot be compensated from its current status")
	ErrTransactionAccessDenied     = errors.New("transaction does not belong to customer")
)
