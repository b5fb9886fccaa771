package payment

import (
	"context"
	"emi-payments/internal/domain/customer"
	"time"
)

type Repository interface {
	// Create inserts p and returns the stored row, including its assigned id.
	Create(ctx context.Context, p *Payment) (*Payment, error)

	// FindByAccountNumber returns payments newest first. No rows yields an empty slice.
	FindByAccountNumber(ctx context.Context, accountNumber string) ([]*Payment, error)

	SummarizeSince(ctx context.Context, since time.Time) (Summary, error)
}

// AccountLookup resolves an account number to its owning customer.
type AccountLookup interface {
	FindByAccountNumber(ctx context.Context, accountNumber string) (*customer.Customer, error)
}
