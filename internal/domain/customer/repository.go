package customer

import (
	"context"
)

type Repository interface {
	// FindAll returns every customer ordered by id ascending.
	FindAll(ctx context.Context) ([]*Customer, error)

	// FindByAccountNumber returns apperrors.ErrNotFound when no customer holds the account.
	FindByAccountNumber(ctx context.Context, accountNumber string) (*Customer, error)
}

// Cache stores the ordered customer list. A miss is reported with found == false.
type Cache interface {
	GetCustomers(ctx context.Context) (customers []*Customer, found bool, err error)
	SetCustomers(ctx context.Context, customers []*Customer) error
}
