package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"emi-payments/internal/domain/customer"
	"emi-payments/internal/infrastructure/monitoring"
	"emi-payments/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

const customerColumns = `id, name, account_number, emi_due, interest_rate, issue_date, tenure_months`

type CustomerRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ customer.Repository = (*CustomerRepository)(nil)

func NewCustomerRepository(db DBPool, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("DBPool cannot be nil for CustomerRepository")
	}
	if logger == nil {

		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerRepository, using default stderr handler")
	}
	return &CustomerRepository{
		db:     db,
		logger: logger.With("component", "CustomerRepository"),
	}
}

func scanCustomer(row pgx.Row) (*customer.Customer, error) {
	var cust customer.Customer
	err := row.Scan(
		&cust.ID,
		&cust.Name,
		&cust.AccountNumber,
		&cust.EMIDue,
		&cust.InterestRate,
		&cust.IssueDate,
		&cust.TenureMonths,
	)
	if err != nil {
		return nil, err
	}
	return &cust, nil
}

func (r *CustomerRepository) FindAll(ctx context.Context) (customers []*customer.Customer, err error) {
	startTime := time.Now()
	defer func() {
		monitoring.RecordDBQuery("FindAllCustomers", queryStatus(err), time.Since(startTime))
	}()

	r.logger.DebugContext(ctx, "Attempting to find all customers")

	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query customers", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query customers: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	customers = make([]*customer.Customer, 0)
	for rows.Next() {
		cust, scanErr := scanCustomer(rows)
		if scanErr != nil {
			r.logger.ErrorContext(ctx, "Failed to scan customer row", slog.Any("error", scanErr))
			err = fmt.Errorf("%w: failed to scan customer row: %w", apperrors.ErrDatabase, scanErr)
			return nil, err
		}
		customers = append(customers, cust)
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating customer rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating customer rows: %w", apperrors.ErrDatabase, err)
	}

	r.logger.DebugContext(ctx, "Finished finding customers", slog.Int("count", len(customers)))
	return customers, nil
}

func (r *CustomerRepository) FindByAccountNumber(ctx context.Context, accountNumber string) (cust *customer.Customer, err error) {
	startTime := time.Now()
	defer func() {
		status := queryStatus(err)
		if errors.Is(err, apperrors.ErrNotFound) {
			status = "not_found"
		}
		monitoring.RecordDBQuery("FindCustomerByAccountNumber", status, time.Since(startTime))
	}()

	r.logger.DebugContext(ctx, "Attempting to find customer by account number", slog.String("accountNumber", accountNumber))

	query := `SELECT ` + customerColumns + ` FROM customers WHERE account_number = $1 LIMIT 1`

	cust, err = scanCustomer(r.db.QueryRow(ctx, query, accountNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Customer not found for account number", slog.String("accountNumber", accountNumber))
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan customer by account number", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get customer by account number: %w", apperrors.ErrDatabase, err)
	}

	return cust, nil
}
