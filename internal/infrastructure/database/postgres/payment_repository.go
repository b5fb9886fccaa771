package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"emi-payments/internal/domain/payment"
	"emi-payments/internal/infrastructure/monitoring"
	"emi-payments/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const paymentColumns = `id, customer_id, account_number, payment_amount, payment_date, status`

type PaymentRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ payment.Repository = (*PaymentRepository)(nil)

func NewPaymentRepository(db DBPool, logger *slog.Logger) *PaymentRepository {
	if db == nil {
		panic("DBPool cannot be nil for PaymentRepository")
	}
	return &PaymentRepository{db: db, logger: logger.With("component", "PaymentRepository")}
}

func scanPayment(row pgx.Row) (*payment.Payment, error) {
	var p payment.Payment
	var status string
	err := row.Scan(
		&p.ID,
		&p.CustomerID,
		&p.AccountNumber,
		&p.PaymentAmount,
		&p.PaymentDate,
		&status,
	)
	if err != nil {
		return nil, err
	}
	p.Status = payment.Status(status)
	return &p, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) (created *payment.Payment, err error) {
	startTime := time.Now()
	defer func() {
		monitoring.RecordDBQuery("CreatePayment", queryStatus(err), time.Since(startTime))
	}()

	if p == nil {
		return nil, fmt.Errorf("%w: payment cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to insert payment",
		slog.Int64("customerId", p.CustomerID),
		slog.String("accountNumber", p.AccountNumber))

	query := `
        INSERT INTO payments (customer_id, account_number, payment_amount, payment_date, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + paymentColumns

	created, err = scanPayment(r.db.QueryRow(ctx, query,
		p.CustomerID,
		p.AccountNumber,
		p.PaymentAmount,
		p.PaymentDate,
		string(p.Status),
	))
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert payment", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to insert payment: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Payment inserted successfully", slog.Int64("paymentId", created.ID))
	return created, nil
}

func (r *PaymentRepository) FindByAccountNumber(ctx context.Context, accountNumber string) (payments []*payment.Payment, err error) {
	startTime := time.Now()
	defer func() {
		monitoring.RecordDBQuery("FindPaymentsByAccountNumber", queryStatus(err), time.Since(startTime))
	}()

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE account_number = $1 ORDER BY payment_date DESC, id DESC`

	rows, err := r.db.Query(ctx, query, accountNumber)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query payments", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query payments: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	payments = make([]*payment.Payment, 0)
	for rows.Next() {
		p, scanErr := scanPayment(rows)
		if scanErr != nil {
			r.logger.ErrorContext(ctx, "Failed to scan payment row", slog.Any("error", scanErr))
			err = fmt.Errorf("%w: failed to scan payment row: %w", apperrors.ErrDatabase, scanErr)
			return nil, err
		}
		payments = append(payments, p)
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating payment rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating payment rows: %w", apperrors.ErrDatabase, err)
	}

	return payments, nil
}

func (r *PaymentRepository) SummarizeSince(ctx context.Context, since time.Time) (summary payment.Summary, err error) {
	startTime := time.Now()
	defer func() {
		monitoring.RecordDBQuery("SummarizePayments", queryStatus(err), time.Since(startTime))
	}()

	query := `SELECT COUNT(*), COALESCE(SUM(payment_amount), 0) FROM payments WHERE payment_date >= $1`

	var total decimal.Decimal
	if err = r.db.QueryRow(ctx, query, since).Scan(&summary.Count, &total); err != nil {
		r.logger.ErrorContext(ctx, "Failed to summarize payments", slog.Any("error", err))
		return payment.Summary{}, fmt.Errorf("%w: failed to summarize payments: %w", apperrors.ErrDatabase, err)
	}
	summary.Total = total

	return summary, nil
}
