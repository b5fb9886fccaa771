package payment

import (
	"context"
	"emi-payments/internal/event"
	"emi-payments/internal/infrastructure/monitoring"
	"emi-payments/internal/pkg/apperrors"
	"errors"
	"log/slog"
	"os"
	"time"
)

const msgRequiredFields = "account_number and payment_amount required"

type PaymentService interface {
	RecordPayment(ctx context.Context, input RecordPaymentInput) (*Payment, error)
	ListPaymentsByAccount(ctx context.Context, accountNumber string) ([]*Payment, error)
}

var _ PaymentService = (*paymentService)(nil)

type paymentService struct {
	repo      Repository
	accounts  AccountLookup
	publisher event.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func NewPaymentService(repo Repository, accounts AccountLookup, publisher event.EventPublisher, logger *slog.Logger) PaymentService {
	if repo == nil {
		panic("payment repository cannot be nil")
	}
	if accounts == nil {
		panic("account lookup cannot be nil")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewPaymentService, using default stderr handler")
	}
	if publisher == nil {
		publisher = event.NewNoopPublisher(logger)
	}

	return &paymentService{
		repo:      repo,
		accounts:  accounts,
		publisher: publisher,
		logger:    logger.With(slog.String("component", "paymentService")),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func validateInput(input RecordPaymentInput) error {
	if input.AccountNumber == "" || input.Amount == nil {
		return apperrors.NewValidationError("", msgRequiredFields)
	}
	if !input.Amount.IsPositive() {
		return apperrors.NewValidationError("payment_amount", "payment_amount must be greater than zero")
	}
	return nil
}

func (s *paymentService) RecordPayment(ctx context.Context, input RecordPaymentInput) (*Payment, error) {
	logger := s.logger.With(slog.String("operation", "RecordPayment"), slog.String("accountNumber", input.AccountNumber))

	if err := validateInput(input); err != nil {
		monitoring.RecordPayment(monitoring.OutcomeValidation)
		logger.WarnContext(ctx, "Rejected record payment request", slog.Any("error", err))
		return nil, err
	}

	cust, err := s.accounts.FindByAccountNumber(ctx, input.AccountNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			monitoring.RecordPayment(monitoring.OutcomeNotFound)
			logger.WarnContext(ctx, "Account not found")
			return nil, apperrors.NewNotFoundError("Account")
		}
		monitoring.RecordPayment(monitoring.OutcomeStoreError)
		logger.ErrorContext(ctx, "Account lookup failed", slog.Any("error", err))
		return nil, apperrors.WrapDatabaseError(err, "failed to look up account")
	}

	p := &Payment{
		CustomerID:    cust.ID,
		AccountNumber: cust.AccountNumber,
		PaymentAmount: *input.Amount,
		PaymentDate:   s.now(),
		Status:        StatusSuccess,
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		monitoring.RecordPayment(monitoring.OutcomeStoreError)
		logger.ErrorContext(ctx, "Failed to insert payment", slog.Any("error", err))
		return nil, apperrors.WrapDatabaseError(err, "failed to record payment")
	}

	monitoring.RecordPayment(monitoring.OutcomeSuccess)
	logger.InfoContext(ctx, "Payment recorded",
		slog.Int64("paymentId", created.ID),
		slog.Int64("customerId", created.CustomerID),
		slog.String("amount", created.PaymentAmount.String()))

	s.publishRecorded(ctx, created)

	return created, nil
}

func (s *paymentService) publishRecorded(ctx context.Context, p *Payment) {
	evt := event.PaymentRecordedEvent{
		PaymentID:     p.ID,
		CustomerID:    p.CustomerID,
		AccountNumber: p.AccountNumber,
		Amount:        p.PaymentAmount,
		Status:        string(p.Status),
		PaymentDate:   p.PaymentDate,
		Timestamp:     s.now(),
	}
	if err := s.publisher.PublishPaymentRecorded(ctx, evt); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish payment recorded event",
			slog.Int64("paymentId", p.ID), slog.Any("error", err))
	}
}

func (s *paymentService) ListPaymentsByAccount(ctx context.Context, accountNumber string) ([]*Payment, error) {
	logger := s.logger.With(slog.String("operation", "ListPaymentsByAccount"), slog.String("accountNumber", accountNumber))

	payments, err := s.repo.FindByAccountNumber(ctx, accountNumber)
	if err != nil {
		logger.ErrorContext(ctx, "Repository error listing payments", slog.Any("error", err))
		return nil, apperrors.WrapDatabaseError(err, "failed to list payments")
	}

	logger.DebugContext(ctx, "Retrieved payments", slog.Int("count", len(payments)))
	return payments, nil
}
