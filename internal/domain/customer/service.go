package customer

import (
	"context"
	"emi-payments/internal/infrastructure/monitoring"
	"emi-payments/internal/pkg/apperrors"
	"log/slog"
	"os"
)

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]*Customer, error)
}

var _ CustomerService = (*customerService)(nil)

type customerService struct {
	repo   Repository
	cache  Cache
	logger *slog.Logger
}

// NewCustomerService builds the read service. cache may be nil, in which case
// every call goes to the repository.
func NewCustomerService(repo Repository, cache Cache, logger *slog.Logger) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerService, using default stderr handler")
	}

	return &customerService{
		repo:   repo,
		cache:  cache,
		logger: logger.With(slog.String("component", "customerService")),
	}
}

func (s *customerService) ListCustomers(ctx context.Context) ([]*Customer, error) {
	logger := s.logger.With(slog.String("operation", "ListCustomers"))

	if s.cache != nil {
		cached, found, err := s.cache.GetCustomers(ctx)
		switch {
		case err != nil:
			monitoring.RecordCacheLookup("error")
			logger.WarnContext(ctx, "Customer cache lookup failed, falling back to store", slog.Any("error", err))
		case found:
			monitoring.RecordCacheLookup("hit")
			logger.DebugContext(ctx, "Serving customers from cache", slog.Int("count", len(cached)))
			return cached, nil
		default:
			monitoring.RecordCacheLookup("miss")
		}
	}

	logger.DebugContext(ctx, "Calling repository FindAll")
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Repository error listing customers", slog.Any("error", err))
		return nil, apperrors.WrapDatabaseError(err, "failed to list customers")
	}

	if s.cache != nil {
		if err := s.cache.SetCustomers(ctx, customers); err != nil {
			logger.WarnContext(ctx, "Failed to populate customer cache", slog.Any("error", err))
		}
	}

	logger.InfoContext(ctx, "Successfully retrieved customers", slog.Int("count", len(customers)))
	return customers, nil
}
