package handler

import (
	"emi-payments/internal/api/handler/dto"
	"emi-payments/internal/domain/payment"
	"emi-payments/internal/pkg/apperrors"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

const (
	msgRecordPaymentFailed = "Failed to record payment"
	msgFetchPaymentsFailed = "Failed to fetch payments"
)

type PaymentHandler struct {
	service      payment.PaymentService
	exposeDetail bool
	logger       *slog.Logger
}

func NewPaymentHandler(s payment.PaymentService, exposeStoreErrors bool, l *slog.Logger) *PaymentHandler {
	if s == nil {
		panic("payment service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &PaymentHandler{
		service:      s,
		exposeDetail: exposeStoreErrors,
		logger:       l.With("component", "PaymentHandler"),
	}
}

// RecordPayment handles POST /payments
// @Summary Record an EMI payment
// @Description Looks up the account and inserts a SUCCESS payment dated now. Not idempotent.
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body dto.RecordPaymentRequest true "Payment to record"
// @Success 201 {object} dto.RecordPaymentResponse "Payment recorded"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid account_number / payment_amount"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /payments [post]
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received record payment request")

	var req dto.RecordPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		if errors.Is(err, io.EOF) {
			respondError(w, apperrors.NewValidationError("", "account_number and payment_amount required"), msgRecordPaymentFailed, h.exposeDetail)
			return
		}
		respondError(w, apperrors.NewValidationError("", "invalid JSON payload"), msgRecordPaymentFailed, h.exposeDetail)
		return
	}

	created, err := h.service.RecordPayment(r.Context(), req.ToInput())
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelWarn
		}
		h.logger.Log(r.Context(), level, "Service failed to record payment",
			slog.String("operation", "RecordPayment"), slog.Any("error", err))
		respondError(w, err, msgRecordPaymentFailed, h.exposeDetail)
		return
	}

	h.logger.InfoContext(r.Context(), "Payment recorded", slog.Int64("paymentId", created.ID))
	respondJSON(w, http.StatusCreated, dto.NewRecordPaymentResponse(created))
}

// ListPaymentsByAccount handles GET /payments/{accountNumber}
// @Summary List payments for an account
// @Description Returns payments for the account number, newest first. Unknown accounts yield an empty list.
// @Tags Payments
// @Produce json
// @Param accountNumber path string true "Loan account number"
// @Success 200 {array} dto.PaymentResponse "Payments, newest first"
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /payments/{accountNumber} [get]
func (h *PaymentHandler) ListPaymentsByAccount(w http.ResponseWriter, r *http.Request) {
	accountNumber := chi.URLParam(r, "accountNumber")
	// chi matches on RawPath when it is set, so the param is still escaped.
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(accountNumber); err == nil {
			accountNumber = unescaped
		}
	}

	payments, err := h.service.ListPaymentsByAccount(r.Context(), accountNumber)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list payments",
			slog.String("operation", "ListPaymentsByAccount"),
			slog.String("accountNumber", accountNumber),
			slog.Any("error", err))
		respondError(w, err, msgFetchPaymentsFailed, h.exposeDetail)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewPaymentListResponse(payments))
}
