package handler_test

import (
	"context"
	"emi-payments/internal/api/handler"
	"emi-payments/internal/api/handler/dto"
	"emi-payments/internal/domain/customer"
	"emi-payments/internal/domain/payment"
	"emi-payments/internal/event"
	"emi-payments/internal/pkg/apperrors"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var customerX = &customer.Customer{
	ID:            1,
	Name:          "Asha Rao",
	AccountNumber: "ACC1001",
	EMIDue:        decimal.RequireFromString("2500"),
	InterestRate:  decimal.RequireFromString("10.5"),
	IssueDate:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	TenureMonths:  24,
}

type paymentFixture struct {
	customers *MockCustomerRepository
	payments  *MockPaymentRepository
	handler   *handler.PaymentHandler
}

func newPaymentFixture(expose bool) paymentFixture {
	f := paymentFixture{
		customers: new(MockCustomerRepository),
		payments:  new(MockPaymentRepository),
	}
	svc := payment.NewPaymentService(f.payments, f.customers, event.NewNoopPublisher(testLogger), testLogger)
	f.handler = handler.NewPaymentHandler(svc, expose, testLogger)
	return f
}

func storeEcho(nextID *int64) func(context.Context, *payment.Payment) *payment.Payment {
	return func(_ context.Context, p *payment.Payment) *payment.Payment {
		*nextID++
		stored := *p
		stored.ID = *nextID
		return &stored
	}
}

func postPayment(h *handler.PaymentHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.RecordPayment(rr, req)
	return rr
}

func getPayments(h *handler.PaymentHandler, accountNumber string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/payments/"+accountNumber, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("accountNumber", accountNumber)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rr := httptest.NewRecorder()
	h.ListPaymentsByAccount(rr, req)
	return rr
}

func TestNewPaymentHandlerPanics(t *testing.T) {
	assert.Panics(t, func() { handler.NewPaymentHandler(nil, false, testLogger) })
}

func TestPaymentHandler_RecordPayment(t *testing.T) {
	t.Run("Valid payment is recorded", func(t *testing.T) {
		f := newPaymentFixture(false)
		nextID := int64(0)

		f.customers.On("FindByAccountNumber", mock.Anything, "ACC1001").Return(customerX, nil).Once()
		f.payments.On("Create", mock.Anything, mock.AnythingOfType("*payment.Payment")).Return(storeEcho(&nextID), nil).Once()

		before := time.Now().UTC()
		rr := postPayment(f.handler, `{"account_number":"ACC1001","payment_amount":2500}`)

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		resp := decodeBody[dto.RecordPaymentResponse](t, rr)
		assert.Equal(t, "Payment recorded", resp.Message)
		assert.Equal(t, int64(1), resp.Payment.ID)
		assert.Equal(t, customerX.ID, resp.Payment.CustomerID)
		assert.Equal(t, "ACC1001", resp.Payment.AccountNumber)
		assert.Equal(t, "2500.00", resp.Payment.PaymentAmount.String())
		assert.Equal(t, "SUCCESS", resp.Payment.Status)

		paidAt, err := time.Parse(time.RFC3339, resp.Payment.PaymentDate)
		require.NoError(t, err)
		assert.False(t, paidAt.Before(before.Truncate(time.Second)))

		f.customers.AssertExpectations(t)
		f.payments.AssertExpectations(t)
	})

	t.Run("Unknown account returns 404 and inserts nothing", func(t *testing.T) {
		f := newPaymentFixture(false)

		f.customers.On("FindByAccountNumber", mock.Anything, "NOPE").Return(nil, apperrors.ErrNotFound).Once()

		rr := postPayment(f.handler, `{"account_number":"NOPE","payment_amount":100}`)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Account not found"}`, rr.Body.String())
		f.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Missing amount returns 400 without store access", func(t *testing.T) {
		f := newPaymentFixture(false)

		rr := postPayment(f.handler, `{"account_number":"ACC1001"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"account_number and payment_amount required"}`, rr.Body.String())
		f.customers.AssertNotCalled(t, "FindByAccountNumber", mock.Anything, mock.Anything)
		f.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Null amount and empty account return 400", func(t *testing.T) {
		f := newPaymentFixture(false)

		for _, body := range []string{
			`{"account_number":"ACC1001","payment_amount":null}`,
			`{"account_number":"","payment_amount":100}`,
			`{"payment_amount":100}`,
			``,
		} {
			rr := postPayment(f.handler, body)
			assert.Equal(t, http.StatusBadRequest, rr.Code, "body %q", body)
			assert.JSONEq(t, `{"error":"account_number and payment_amount required"}`, rr.Body.String())
		}
		f.customers.AssertNotCalled(t, "FindByAccountNumber", mock.Anything, mock.Anything)
	})

	t.Run("Non-positive amount returns 400", func(t *testing.T) {
		f := newPaymentFixture(false)

		rr := postPayment(f.handler, `{"account_number":"ACC1001","payment_amount":-10}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"payment_amount must be greater than zero","field":"payment_amount"}`, rr.Body.String())
	})

	t.Run("Malformed JSON returns 400", func(t *testing.T) {
		f := newPaymentFixture(false)

		rr := postPayment(f.handler, `{"account_number":"ACC1001","payment_amount":"abc"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"invalid JSON payload"}`, rr.Body.String())
	})

	t.Run("Insert failure returns 500", func(t *testing.T) {
		f := newPaymentFixture(false)

		f.customers.On("FindByAccountNumber", mock.Anything, "ACC1001").Return(customerX, nil).Once()
		f.payments.On("Create", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: failed to insert payment: %w", apperrors.ErrDatabase, errors.New("disk full"))).Once()

		rr := postPayment(f.handler, `{"account_number":"ACC1001","payment_amount":10}`)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Failed to record payment"}`, rr.Body.String())
	})

	t.Run("Insert failure detail when exposure is enabled", func(t *testing.T) {
		f := newPaymentFixture(true)

		f.customers.On("FindByAccountNumber", mock.Anything, "ACC1001").Return(customerX, nil).Once()
		f.payments.On("Create", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: failed to insert payment: %w", apperrors.ErrDatabase, errors.New("disk full"))).Once()

		rr := postPayment(f.handler, `{"account_number":"ACC1001","payment_amount":10}`)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"disk full"}`, rr.Body.String())
	})

	t.Run("Identical requests create distinct payments", func(t *testing.T) {
		f := newPaymentFixture(false)
		nextID := int64(40)

		f.customers.On("FindByAccountNumber", mock.Anything, "ACC1001").Return(customerX, nil).Twice()
		f.payments.On("Create", mock.Anything, mock.Anything).Return(storeEcho(&nextID), nil).Twice()

		first := decodeBody[dto.RecordPaymentResponse](t, postPayment(f.handler, `{"account_number":"ACC1001","payment_amount":500}`))
		second := decodeBody[dto.RecordPaymentResponse](t, postPayment(f.handler, `{"account_number":"ACC1001","payment_amount":500}`))

		assert.Equal(t, int64(41), first.Payment.ID)
		assert.Equal(t, int64(42), second.Payment.ID)
	})
}

func TestPaymentHandler_ListPaymentsByAccount(t *testing.T) {
	t.Run("Newest first", func(t *testing.T) {
		f := newPaymentFixture(false)
		newest := time.Date(2025, 5, 10, 9, 15, 0, 0, time.UTC)

		f.payments.On("FindByAccountNumber", mock.Anything, "ACC1001").Return([]*payment.Payment{
			{ID: 2, CustomerID: 1, AccountNumber: "ACC1001", PaymentAmount: decimal.NewFromInt(2500), PaymentDate: newest, Status: payment.StatusSuccess},
			{ID: 1, CustomerID: 1, AccountNumber: "ACC1001", PaymentAmount: decimal.NewFromInt(2500), PaymentDate: newest.Add(-24 * time.Hour), Status: payment.StatusSuccess},
		}, nil).Once()

		rr := getPayments(f.handler, "ACC1001")

		require.Equal(t, http.StatusOK, rr.Code)
		resp := decodeBody[[]dto.PaymentResponse](t, rr)
		require.Len(t, resp, 2)
		assert.Equal(t, int64(2), resp[0].ID)
		assert.Equal(t, "2025-05-10T09:15:00Z", resp[0].PaymentDate)
		assert.Equal(t, int64(1), resp[1].ID)
		f.customers.AssertNotCalled(t, "FindByAccountNumber", mock.Anything, mock.Anything)
	})

	t.Run("Unknown account returns empty array", func(t *testing.T) {
		f := newPaymentFixture(false)

		f.payments.On("FindByAccountNumber", mock.Anything, "ZZZ").Return([]*payment.Payment{}, nil).Once()

		rr := getPayments(f.handler, "ZZZ")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]", rr.Body.String())
	})

	t.Run("Encoded slash in path is decoded once", func(t *testing.T) {
		f := newPaymentFixture(false)

		f.payments.On("FindByAccountNumber", mock.Anything, "ACC/1001").Return([]*payment.Payment{}, nil).Once()

		rr := getPayments(f.handler, "ACC%2F1001")

		assert.Equal(t, http.StatusOK, rr.Code)
		f.payments.AssertExpectations(t)
	})

	t.Run("Store failure returns 500", func(t *testing.T) {
		f := newPaymentFixture(false)

		f.payments.On("FindByAccountNumber", mock.Anything, "ACC1001").Return(nil, errors.New("statement timeout")).Once()

		rr := getPayments(f.handler, "ACC1001")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Failed to fetch payments"}`, rr.Body.String())
	})
}
