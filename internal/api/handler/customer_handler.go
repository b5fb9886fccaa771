package handler

import (
	"emi-payments/internal/api/handler/dto"
	"emi-payments/internal/domain/customer"
	"log/slog"
	"net/http"
)

const msgFetchCustomersFailed = "Failed to fetch customers"

type CustomerHandler struct {
	service      customer.CustomerService
	exposeDetail bool
	logger       *slog.Logger
}

func NewCustomerHandler(s customer.CustomerService, exposeStoreErrors bool, l *slog.Logger) *CustomerHandler {
	if s == nil {
		panic("customer service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CustomerHandler{
		service:      s,
		exposeDetail: exposeStoreErrors,
		logger:       l.With("component", "CustomerHandler"),
	}
}

// ListCustomers handles GET /customers
// @Summary List customers
// @Description Returns every loan account ordered by id ascending.
// @Tags Customers
// @Produce json
// @Success 200 {array} dto.CustomerResponse "List of customers"
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received list customers request")

	customers, err := h.service.ListCustomers(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list customers",
			slog.String("operation", "ListCustomers"), slog.Any("error", err))
		respondError(w, err, msgFetchCustomersFailed, h.exposeDetail)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCustomerListResponse(customers))
}
