package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

// StatusSuccess is the only status this service produces.
const StatusSuccess Status = "SUCCESS"

type Payment struct {
	ID            int64           `json:"id"`
	CustomerID    int64           `json:"customer_id"`
	AccountNumber string          `json:"account_number"`
	PaymentAmount decimal.Decimal `json:"payment_amount"`
	PaymentDate   time.Time       `json:"payment_date"`
	Status        Status          `json:"status"`
}

// Summary aggregates payments recorded within a window.
type Summary struct {
	Count int64
	Total decimal.Decimal
}

// RecordPaymentInput carries the client request. A nil Amount means the
// field was missing or null.
type RecordPaymentInput struct {
	AccountNumber string
	Amount        *decimal.Decimal
}
