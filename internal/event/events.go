package event

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentRecordedEvent struct {
	PaymentID     int64           `json:"paymentId"`
	CustomerID    int64           `json:"customerId"`
	AccountNumber string          `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	PaymentDate   time.Time       `json:"paymentDate"`
	Timestamp     time.Time       `json:"timestamp"`
}
