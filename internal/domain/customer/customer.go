package customer

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a loan account provisioned outside this service. It is only read here.
type Customer struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	AccountNumber string          `json:"account_number"`
	EMIDue        decimal.Decimal `json:"emi_due"`
	InterestRate  decimal.Decimal `json:"interest_rate"`
	IssueDate     time.Time       `json:"issue_date"`
	TenureMonths  int             `json:"tenure_months"`
}
