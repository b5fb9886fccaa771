package dto

import (
	"emi-payments/internal/domain/payment"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

const MsgPaymentRecorded = "Payment recorded"

// RecordPaymentRequest leaves presence checks to the service: a missing or
// null payment_amount decodes to nil.
type RecordPaymentRequest struct {
	AccountNumber string           `json:"account_number" example:"ACC1001"`
	PaymentAmount *decimal.Decimal `json:"payment_amount" swaggertype:"number" example:"2500"`
}

func (r RecordPaymentRequest) ToInput() payment.RecordPaymentInput {
	return payment.RecordPaymentInput{
		AccountNumber: r.AccountNumber,
		Amount:        r.PaymentAmount,
	}
}

type PaymentResponse struct {
	ID            int64       `json:"id" example:"101"`
	CustomerID    int64       `json:"customer_id" example:"1"`
	AccountNumber string      `json:"account_number" example:"ACC1001"`
	PaymentAmount json.Number `json:"payment_amount" swaggertype:"number" example:"2500.00"`
	PaymentDate   string      `json:"payment_date" example:"2025-05-10T09:15:00Z"`
	Status        string      `json:"status" example:"SUCCESS"`
}

func NewPaymentResponse(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		CustomerID:    p.CustomerID,
		AccountNumber: p.AccountNumber,
		PaymentAmount: json.Number(p.PaymentAmount.StringFixed(2)),
		PaymentDate:   p.PaymentDate.UTC().Format(time.RFC3339),
		Status:        string(p.Status),
	}
}

func NewPaymentListResponse(payments []*payment.Payment) []PaymentResponse {
	resp := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, NewPaymentResponse(p))
	}
	return resp
}

type RecordPaymentResponse struct {
	Message string          `json:"message" example:"Payment recorded"`
	Payment PaymentResponse `json:"payment"`
}

func NewRecordPaymentResponse(p *payment.Payment) RecordPaymentResponse {
	return RecordPaymentResponse{
		Message: MsgPaymentRecorded,
		Payment: NewPaymentResponse(p),
	}
}
