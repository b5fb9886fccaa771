package dto

import (
	"emi-payments/internal/domain/customer"
	"encoding/json"
)

const dateLayout = "2006-01-02"

type CustomerResponse struct {
	ID            int64       `json:"id" example:"1"`
	Name          string      `json:"name" example:"Asha Rao"`
	AccountNumber string      `json:"account_number" example:"ACC1001"`
	EMIDue        json.Number `json:"emi_due" swaggertype:"number" example:"2500.00"`
	InterestRate  json.Number `json:"interest_rate" swaggertype:"number" example:"10.5"`
	IssueDate     string      `json:"issue_date" example:"2024-01-15"`
	TenureMonths  int         `json:"tenure_months" example:"24"`
}

func NewCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:            c.ID,
		Name:          c.Name,
		AccountNumber: c.AccountNumber,
		EMIDue:        json.Number(c.EMIDue.StringFixed(2)),
		InterestRate:  json.Number(c.InterestRate.String()),
		IssueDate:     c.IssueDate.Format(dateLayout),
		TenureMonths:  c.TenureMonths,
	}
}

func NewCustomerListResponse(customers []*customer.Customer) []CustomerResponse {
	resp := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		resp = append(resp, NewCustomerResponse(c))
	}
	return resp
}
