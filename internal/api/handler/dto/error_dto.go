package dto

type ErrorResponse struct {
	Error string `json:"error" example:"Account not found"`
	Field string `json:"field,omitempty" example:"payment_amount"`
}
