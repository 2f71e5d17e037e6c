package models

type PaymentOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type PaymentOrder struct {
	OrderID  string `json:"order_id"`
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}
