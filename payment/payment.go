// Package payment creates checkout orders with the external payment provider.
package payment

import (
	"context"
	"errors"
	"fmt"

	"MediConnect/models"

	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
)

var ErrNotConfigured = errors.New("payment provider is not configured")

type Gateway interface {
	CreateOrder(ctx context.Context, amount int64, currency string) (*models.PaymentOrder, error)
}

// orderAPI is the part of the razorpay client the gateway uses.
type orderAPI interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type Razorpay struct {
	orders orderAPI
}

func NewRazorpay(keyID, keySecret string) *Razorpay {
	client := razorpay.NewClient(keyID, keySecret)
	return &Razorpay{orders: client.Order}
}

/*
* Amount arrives in major units and is sent in the smallest unit
* Receipt is a fresh uuid per order
 */
func (r *Razorpay) CreateOrder(ctx context.Context, amount int64, currency string) (*models.PaymentOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := r.orders.Create(map[string]interface{}{
		"amount":   amount * 100,
		"currency": currency,
		"receipt":  uuid.NewString(),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("create razorpay order: %w", err)
	}
	id, _ := resp["id"].(string)
	if id == "" {
		return nil, errors.New("razorpay order response has no id")
	}
	order := &models.PaymentOrder{OrderID: id, Currency: currency, Amount: amount * 100}
	if c, ok := resp["currency"].(string); ok && c != "" {
		order.Currency = c
	}
	if a, ok := resp["amount"].(float64); ok {
		order.Amount = int64(a)
	}
	return order, nil
}

// Disabled is wired when no provider credentials are configured.
type Disabled struct{}

func (Disabled) CreateOrder(context.Context, int64, string) (*models.PaymentOrder, error) {
	return nil, ErrNotConfigured
}
