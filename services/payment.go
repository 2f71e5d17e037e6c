package services

import (
	"context"
	"errors"
	"strings"

	"MediConnect/models"
	"MediConnect/payment"
	"MediConnect/util"

	"github.com/rs/zerolog/log"
)

func (s *Services) CreatePaymentOrder(ctx context.Context, in models.PaymentOrderRequest) (*models.PaymentOrder, error) {
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if in.Amount <= 0 || currency == "" {
		return nil, util.Validation(util.AMOUNT_AND_CURRENCY_REQUIRED)
	}
	order, err := s.Payments.CreateOrder(ctx, in.Amount, currency)
	if err != nil {
		if !errors.Is(err, payment.ErrNotConfigured) {
			log.Error().Err(err).Msg("Error from CreateOrder")
		}
		return nil, util.Internal(err)
	}
	return order, nil
}
