package payments

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

type StripeCreator struct {
	client *paymentintent.Client
}

func NewStripeCreator(secretKey string) *StripeCreator {
	return &StripeCreator{
		client: &paymentintent.Client{
			B:   stripe.GetBackend(stripe.APIBackend),
			Key: secretKey,
		},
	}
}

func (s *StripeCreator) CreateIntent(ctx context.Context, amount int64, currency string, methods []string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice(methods),
	}
	params.Context = ctx

	pi, err := s.client.New(params)
	if err != nil {
		return "", err
	}

	return pi.ClientSecret, nil
}
