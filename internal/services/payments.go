package services

import (
	"context"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// PaymentService creates provider-side payment intents. Handlers depend on
// this interface so tests can swap in a fake.
type PaymentService interface {
	// CreateIntent creates an intent for amount minor units and returns the
	// client secret the browser needs to complete the charge.
	CreateIntent(ctx context.Context, amount int64) (string, error)
}

// StripeService is the real PaymentService backed by the Stripe API.
type StripeService struct {
	api *client.API
}

func NewStripeService(secretKey string) *StripeService {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeService{api: api}
}

// CreateIntent charges in USD, card only, matching the site's checkout.
func (s *StripeService) CreateIntent(ctx context.Context, amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
