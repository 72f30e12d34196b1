// Package checkout creates payment intents for resolved purchase outcomes.
package checkout

import (
	"fmt"
	"math"
	"strings"

	"pagecraft/services/content"
	"pagecraft/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// Intent is the client-facing result of starting a purchase.
type Intent struct {
	ID           string  `json:"id"`
	ClientSecret string  `json:"clientSecret"`
	Amount       int64   `json:"amount"`
	Currency     string  `json:"currency"`
	ProductRef   string  `json:"productRef"`
	Discount     float64 `json:"discount,omitempty"`
}

// DefaultCheckoutService turns purchase outcomes into Stripe payment
// intents. It performs no retries; failures propagate to the caller.
type DefaultCheckoutService struct{}

// CreateIntent starts a payment for a purchase outcome produced by action
// resolution. Outcomes of any other kind are rejected.
func (s *DefaultCheckoutService) CreateIntent(outcome content.ActionOutcome) (*Intent, error) {
	logger := utils.GetLogger()

	if outcome.Kind != content.OutcomePurchase || outcome.Price == nil {
		return nil, fmt.Errorf("outcome is not a purchase")
	}
	price := *outcome.Price
	if price.Amount <= 0 {
		return nil, fmt.Errorf("purchase amount must be positive")
	}

	amount := int64(math.Round(price.Amount * 100))
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(strings.ToLower(price.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("productRef", outcome.ProductRef)

	pi, err := paymentintent.New(params)
	if err != nil {
		logger.Error("failed to create payment intent",
			zap.String("productRef", outcome.ProductRef), zap.Error(err))
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	intent := &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		ProductRef:   outcome.ProductRef,
	}
	if price.DiscountValid() {
		intent.Discount = price.Original - price.Amount
	}
	return intent, nil
}
