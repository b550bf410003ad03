package adapter

import (
	"context"

	"slack-charity-donate/internal/domain/model"
)

// CheckoutGateway is the hex port for the payment provider. CreateSession
// is not idempotent: every call creates a live charge-capable session.
type CheckoutGateway interface {
	Name() string

	// CreateSession creates a hosted checkout session for the amount and
	// returns its id and redirect URL. The provider sends the browser to
	// successURL or cancelURL when the session completes.
	CreateSession(ctx context.Context, amount model.Amount, successURL, cancelURL string) (model.CheckoutSession, error)
}
