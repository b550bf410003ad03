// Package stripe creates hosted Checkout Sessions via the provider's
// form-encoded REST API.
package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"slack-charity-donate/internal/domain"
	"slack-charity-donate/internal/domain/model"
	"slack-charity-donate/internal/infra/metrics"
)

// Gateway implements adapter.CheckoutGateway using direct HTTP calls.
type Gateway struct {
	secretKey string
	baseURL   string
	currency  string
	client    *http.Client
	log       *zerolog.Logger
}

func NewGateway(secretKey, baseURL, currency string, logger *zerolog.Logger) *Gateway {
	return &Gateway{
		secretKey: secretKey,
		baseURL:   baseURL,
		currency:  currency,
		client:    &http.Client{},
		log:       logger,
	}
}

func (g *Gateway) Name() string { return "stripe" }

// sessionResponse is the subset of the session object we carry forward.
type sessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreateSession implements adapter.CheckoutGateway.CreateSession. Every
// call creates a new live session; retried webhook deliveries therefore
// create duplicate sessions (the provider expires unused ones).
func (g *Gateway) CreateSession(ctx context.Context, amount model.Amount, successURL, cancelURL string) (session model.CheckoutSession, err error) {
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		metrics.IncCheckoutSession(outcome)
	}()

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", g.currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(amount.MinorUnits(), 10))
	form.Set("line_items[0][price_data][product_data][name]", "Donation")
	form.Set("success_url", successURL)
	form.Set("cancel_url", cancelURL)

	endpoint := g.baseURL + "/v1/checkout/sessions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return model.CheckoutSession{}, fmt.Errorf("create session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+g.secretKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return model.CheckoutSession{}, fmt.Errorf("send session request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.CheckoutSession{}, fmt.Errorf("read session response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			return model.CheckoutSession{}, fmt.Errorf("%w: %s: %s", domain.ErrCheckoutSession, apiErr.Error.Type, apiErr.Error.Message)
		}
		return model.CheckoutSession{}, fmt.Errorf("%w: status %d, body: %s", domain.ErrCheckoutSession, resp.StatusCode, string(body))
	}

	var decoded sessionResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return model.CheckoutSession{}, fmt.Errorf("unmarshal session response: %w, body: %s", err, string(body))
	}
	if decoded.ID == "" {
		return model.CheckoutSession{}, fmt.Errorf("%w: response missing session id", domain.ErrCheckoutSession)
	}

	g.log.Info().Str("session_id", decoded.ID).Int64("unit_amount", amount.MinorUnits()).Msg("checkout session created")
	return model.CheckoutSession{ID: decoded.ID, HostedURL: decoded.URL}, nil
}
