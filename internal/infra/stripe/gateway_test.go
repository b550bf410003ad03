package stripe_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"slack-charity-donate/internal/domain"
	stripeapi "slack-charity-donate/internal/infra/stripe"
)

func newLogger() *zerolog.Logger { l := zerolog.Nop(); return &l }

func TestCreateSession(t *testing.T) {
	var gotForm url.Values
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/checkout/sessions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotForm = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cs_test_123","url":"https://checkout.stripe.com/pay/cs_test_123"}`))
	}))
	defer srv.Close()

	g := stripeapi.NewGateway("sk_test_abc", srv.URL, "nzd", newLogger())
	session, err := g.CreateSession(context.Background(), 25,
		"https://donate.example.com/interactive/callback?viewId=V1",
		"https://donate.example.com/interactive/callback?viewId=cancel")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	if session.ID != "cs_test_123" || !strings.Contains(session.HostedURL, "cs_test_123") {
		t.Fatalf("session = %+v", session)
	}
	if gotAuth != "Bearer sk_test_abc" {
		t.Fatalf("auth = %q", gotAuth)
	}

	want := map[string]string{
		"mode":                                         "payment",
		"payment_method_types[0]":                      "card",
		"line_items[0][quantity]":                      "1",
		"line_items[0][price_data][currency]":          "nzd",
		"line_items[0][price_data][unit_amount]":       "2500",
		"line_items[0][price_data][product_data][name]": "Donation",
		"success_url": "https://donate.example.com/interactive/callback?viewId=V1",
		"cancel_url":  "https://donate.example.com/interactive/callback?viewId=cancel",
	}
	for k, v := range want {
		if got := gotForm.Get(k); got != v {
			t.Fatalf("form[%q] = %q, want %q", k, got, v)
		}
	}
}

func TestCreateSessionProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"Invalid currency: xxx"}}`))
	}))
	defer srv.Close()

	g := stripeapi.NewGateway("sk_test_abc", srv.URL, "xxx", newLogger())
	_, err := g.CreateSession(context.Background(), 5, "https://x/s", "https://x/c")
	if !errors.Is(err, domain.ErrCheckoutSession) {
		t.Fatalf("err = %v, want ErrCheckoutSession", err)
	}
	if !strings.Contains(err.Error(), "Invalid currency") {
		t.Fatalf("provider message lost from error chain: %v", err)
	}
}

func TestCreateSessionNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections

	g := stripeapi.NewGateway("sk_test_abc", srv.URL, "nzd", newLogger())
	if _, err := g.CreateSession(context.Background(), 5, "https://x/s", "https://x/c"); err == nil {
		t.Fatal("want error on unreachable provider")
	}
}
