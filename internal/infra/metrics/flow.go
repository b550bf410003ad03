package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(eventsTotal, viewCallsTotal, checkoutSessionsTotal, callbacksTotal)
}

var (
	eventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interaction_events_total",
			Help: "Inbound webhook events by payload type (shortcut/block_actions/view_submission/unknown).",
		},
		[]string{"type"},
	)

	viewCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slack_view_calls_total",
			Help: "Outbound views.open/views.update calls by outcome.",
		},
		[]string{"method", "outcome"},
	)

	checkoutSessionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_sessions_total",
			Help: "Checkout session creation attempts by outcome.",
		},
		[]string{"outcome"},
	)

	callbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_callbacks_total",
			Help: "Provider browser returns by result (success/cancel/error).",
		},
		[]string{"result"},
	)
)

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func IncEvent(eventType string) {
	eventsTotal.WithLabelValues(norm(eventType)).Inc()
}

func IncViewCall(method, outcome string) {
	viewCallsTotal.WithLabelValues(norm(method), norm(outcome)).Inc()
}

func IncCheckoutSession(outcome string) {
	checkoutSessionsTotal.WithLabelValues(norm(outcome)).Inc()
}

func IncCallback(result string) {
	callbacksTotal.WithLabelValues(norm(result)).Inc()
}
