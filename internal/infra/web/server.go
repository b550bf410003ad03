// Package web exposes the public HTTP surface: the Slack interactivity
// webhook, the checkout-initiation page, and the provider return callback.
package web

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"slack-charity-donate/internal/correlate"
	"slack-charity-donate/internal/domain/model"
	"slack-charity-donate/internal/infra/logging"
	"slack-charity-donate/internal/infra/metrics"
	slackwire "slack-charity-donate/internal/infra/slack"
	"slack-charity-donate/internal/usecase"
)

type Server struct {
	flow               usecase.FlowUseCase
	shortcutCallbackID string
	publishableKey     string
	callTimeout        time.Duration
	log                *zerolog.Logger
}

func NewServer(flow usecase.FlowUseCase, shortcutCallbackID, publishableKey string, callTimeout time.Duration, logger *zerolog.Logger) *Server {
	if callTimeout <= 0 {
		callTimeout = 10 * time.Second
	}
	return &Server{
		flow:               flow,
		shortcutCallbackID: shortcutCallbackID,
		publishableKey:     publishableKey,
		callTimeout:        callTimeout,
		log:                logger,
	}
}

// Router builds the route tree.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(s.traceMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/interactive", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("You are OK!"))
		})
		r.Post("/", s.handleInteractive)
		r.Get("/checkout", s.handleCheckout)
		r.Get("/callback", s.handleCallback)
	})
	return r
}

// handleInteractive is the webhook entry point. The platform retries on
// delay or non-200, so every branch acknowledges quickly; failures are
// logged, never surfaced.
func (s *Server) handleInteractive(w http.ResponseWriter, r *http.Request) {
	log := logging.With(r.Context(), s.log)

	if err := r.ParseForm(); err != nil {
		log.Warn().Err(err).Msg("unparseable webhook form")
		metrics.IncEvent("unknown")
		w.WriteHeader(http.StatusOK)
		return
	}

	ev, err := slackwire.ParsePayload([]byte(r.PostFormValue("payload")))
	if err != nil {
		log.Debug().Err(err).Msg("webhook payload not routable")
		metrics.IncEvent("unknown")
		w.WriteHeader(http.StatusOK)
		return
	}
	metrics.IncEvent(string(ev.Kind))

	ctx, cancel := context.WithTimeout(r.Context(), s.callTimeout)
	defer cancel()

	switch ev.Kind {
	case model.EventShortcut:
		if ev.CallbackID != s.shortcutCallbackID {
			log.Debug().Str("callback_id", ev.CallbackID).Msg("foreign shortcut ignored")
			break
		}
		if err := s.flow.HandleShortcut(ctx, ev.TriggerID); err != nil {
			log.Error().Err(err).Msg("shortcut handling failed")
		}

	case model.EventBlockAction:
		if err := s.flow.HandleBlockAction(ctx, ev); err != nil {
			log.Error().Err(err).Str("view_id", ev.ViewID).Msg("block action handling failed")
		}

	case model.EventViewSubmission:
		reply, err := s.flow.HandleSubmission(ctx, ev)
		if err != nil {
			log.Error().Err(err).Str("view_id", ev.ViewID).Msg("submission handling failed")
			break
		}
		if !reply.IsAck() {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			if err := json.NewEncoder(w).Encode(reply); err != nil {
				log.Error().Err(err).Msg("write submission reply")
			}
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}

// handleCheckout creates the provider session and serves the redirect
// shell. A gateway failure must render a visible error, never a page
// pointing at a session that does not exist.
func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	log := logging.With(r.Context(), s.log)

	t, cancelled, err := correlate.Decode(r.URL.Query())
	if err != nil || cancelled {
		log.Warn().Err(err).Str("query", r.URL.RawQuery).Msg("rejected checkout request")
		s.renderError(w, http.StatusBadRequest, "This donation link is not valid. Please start again from the chat.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.callTimeout)
	defer cancel()

	session, err := s.flow.CreateCheckout(ctx, t)
	if err != nil {
		log.Error().Err(err).Msg("checkout session creation failed")
		s.renderError(w, http.StatusBadGateway, "We could not reach the payment provider. No charge was made; please try again.")
		return
	}

	s.renderCheckout(w, session.ID)
}

// handleCallback is the provider's browser return. The cancel sentinel is
// acknowledged without any outbound call; a chat-platform failure on the
// success path is a rendering glitch, not a flow failure.
func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	log := logging.With(r.Context(), s.log)

	viewID, cancelled, err := correlate.DecodeReturn(r.URL.Query())
	if err != nil {
		log.Warn().Err(err).Str("query", r.URL.RawQuery).Msg("rejected callback")
		metrics.IncCallback("error")
		s.renderError(w, http.StatusBadRequest, "This payment return link is not valid.")
		return
	}
	if cancelled {
		metrics.IncCallback("cancel")
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, cancel := context.WithTimeout(logging.WithViewID(r.Context(), viewID), s.callTimeout)
	defer cancel()

	if err := s.flow.HandleReturn(ctx, viewID); err != nil {
		// The user already paid; a stale modal is acceptable, a scary
		// error page after a successful charge is not.
		log.Error().Err(err).Str("view_id", viewID).Msg("thank-you update failed")
	}
	metrics.IncCallback("success")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Your payment has been processed successfully. Feel free to close this browser window."))
}
