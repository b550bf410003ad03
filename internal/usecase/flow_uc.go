// File: internal/usecase/flow_uc.go
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"slack-charity-donate/internal/correlate"
	"slack-charity-donate/internal/domain"
	"slack-charity-donate/internal/domain/model"
	"slack-charity-donate/internal/domain/ports/adapter"
	"slack-charity-donate/internal/view"
)

// Compile-time check
var _ FlowUseCase = (*flowUC)(nil)

// SubmissionReply is the body answered to a view_submission webhook. A zero
// reply means acknowledge-only (plain 200, the modal closes on its own).
type SubmissionReply struct {
	ResponseAction string            `json:"response_action,omitempty"`
	View           *view.View        `json:"view,omitempty"`
	Errors         map[string]string `json:"errors,omitempty"`
}

// IsAck reports whether the reply carries no body.
func (r SubmissionReply) IsAck() bool { return r.ResponseAction == "" }

// FlowUseCase is the donation flow state machine. The server holds no state
// between calls; every decision is made from the inbound event and the view
// metadata / correlation token it carries.
type FlowUseCase interface {
	// HandleShortcut opens the summary view for a fresh flow.
	HandleShortcut(ctx context.Context, triggerID string) error
	// HandleBlockAction advances the amount prompt for donate-* button
	// presses; anything else is a defensive no-op.
	HandleBlockAction(ctx context.Context, ev model.InteractionEvent) error
	// HandleSubmission answers a modal submit: summary confirm moves to
	// the amount prompt, an entered amount moves to the pay view.
	HandleSubmission(ctx context.Context, ev model.InteractionEvent) (SubmissionReply, error)
	// CreateCheckout creates a provider session for a decoded token.
	CreateCheckout(ctx context.Context, t correlate.Token) (model.CheckoutSession, error)
	// HandleReturn resumes the originating view with the thank-you screen.
	HandleReturn(ctx context.Context, viewID string) error
}

type flowUC struct {
	slack     adapter.SlackClient
	gateway   adapter.CheckoutGateway
	publicURL string
	log       *zerolog.Logger
}

func NewFlowUseCase(slack adapter.SlackClient, gateway adapter.CheckoutGateway, publicURL string, logger *zerolog.Logger) *flowUC {
	return &flowUC{slack: slack, gateway: gateway, publicURL: publicURL, log: logger}
}

func (u *flowUC) HandleShortcut(ctx context.Context, triggerID string) error {
	if err := u.slack.OpenView(ctx, triggerID, view.Summary()); err != nil {
		return fmt.Errorf("open summary view: %w", err)
	}
	return nil
}

func (u *flowUC) HandleBlockAction(ctx context.Context, ev model.InteractionEvent) error {
	if !strings.HasPrefix(ev.ActionID, view.ActionPrefix) {
		u.log.Debug().Str("action_id", ev.ActionID).Msg("unrelated block action ignored")
		return nil
	}

	// Preset presses re-render the prompt with the amount pre-filled to
	// confirm; "custom" re-renders it with an empty input to type into.
	next := view.AmountPrompt(ev.ActionValue)
	if err := u.slack.UpdateView(ctx, ev.ViewID, next); err != nil {
		return fmt.Errorf("update amount prompt: %w", err)
	}
	return nil
}

func (u *flowUC) HandleSubmission(ctx context.Context, ev model.InteractionEvent) (SubmissionReply, error) {
	switch ev.Metadata {
	case model.FlowStateSummary:
		next := view.AmountPrompt("")
		return SubmissionReply{ResponseAction: "update", View: &next}, nil

	case model.FlowStateAmountPrompt:
		amount, err := model.ParseAmount(ev.SubmittedAmount)
		if err != nil {
			u.log.Info().Str("value", ev.SubmittedAmount).Msg("rejected submitted amount")
			return SubmissionReply{
				ResponseAction: "errors",
				Errors:         map[string]string{view.AmountBlockID: "Please enter a whole positive dollar amount."},
			}, nil
		}
		checkoutURL := correlate.Encode(u.publicURL, correlate.Token{ViewID: ev.ViewID, Amount: amount})
		next := view.PayNow(checkoutURL)
		return SubmissionReply{ResponseAction: "update", View: &next}, nil
	}

	// Submissions from views that carry no routable metadata are
	// acknowledged without progress.
	u.log.Debug().Str("metadata", string(ev.Metadata)).Msg("submission with unroutable metadata")
	return SubmissionReply{}, nil
}

func (u *flowUC) CreateCheckout(ctx context.Context, t correlate.Token) (model.CheckoutSession, error) {
	session, err := u.gateway.CreateSession(ctx, t.Amount,
		correlate.SuccessURL(u.publicURL, t.ViewID),
		correlate.CancelURL(u.publicURL))
	if err != nil {
		return model.CheckoutSession{}, fmt.Errorf("create checkout session: %w", err)
	}
	return session, nil
}

func (u *flowUC) HandleReturn(ctx context.Context, viewID string) error {
	if viewID == "" {
		return domain.ErrCorruptToken
	}
	if err := u.slack.UpdateView(ctx, viewID, view.ThankYou()); err != nil {
		return fmt.Errorf("update thank-you view: %w", err)
	}
	return nil
}
