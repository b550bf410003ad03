package slack

import (
	"encoding/json"
	"fmt"

	"slack-charity-donate/internal/domain"
	"slack-charity-donate/internal/domain/model"
	"slack-charity-donate/internal/view"
)

// envelope is the minimal shape shared by all interactivity payloads. The
// type discriminant is validated before any variant field is touched.
type envelope struct {
	Type       string `json:"type"`
	TriggerID  string `json:"trigger_id"`
	CallbackID string `json:"callback_id"`
	View       struct {
		ID              string `json:"id"`
		PrivateMetadata string `json:"private_metadata"`
		State           struct {
			Values map[string]map[string]struct {
				Value string `json:"value"`
			} `json:"values"`
		} `json:"state"`
	} `json:"view"`
	Actions []struct {
		ActionID string `json:"action_id"`
		Value    string `json:"value"`
	} `json:"actions"`
}

// ParsePayload decodes the webhook's payload field into a tagged event.
// Unknown or malformed variants return domain.ErrUnknownEvent; the caller
// acknowledges those with a plain 200 and no side effects.
func ParsePayload(raw []byte) (model.InteractionEvent, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return model.InteractionEvent{}, fmt.Errorf("%w: %v", domain.ErrUnknownEvent, err)
	}

	switch model.EventKind(env.Type) {
	case model.EventShortcut:
		if env.TriggerID == "" {
			return model.InteractionEvent{}, fmt.Errorf("%w: shortcut without trigger_id", domain.ErrUnknownEvent)
		}
		return model.InteractionEvent{
			Kind:       model.EventShortcut,
			TriggerID:  env.TriggerID,
			CallbackID: env.CallbackID,
		}, nil

	case model.EventBlockAction:
		if env.View.ID == "" || len(env.Actions) == 0 {
			return model.InteractionEvent{}, fmt.Errorf("%w: block_actions without view or actions", domain.ErrUnknownEvent)
		}
		return model.InteractionEvent{
			Kind:        model.EventBlockAction,
			ViewID:      env.View.ID,
			Metadata:    model.FlowState(env.View.PrivateMetadata),
			ActionID:    env.Actions[0].ActionID,
			ActionValue: env.Actions[0].Value,
		}, nil

	case model.EventViewSubmission:
		if env.View.ID == "" {
			return model.InteractionEvent{}, fmt.Errorf("%w: view_submission without view id", domain.ErrUnknownEvent)
		}
		ev := model.InteractionEvent{
			Kind:     model.EventViewSubmission,
			ViewID:   env.View.ID,
			Metadata: model.FlowState(env.View.PrivateMetadata),
		}
		if block, ok := env.View.State.Values[view.AmountBlockID]; ok {
			ev.SubmittedAmount = block[view.AmountActionID].Value
		}
		return ev, nil
	}

	return model.InteractionEvent{}, fmt.Errorf("%w: type %q", domain.ErrUnknownEvent, env.Type)
}
