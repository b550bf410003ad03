package model

// EventKind discriminates the inbound interaction payload variants.
type EventKind string

const (
	EventShortcut       EventKind = "shortcut"
	EventBlockAction    EventKind = "block_actions"
	EventViewSubmission EventKind = "view_submission"
)

// InteractionEvent is the decoded inbound webhook event. Exactly one of
// TriggerID (shortcut, opens a new view) or ViewID (action/submission,
// updates an existing view) is meaningful per kind.
type InteractionEvent struct {
	Kind EventKind

	// Shortcut
	TriggerID  string
	CallbackID string

	// Block action / view submission
	ViewID   string
	Metadata FlowState // private_metadata echoed back by the platform

	// Block action
	ActionID    string
	ActionValue string

	// View submission
	SubmittedAmount string // raw value of the amount input, unvalidated
}
