package adapter

import (
	"context"

	"slack-charity-donate/internal/view"
)

// SlackClient is the hex port for the chat platform's view API.
type SlackClient interface {
	// OpenView opens a new modal; triggerID is the single-use handle
	// issued with the originating user action.
	OpenView(ctx context.Context, triggerID string, v view.View) error
	// UpdateView replaces the content of an already-open modal. viewID
	// must be the handle of that exact view; it is never inferred.
	UpdateView(ctx context.Context, viewID string, v view.View) error
}
