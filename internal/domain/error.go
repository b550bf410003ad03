package domain

import "errors"

var (
	// Common domain errors
	ErrInvalidAmount   = errors.New("invalid donation amount")
	ErrCorruptToken    = errors.New("correlation token does not decode")
	ErrUnknownEvent    = errors.New("unrecognized interaction event")
	ErrSlackAPI        = errors.New("slack api call failed")
	ErrCheckoutSession = errors.New("checkout session creation failed")
)
