package model

// FlowState names a step of the donation flow. The server keeps no record
// of it; the current state lives only in the view's private_metadata and is
// echoed back by the chat platform on the next event.
type FlowState string

const (
	FlowStateSummary      FlowState = "SummaryView" // charity summary, submit advances to the amount prompt
	FlowStateAmountPrompt FlowState = "DonateView"  // preset buttons + optional amount input
	FlowStatePayLink      FlowState = "PayView"     // pay button carrying the checkout URL
	FlowStateThankYou     FlowState = "ThanksView"  // terminal confirmation
)

// CheckoutSession is the provider-side hosted payment page. Single use;
// the provider owns its lifecycle, we only carry the id through a redirect.
type CheckoutSession struct {
	ID        string
	HostedURL string
}
