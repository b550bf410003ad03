// Package correlate threads the (view handle, amount) pair through the
// payment provider's redirect URLs. The server keeps no session store; this
// token is the only link between the Pay click and the browser coming back.
package correlate

import (
	"fmt"
	"net/url"

	"slack-charity-donate/internal/domain"
	"slack-charity-donate/internal/domain/model"
)

const (
	// CancelSentinel is the reserved viewId value for the cancellation
	// return path. Slack view ids are V-prefixed, so a real handle can
	// never collide with it.
	CancelSentinel = "cancel"

	checkoutPath = "/interactive/checkout"
	callbackPath = "/interactive/callback"
)

// Token is the correlation token: which view to resume and for how much.
type Token struct {
	ViewID string
	Amount model.Amount
}

// Encode builds the checkout-initiation URL carrying the token. The value
// must survive a URL round-trip exactly or the resuming update targets the
// wrong view.
func Encode(publicURL string, t Token) string {
	return publicURL + checkoutPath + "?viewId=" + url.QueryEscape(t.ViewID) + "&price=" + t.Amount.String()
}

// Decode reads a token back out of the checkout-initiation query string.
// cancelled reports the reserved sentinel; amounts that fail validation are
// rejected rather than forwarded to the payment provider.
func Decode(q url.Values) (t Token, cancelled bool, err error) {
	viewID := q.Get("viewId")
	if viewID == CancelSentinel {
		return Token{}, true, nil
	}
	if viewID == "" {
		return Token{}, false, fmt.Errorf("%w: missing viewId", domain.ErrCorruptToken)
	}
	amount, err := model.ParseAmount(q.Get("price"))
	if err != nil {
		return Token{}, false, fmt.Errorf("%w: price %q", domain.ErrCorruptToken, q.Get("price"))
	}
	return Token{ViewID: viewID, Amount: amount}, false, nil
}

// SuccessURL is where the provider sends the browser after payment; it
// carries the view handle so the flow can resume.
func SuccessURL(publicURL, viewID string) string {
	return publicURL + callbackPath + "?viewId=" + url.QueryEscape(viewID)
}

// CancelURL is the provider's cancel return target.
func CancelURL(publicURL string) string {
	return publicURL + callbackPath + "?viewId=" + CancelSentinel
}

// DecodeReturn reads the provider's return query. Only the view handle
// comes back; the amount was already consumed by session creation.
func DecodeReturn(q url.Values) (viewID string, cancelled bool, err error) {
	viewID = q.Get("viewId")
	if viewID == CancelSentinel {
		return "", true, nil
	}
	if viewID == "" {
		return "", false, fmt.Errorf("%w: missing viewId", domain.ErrCorruptToken)
	}
	return viewID, false, nil
}
