// Package view builds the Block Kit documents for each screen of the
// donation flow. Builders are pure: identical inputs produce identical
// output except for the freshly minted callback_id on interactive modals.
package view

import "slack-charity-donate/internal/domain/model"

// Text is a Block Kit text object (plain_text or mrkdwn).
type Text struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

func plain(s string) *Text  { return &Text{Type: "plain_text", Text: s} }
func mrkdwn(s string) *Text { return &Text{Type: "mrkdwn", Text: s} }

// Element is an interactive element inside an actions/input block or a
// section accessory: button or plain_text_input.
type Element struct {
	Type         string `json:"type"`
	Text         *Text  `json:"text,omitempty"`
	ActionID     string `json:"action_id,omitempty"`
	Value        string `json:"value,omitempty"`
	URL          string `json:"url,omitempty"`
	InitialValue string `json:"initial_value,omitempty"`
	Placeholder  *Text  `json:"placeholder,omitempty"`
}

// Block is one visual unit of a modal.
type Block struct {
	Type      string    `json:"type"`
	BlockID   string    `json:"block_id,omitempty"`
	Text      *Text     `json:"text,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	AltText   string    `json:"alt_text,omitempty"`
	Elements  []Element `json:"elements,omitempty"`
	Element   *Element  `json:"element,omitempty"`
	Label     *Text     `json:"label,omitempty"`
	Accessory *Element  `json:"accessory,omitempty"`
}

// View is a full modal document. PrivateMetadata carries the FlowState tag;
// it is the only place the current flow step is recorded.
type View struct {
	Type            string  `json:"type"`
	Title           *Text   `json:"title"`
	CallbackID      string  `json:"callback_id,omitempty"`
	PrivateMetadata string  `json:"private_metadata,omitempty"`
	Close           *Text   `json:"close,omitempty"`
	Submit          *Text   `json:"submit,omitempty"`
	ClearOnClose    bool    `json:"clear_on_close,omitempty"`
	Blocks          []Block `json:"blocks"`
}

// State reports the flow state tag the view was rendered with.
func (v View) State() model.FlowState { return model.FlowState(v.PrivateMetadata) }
