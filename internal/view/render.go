package view

import (
	"github.com/google/uuid"

	"slack-charity-donate/internal/domain/model"
)

const (
	bannerImageURL = "https://novashades.co.nz/wp-content/uploads/2018/10/BLOG-POST_MELANOMA-750x200.jpg"
	bannerAltText  = "Melanoma New Zealand"
	thanksImageURL = "https://media.tenor.com/images/08c9b2fc65a8ff8e6e72a65910138b9a/tenor.gif"

	// Block and action ids referenced by inbound events. These are wire
	// contract: the webhook reads submitted values back out by these keys.
	AmountBlockID  = "donate_amount_block"
	AmountActionID = "donate_amount"
	ValueBlockID   = "donate_value_block"

	// ActionPrefix marks block actions that belong to the donation flow.
	// Anything else in the payload namespace is ignored.
	ActionPrefix = "donate-"
)

// Summary is the first screen: charity pitch with a Donate submit button.
func Summary() View {
	return View{
		Type:            "modal",
		Title:           plain("Give a Little"),
		CallbackID:      uuid.NewString(),
		PrivateMetadata: string(model.FlowStateSummary),
		Close:           plain("Maybe later"),
		Submit:          plain("Donate"),
		ClearOnClose:    true,
		Blocks: []Block{
			{Type: "image", ImageURL: bannerImageURL, AltText: bannerAltText},
			{Type: "section", Text: mrkdwn("*Melanoma New Zealand is the only charity organisation dedicated to preventing avoidable deaths and suffering from melanoma, by:*")},
			{Type: "section", Text: mrkdwn("• Providing information about all aspects of melanoma\n• Promoting regular skin checks for early detection\n• Advocating for increased access to high quality clinical care\n• Leveraging relationships to amplify our effectiveness\n• Being financially sustainable to achieve our mission")},
			{Type: "section", Text: mrkdwn("*If melanoma is recognised and treated early enough it is almost always curable.*")},
		},
	}
}

// AmountPrompt is the amount-selection screen. selected is "" for the
// initial render (buttons only, nothing to submit yet), a preset value to
// confirm, or model.CustomAmountValue for free-form entry.
func AmountPrompt(selected string) View {
	v := View{
		Type:            "modal",
		Title:           plain("Give a Little"),
		CallbackID:      uuid.NewString(),
		PrivateMetadata: string(model.FlowStateAmountPrompt),
		Close:           plain("Maybe later"),
		ClearOnClose:    true,
	}

	blocks := []Block{
		{Type: "image", ImageURL: bannerImageURL, AltText: bannerAltText},
		{Type: "section", Text: mrkdwn("*Here are some handy ideas and tips to get you started:*")},
		{Type: "divider"},
		{Type: "section", Text: mrkdwn("*Pay via chattR*")},
		{Type: "section", Text: mrkdwn("Simply choose your amount to give and complete payment via chattR.")},
		amountButtons(),
	}

	if selected != "" {
		initial := selected
		confirmText := "confirm"
		if selected == model.CustomAmountValue {
			initial = ""
			confirmText = "type"
		}
		v.Submit = plain("Give")
		blocks = append(blocks, Block{
			Type:    "input",
			BlockID: AmountBlockID,
			Element: &Element{
				Type:         "plain_text_input",
				ActionID:     AmountActionID,
				InitialValue: initial,
				Placeholder:  plain("Amount to give"),
			},
			Label: plain("Please " + confirmText + " amount to give:"),
		})
	}

	blocks = append(blocks,
		Block{Type: "divider"},
		Block{Type: "section", Text: mrkdwn("*Talk to staff at your local reception*")},
		Block{Type: "section", Text: mrkdwn("You can pay with cash or card at reception, or bank transfer direct to the charity account:")},
		Block{Type: "section", Text: mrkdwn("*Bank Account Name:* Ryman Charity Bank Account\n*Bank Account Number:* 01-1111-2222222-00")},
	)

	v.Blocks = blocks
	return v
}

func amountButtons() Block {
	elements := make([]Element, 0, len(model.PresetAmounts)+1)
	for _, a := range model.PresetAmounts {
		elements = append(elements, Element{
			Type:     "button",
			Text:     &Text{Type: "plain_text", Text: "$" + a.String(), Emoji: true},
			Value:    a.String(),
			ActionID: ActionPrefix + a.String(),
		})
	}
	elements = append(elements, Element{
		Type:     "button",
		Text:     &Text{Type: "plain_text", Text: "More or less", Emoji: true},
		Value:    model.CustomAmountValue,
		ActionID: ActionPrefix + model.CustomAmountValue,
	})
	return Block{Type: "actions", BlockID: ValueBlockID, Elements: elements}
}

// PayNow carries the checkout URL on its Pay button. checkoutURL embeds the
// correlation token; the button opens the browser, nothing is submitted.
func PayNow(checkoutURL string) View {
	return View{
		Type:            "modal",
		Title:           &Text{Type: "plain_text", Text: "One step to go", Emoji: true},
		PrivateMetadata: string(model.FlowStatePayLink),
		Close:           plain("Close"),
		Blocks: []Block{
			{
				Type: "section",
				Text: mrkdwn(`Click "Pay" and complete payment in your browser window.`),
				Accessory: &Element{
					Type:     "button",
					Text:     &Text{Type: "plain_text", Text: "Pay", Emoji: true},
					ActionID: "button-action",
					Value:    "pay",
					URL:      checkoutURL,
				},
			},
		},
	}
}

// ThankYou is the terminal screen pushed onto the original view once the
// payment provider redirects back with a success.
func ThankYou() View {
	return View{
		Type:            "modal",
		Title:           &Text{Type: "plain_text", Text: "Thank you!", Emoji: true},
		PrivateMetadata: string(model.FlowStateThankYou),
		Close:           plain("Close"),
		Blocks: []Block{
			{Type: "section", Text: &Text{Type: "plain_text", Text: "Payment received!", Emoji: true}},
			{Type: "image", ImageURL: thanksImageURL, AltText: "Thank you"},
		},
	}
}
