package view_test

import (
	"encoding/json"
	"strings"
	"testing"

	"slack-charity-donate/internal/domain/model"
	"slack-charity-donate/internal/view"
)

// normalize blanks the per-render flow identifier so renders can be
// byte-compared.
func normalize(v view.View) view.View {
	v.CallbackID = ""
	return v
}

func mustJSON(t *testing.T, v view.View) string {
	t.Helper()
	b, err := json.Marshal(normalize(v))
	if err != nil {
		t.Fatalf("marshal view: %v", err)
	}
	return string(b)
}

func TestRenderDeterminism(t *testing.T) {
	cases := map[string]func() view.View{
		"summary":        view.Summary,
		"prompt initial": func() view.View { return view.AmountPrompt("") },
		"prompt preset":  func() view.View { return view.AmountPrompt("10") },
		"prompt custom":  func() view.View { return view.AmountPrompt(model.CustomAmountValue) },
		"pay":            func() view.View { return view.PayNow("https://donate.example.com/interactive/checkout?viewId=V1&price=5") },
		"thanks":         view.ThankYou,
	}
	for name, build := range cases {
		t.Run(name, func(t *testing.T) {
			a, b := mustJSON(t, build()), mustJSON(t, build())
			if a != b {
				t.Fatalf("render is not deterministic:\n%s\n%s", a, b)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	v := view.Summary()
	if v.State() != model.FlowStateSummary {
		t.Fatalf("state = %q", v.PrivateMetadata)
	}
	if v.Submit == nil || v.Submit.Text != "Donate" {
		t.Fatalf("summary must submit with Donate, got %+v", v.Submit)
	}
	if v.Close == nil || v.Close.Text != "Maybe later" {
		t.Fatalf("close = %+v", v.Close)
	}
	if v.CallbackID == "" {
		t.Fatal("summary must mint a flow identifier")
	}
	if !v.ClearOnClose {
		t.Fatal("summary must clear on close")
	}
}

func findInput(t *testing.T, v view.View) *view.Element {
	t.Helper()
	for _, b := range v.Blocks {
		if b.Type == "input" && b.BlockID == view.AmountBlockID {
			return b.Element
		}
	}
	return nil
}

func TestAmountPrompt(t *testing.T) {
	t.Run("initial render has buttons, no input, no submit", func(t *testing.T) {
		v := view.AmountPrompt("")
		if v.State() != model.FlowStateAmountPrompt {
			t.Fatalf("state = %q", v.PrivateMetadata)
		}
		if v.Submit != nil {
			t.Fatalf("initial prompt must not be submittable, got %+v", v.Submit)
		}
		if findInput(t, v) != nil {
			t.Fatal("initial prompt must not carry an amount input")
		}
	})

	t.Run("buttons cover presets plus custom", func(t *testing.T) {
		v := view.AmountPrompt("")
		var actions *view.Block
		for i := range v.Blocks {
			if v.Blocks[i].Type == "actions" && v.Blocks[i].BlockID == view.ValueBlockID {
				actions = &v.Blocks[i]
			}
		}
		if actions == nil {
			t.Fatal("no actions block")
		}
		wantIDs := []string{"donate-5", "donate-10", "donate-20", "donate-custom"}
		if len(actions.Elements) != len(wantIDs) {
			t.Fatalf("got %d buttons, want %d", len(actions.Elements), len(wantIDs))
		}
		for i, id := range wantIDs {
			if actions.Elements[i].ActionID != id {
				t.Fatalf("button %d action_id = %q, want %q", i, actions.Elements[i].ActionID, id)
			}
		}
	})

	t.Run("preset render pre-fills the input to confirm", func(t *testing.T) {
		v := view.AmountPrompt("10")
		input := findInput(t, v)
		if input == nil {
			t.Fatal("no amount input")
		}
		if input.InitialValue != "10" {
			t.Fatalf("initial value = %q, want 10", input.InitialValue)
		}
		if v.Submit == nil || v.Submit.Text != "Give" {
			t.Fatalf("submit = %+v, want Give", v.Submit)
		}
		var label string
		for _, b := range v.Blocks {
			if b.Type == "input" && b.Label != nil {
				label = b.Label.Text
			}
		}
		if !strings.Contains(label, "confirm") {
			t.Fatalf("label %q should ask to confirm", label)
		}
	})

	t.Run("custom render has an empty input to type into", func(t *testing.T) {
		v := view.AmountPrompt(model.CustomAmountValue)
		input := findInput(t, v)
		if input == nil {
			t.Fatal("no amount input")
		}
		if input.InitialValue != "" {
			t.Fatalf("initial value = %q, want empty", input.InitialValue)
		}
		var label string
		for _, b := range v.Blocks {
			if b.Type == "input" && b.Label != nil {
				label = b.Label.Text
			}
		}
		if !strings.Contains(label, "type") {
			t.Fatalf("label %q should ask to type", label)
		}
	})
}

func TestPayNow(t *testing.T) {
	const checkoutURL = "https://donate.example.com/interactive/checkout?viewId=V1&price=25"
	v := view.PayNow(checkoutURL)
	if v.State() != model.FlowStatePayLink {
		t.Fatalf("state = %q", v.PrivateMetadata)
	}
	if v.Submit != nil {
		t.Fatal("pay view has no submit; payment completes in the browser")
	}
	if len(v.Blocks) != 1 || v.Blocks[0].Accessory == nil {
		t.Fatalf("pay view must carry a single section with a button accessory: %+v", v.Blocks)
	}
	if got := v.Blocks[0].Accessory.URL; got != checkoutURL {
		t.Fatalf("pay button url = %q, want %q", got, checkoutURL)
	}
}

func TestThankYou(t *testing.T) {
	v := view.ThankYou()
	if v.State() != model.FlowStateThankYou {
		t.Fatalf("state = %q", v.PrivateMetadata)
	}
	if v.Submit != nil {
		t.Fatal("thank-you view has nothing to submit")
	}
	if len(v.Blocks) != 2 || v.Blocks[1].Type != "image" {
		t.Fatalf("blocks = %+v", v.Blocks)
	}
}
