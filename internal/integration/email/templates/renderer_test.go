package templates

import (
	"strings"
	"testing"
)

func TestRenderer_PayoutTemplates(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	data := PayoutData{
		InvestorName: "Ada",
		PropertyName: "Lekki <Court>",
		Amount:       "₦1,250.00",
		Shares:       "25",
		WalletURL:    "https://app.estateshare.dev/wallet",
	}

	for _, name := range []string{"payout_declared", "payout_credited"} {
		t.Run(name, func(t *testing.T) {
			html, text, err := renderer.Render(name, data)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if !strings.Contains(html, "₦1,250.00") || !strings.Contains(text, "₦1,250.00") {
				t.Error("expected amount in both bodies")
			}
			if !strings.Contains(html, "Lekki &lt;Court&gt;") {
				t.Error("expected HTML escaping")
			}
			if !strings.Contains(text, "Lekki <Court>") {
				t.Error("expected raw text body")
			}
		})
	}

	if _, _, err := renderer.Render("unknown", data); err == nil {
		t.Error("expected unknown template to fail")
	}
}
