package model

import (
	"strconv"
	"strings"

	"slack-charity-donate/internal/domain"
)

// Amount is a whole-dollar donation amount. Zero is not a valid amount.
type Amount int64

// PresetAmounts are the quick-pick buttons offered on the amount prompt.
var PresetAmounts = []Amount{5, 10, 20}

// CustomAmountValue is the button value that switches the prompt into
// free-form entry instead of carrying a preset.
const CustomAmountValue = "custom"

// ParseAmount validates a user-submitted amount string. The upstream flow
// historically forwarded any string straight into session creation; parsing
// here fails closed instead, so a non-numeric or non-positive value never
// reaches the payment provider.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	return Amount(n), nil
}

func (a Amount) String() string { return strconv.FormatInt(int64(a), 10) }

// MinorUnits converts the whole-dollar amount into the provider's minor
// currency unit (cents).
func (a Amount) MinorUnits() int64 { return int64(a) * 100 }
