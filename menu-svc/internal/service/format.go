package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const currencySymbol = "₹"

// FormatPrice renders an amount as rupees with two decimals and thousands
// separators, e.g. ₹1,234.50.
func FormatPrice(price float64) string {
	return currencySymbol + groupThousands(decimal.NewFromFloat(price).StringFixed(2))
}

// FormatSavings renders actual minus discounted, never below zero.
func FormatSavings(actualPrice, discountedPrice float64) string {
	savings := decimal.NewFromFloat(actualPrice).Sub(decimal.NewFromFloat(discountedPrice))
	if savings.IsNegative() {
		savings = decimal.Zero
	}
	return currencySymbol + groupThousands(savings.StringFixed(2))
}

func groupThousands(fixed string) string {
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return sign + b.String()
}

// EpochToTimeLabel formats epoch milliseconds as "HH:MM" in loc. Zero or
// negative epochs render as "--:--".
func EpochToTimeLabel(epochMs int64, loc *time.Location) string {
	if epochMs <= 0 {
		return "--:--"
	}
	return time.UnixMilli(epochMs).In(loc).Format("15:04")
}

// TimeLabelToEpoch places an "HH:MM" label on now's calendar day, in now's
// location.
func TimeLabelToEpoch(label string, now time.Time) (int64, error) {
	hoursRaw, minutesRaw, ok := strings.Cut(strings.TrimSpace(label), ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeLabel, label)
	}
	hours, errH := strconv.Atoi(strings.TrimSpace(hoursRaw))
	minutes, errM := strconv.Atoi(strings.TrimSpace(minutesRaw))
	if errH != nil || errM != nil || hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeLabel, label)
	}
	at := time.Date(now.Year(), now.Month(), now.Day(), hours, minutes, 0, 0, now.Location())
	return at.UnixMilli(), nil
}
