package catalog

import (
	"fmt"
	"math"
	"strconv"
)

type RoundingPolicy string

const (
	RoundingNone       RoundingPolicy = "none"
	RoundingWhole      RoundingPolicy = "whole"
	RoundingUp         RoundingPolicy = "up"
	RoundingDown       RoundingPolicy = "down"
	RoundingNinetyNine RoundingPolicy = "ninety_nine"
)

func ParseRoundingPolicy(s string) (RoundingPolicy, error) {
	switch p := RoundingPolicy(s); p {
	case RoundingNone, RoundingWhole, RoundingUp, RoundingDown, RoundingNinetyNine:
		return p, nil
	case "":
		return RoundingNone, nil
	default:
		return "", fmt.Errorf("unknown rounding policy %q", s)
	}
}

// PriceRule converts retailer prices into storefront prices.
type PriceRule struct {
	Margin       float64
	CurrencyRate float64
	Rounding     RoundingPolicy
}

func (r PriceRule) margin() float64 {
	if r.Margin <= 0 {
		return 1
	}
	return r.Margin
}

func (r PriceRule) rate() float64 {
	if r.CurrencyRate <= 0 {
		return 1
	}
	return r.CurrencyRate
}

// Price is selling x margin x rate, rounded per the policy.
func (r PriceRule) Price(selling float64) float64 {
	return round(selling*r.margin()*r.rate(), r.Rounding)
}

// CompareAtPrice is original x rate. Margin and rounding policy do not apply.
func (r PriceRule) CompareAtPrice(original float64) float64 {
	if original <= 0 {
		return 0
	}
	return cents(original * r.rate())
}

func round(v float64, policy RoundingPolicy) float64 {
	switch policy {
	case RoundingWhole:
		return math.Round(v)
	case RoundingUp:
		return math.Ceil(cents(v))
	case RoundingDown:
		return math.Floor(cents(v))
	case RoundingNinetyNine:
		return math.Floor(cents(v)) + 0.99
	default:
		return cents(v)
	}
}

func cents(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAmount renders an amount the way the storefront expects money
// scalars. Zero renders as empty.
func FormatAmount(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
