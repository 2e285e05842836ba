//go:build unit

package catalog_test

import (
	"testing"

	"catalog-sync/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceRule(t *testing.T) {
	testCases := []struct {
		name    string
		rule    catalog.PriceRule
		selling float64
		want    string
	}{
		{name: "margin and rate", rule: catalog.PriceRule{Margin: 1.5, CurrencyRate: 1.1}, selling: 100, want: "165.00"},
		{name: "zero margin means one", rule: catalog.PriceRule{CurrencyRate: 2}, selling: 10.25, want: "20.50"},
		{name: "whole", rule: catalog.PriceRule{Margin: 1, CurrencyRate: 1, Rounding: catalog.RoundingWhole}, selling: 10.49, want: "10.00"},
		{name: "up", rule: catalog.PriceRule{Margin: 1, CurrencyRate: 1, Rounding: catalog.RoundingUp}, selling: 10.01, want: "11.00"},
		{name: "up exact", rule: catalog.PriceRule{Margin: 1, CurrencyRate: 1, Rounding: catalog.RoundingUp}, selling: 10, want: "10.00"},
		{name: "down", rule: catalog.PriceRule{Margin: 1, CurrencyRate: 1, Rounding: catalog.RoundingDown}, selling: 10.99, want: "10.00"},
		{name: "ninety nine", rule: catalog.PriceRule{Margin: 1, CurrencyRate: 1, Rounding: catalog.RoundingNinetyNine}, selling: 10.2, want: "10.99"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, catalog.FormatAmount(tc.rule.Price(tc.selling)))
		})
	}
}

func TestPriceRule_CompareAtPrice(t *testing.T) {
	rule := catalog.PriceRule{Margin: 3, CurrencyRate: 1.1, Rounding: catalog.RoundingWhole}
	assert.Equal(t, "165.00", catalog.FormatAmount(rule.CompareAtPrice(150)))
	assert.Equal(t, "", catalog.FormatAmount(rule.CompareAtPrice(0)))
}

func TestParseRoundingPolicy(t *testing.T) {
	p, err := catalog.ParseRoundingPolicy("")
	require.NoError(t, err)
	assert.Equal(t, catalog.RoundingNone, p)

	_, err = catalog.ParseRoundingPolicy("banker")
	assert.Error(t, err)
}
