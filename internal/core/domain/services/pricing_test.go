package services_test

import (
	"testing"

	"workshop/internal/core/domain/model/product"
	"workshop/internal/core/domain/services"
	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricing_Price(t *testing.T) {
	pricing := services.NewPricing(services.DefaultRates())

	testCases := []struct {
		name string
		req  services.PriceRequest
		want string
	}{
		{
			name: "gold ring without enhancements",
			req: services.PriceRequest{
				Type: "ring", Material: product.Gold, Purity: 585, WeightGrams: decimal.NewFromInt(4),
			},
			// 4 * 0.585 * 6500 + 3000
			want: "18210",
		},
		{
			name: "silver earrings with engraving and gift wrap",
			req: services.PriceRequest{
				Type: "Earrings", Material: product.Silver, Purity: 925, WeightGrams: decimal.RequireFromString("3.5"),
				Enhancements: []product.Enhancement{product.Engraving, product.GiftWrap},
			},
			// 3.5 * 0.925 * 90 + 3500 + 1500 + 300
			want: "5591.38",
		},
		{
			name: "repeated tag is charged once, unknown type uses default labour",
			req: services.PriceRequest{
				Type: "brooch", Material: product.Platinum, Purity: 950, WeightGrams: decimal.NewFromInt(2),
				Enhancements: []product.Enhancement{product.Polishing, product.Polishing},
			},
			// 2 * 0.95 * 3200 + 3000 + 800
			want: "9880",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			price, err := pricing.Price(tc.req)

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.want).Equal(price), "got %s", price)
		})
	}
}

func TestPricing_PriceRejectsInvalidRequests(t *testing.T) {
	pricing := services.NewPricing(services.DefaultRates())

	_, err := pricing.Price(services.PriceRequest{Type: "ring", Material: "wood", Purity: 0, WeightGrams: decimal.Zero})

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, err, services.ErrWeightIsInvalid)

	_, err = pricing.Price(services.PriceRequest{
		Type: "ring", Material: product.Gold, Purity: 585, WeightGrams: decimal.NewFromInt(1),
		Enhancements: []product.Enhancement{"fireworks"},
	})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
