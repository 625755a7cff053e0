package services

import (
	"errors"
	"slices"
	"strings"

	"workshop/internal/core/domain/model/product"
	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrWeightIsInvalid = errs.NewValueIsInvalidError("weight must be greater than 0")

// PriceRequest describes an item to quote. Enhancements is a flat tag list;
// repeating a tag does not charge it twice.
type PriceRequest struct {
	Type         string
	Material     product.Material
	Purity       int
	WeightGrams  decimal.Decimal
	Enhancements []product.Enhancement
}

// Rates holds the tariffs used by Pricing.
type Rates struct {
	// PureMetalPerGram is the price of one gram of pure metal.
	PureMetalPerGram map[product.Material]decimal.Decimal
	// Labour is the crafting fee per product type.
	Labour map[string]decimal.Decimal
	// DefaultLabour applies to product types missing from Labour.
	DefaultLabour decimal.Decimal
	Enhancements  map[product.Enhancement]decimal.Decimal
}

// DefaultRates returns the workshop's standard tariffs.
func DefaultRates() Rates {
	return Rates{
		PureMetalPerGram: map[product.Material]decimal.Decimal{
			product.Gold:     decimal.NewFromInt(6500),
			product.Silver:   decimal.NewFromInt(90),
			product.Platinum: decimal.NewFromInt(3200),
		},
		Labour: map[string]decimal.Decimal{
			"ring":     decimal.NewFromInt(3000),
			"earrings": decimal.NewFromInt(3500),
			"pendant":  decimal.NewFromInt(2500),
			"bracelet": decimal.NewFromInt(4000),
			"chain":    decimal.NewFromInt(2000),
		},
		DefaultLabour: decimal.NewFromInt(3000),
		Enhancements: map[product.Enhancement]decimal.Decimal{
			product.Engraving:       decimal.NewFromInt(1500),
			product.GemstoneSetting: decimal.NewFromInt(5000),
			product.Polishing:       decimal.NewFromInt(800),
			product.GiftWrap:        decimal.NewFromInt(300),
		},
	}
}

// Pricing quotes crafted items. Quotes are for display only and never stored
// with an order.
//
// price = weight * purity/1000 * pure metal rate + labour + sum(enhancements)
//
// rounded to two decimal places.
type Pricing struct {
	rates Rates
}

func NewPricing(rates Rates) Pricing {
	return Pricing{rates: rates}
}

func (p Pricing) Price(req PriceRequest) (decimal.Decimal, error) {
	metalRate, ok := p.rates.PureMetalPerGram[req.Material]
	if err := errors.Join(
		req.Material.Validate(),
		p.validateRate(ok, req.Material),
		p.validatePurity(req.Purity),
		p.validateWeight(req.WeightGrams),
	); err != nil {
		return decimal.Zero, err
	}

	fineness := decimal.NewFromInt(int64(req.Purity)).Div(decimal.NewFromInt(1000))
	price := req.WeightGrams.Mul(fineness).Mul(metalRate)

	labour, ok := p.rates.Labour[strings.ToLower(strings.TrimSpace(req.Type))]
	if !ok {
		labour = p.rates.DefaultLabour
	}
	price = price.Add(labour)

	seen := make([]product.Enhancement, 0, len(req.Enhancements))
	for _, e := range req.Enhancements {
		if err := e.Validate(); err != nil {
			return decimal.Zero, err
		}
		if slices.Contains(seen, e) {
			continue
		}
		seen = append(seen, e)
		price = price.Add(p.rates.Enhancements[e])
	}

	return price.Round(2), nil
}

func (p Pricing) validateRate(ok bool, m product.Material) error {
	if ok || m.Validate() != nil {
		return nil
	}
	return errs.NewValueIsInvalidError("no rate for material " + m.String())
}

func (p Pricing) validatePurity(purity int) error {
	if purity < 1 || purity > 999 {
		return errs.NewValueIsOutOfRangeError("purity", purity, 1, 999)
	}
	return nil
}

func (p Pricing) validateWeight(w decimal.Decimal) error {
	if !w.IsPositive() {
		return ErrWeightIsInvalid
	}
	return nil
}
