// Package pricing implements the quote pricing engine: subtotal, discount,
// prorated tax and total for a set of quote line items. All functions are
// pure and safe to call on every edit of a quote draft.
package pricing

import (
	"github.com/shopspring/decimal"
)

// DiscountType identifies the discount rule applied to a quote.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed_amount"
	DiscountBOGO       DiscountType = "bogo"
)

// LineItem is a single priced entry on a quote draft.
type LineItem struct {
	Name      string
	TierName  string
	UnitPrice decimal.Decimal
	Quantity  int
	Taxable   bool
	Sessions  int // informational only, never used in arithmetic
}

// Discount is the pricing-relevant slice of a discount definition.
// A nil *Discount means no discount is selected.
type Discount struct {
	Type  DiscountType
	Value decimal.Decimal
}

// Breakdown is the computed pricing snapshot for a quote.
type Breakdown struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	Total          decimal.Decimal `json:"total"`
}

var oneHundred = decimal.NewFromInt(100)

func lineTotal(item LineItem) decimal.Decimal {
	return item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// Subtotal returns the sum of unit price times quantity over all items.
// An empty slice yields zero.
func Subtotal(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(lineTotal(item))
	}
	return sum
}

// DiscountAmount returns the currency amount the discount removes from the
// subtotal. The result is always within [0, subtotal]: a fixed discount
// larger than the subtotal is clamped, and a percentage is clamped the same
// way so a misconfigured value above 100 can never drive the total negative.
//
// BOGO discounts are selectable but have no arithmetic path and contribute
// zero; the line items carried over from the catalog already reflect any
// complimentary sessions.
func DiscountAmount(items []LineItem, discount *Discount) decimal.Decimal {
	if discount == nil {
		return decimal.Zero
	}

	subtotal := Subtotal(items)

	var amount decimal.Decimal
	switch discount.Type {
	case DiscountPercentage:
		amount = subtotal.Mul(discount.Value).Div(oneHundred)
	case DiscountFixed:
		amount = discount.Value
	default:
		return decimal.Zero
	}

	if amount.IsNegative() {
		return decimal.Zero
	}
	if amount.GreaterThan(subtotal) {
		return subtotal
	}
	return amount
}

// TaxableAmount returns the pre-discount sum over taxable items only.
func TaxableAmount(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		if item.Taxable {
			sum = sum.Add(lineTotal(item))
		}
	}
	return sum
}

// Tax computes the tax charged on the discounted taxable portion of the
// quote. The discount is prorated across taxable and non-taxable items by
// the ratio taxableAmount/subtotal rather than being applied to either
// class first:
//
//	taxableAfterDiscount = (subtotal - discount) * taxableAmount/subtotal
//	tax                  = taxableAfterDiscount * rate/100
//
// A zero subtotal forces the ratio (and therefore the tax) to zero.
func Tax(items []LineItem, discount *Discount, taxRatePercent decimal.Decimal) decimal.Decimal {
	subtotal := Subtotal(items)
	if !subtotal.IsPositive() {
		return decimal.Zero
	}

	discountAmount := DiscountAmount(items, discount)
	subtotalAfterDiscount := subtotal.Sub(discountAmount)

	taxableRatio := TaxableAmount(items).Div(subtotal)
	taxableAfterDiscount := subtotalAfterDiscount.Mul(taxableRatio)

	return taxableAfterDiscount.Mul(taxRatePercent).Div(oneHundred)
}

// Total returns subtotal - discount + tax, recomputed from scratch so the
// result is always consistent with its components.
func Total(items []LineItem, discount *Discount, taxRatePercent decimal.Decimal) decimal.Decimal {
	return Subtotal(items).
		Sub(DiscountAmount(items, discount)).
		Add(Tax(items, discount, taxRatePercent))
}

// HasTaxableItems reports whether any line item is taxable. A quote with
// taxable items must carry a clinic location (for the tax rate) before it
// can be saved; that check lives at the save boundary, not here.
func HasTaxableItems(items []LineItem) bool {
	for _, item := range items {
		if item.Taxable {
			return true
		}
	}
	return false
}

// Compute produces the full breakdown with every component rounded to
// currency precision. Total is derived from the rounded components, so
// Total == Subtotal - DiscountAmount + TaxAmount holds exactly.
func Compute(items []LineItem, discount *Discount, taxRatePercent decimal.Decimal) Breakdown {
	subtotal := Subtotal(items).Round(2)
	discountAmount := DiscountAmount(items, discount).Round(2)
	tax := Tax(items, discount, taxRatePercent).Round(2)

	return Breakdown{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TaxAmount:      tax,
		Total:          subtotal.Sub(discountAmount).Add(tax),
	}
}

// ClampQuantity normalizes staff input to the valid domain: anything below
// one becomes one.
func ClampQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}
	return quantity
}

// ClampUnitPrice normalizes staff input to the valid domain: negative
// prices become zero.
func ClampUnitPrice(price decimal.Decimal) decimal.Decimal {
	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}
