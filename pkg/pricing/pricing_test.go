package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func item(price string, qty int, taxable bool) LineItem {
	return LineItem{Name: "item", UnitPrice: d(price), Quantity: qty, Taxable: taxable}
}

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name     string
		items    []LineItem
		expected string
	}{
		{name: "empty yields zero", items: nil, expected: "0"},
		{name: "single item", items: []LineItem{item("49.99", 3, true)}, expected: "149.97"},
		{
			name: "mixed items",
			items: []LineItem{
				item("100", 2, true),
				item("25.50", 1, false),
			},
			expected: "225.50",
		},
		{name: "zero price item", items: []LineItem{item("0", 5, true)}, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Subtotal(tt.items).Equal(d(tt.expected)),
				"got %s", Subtotal(tt.items))
		})
	}
}

func TestDiscountAmount(t *testing.T) {
	items := []LineItem{item("100", 2, true)} // subtotal 200

	tests := []struct {
		name     string
		discount *Discount
		expected string
	}{
		{name: "no discount", discount: nil, expected: "0"},
		{name: "percentage", discount: &Discount{Type: DiscountPercentage, Value: d("10")}, expected: "20"},
		{name: "fixed amount", discount: &Discount{Type: DiscountFixed, Value: d("35")}, expected: "35"},
		{name: "fixed clamps to subtotal", discount: &Discount{Type: DiscountFixed, Value: d("500")}, expected: "200"},
		{name: "percentage above 100 clamps to subtotal", discount: &Discount{Type: DiscountPercentage, Value: d("150")}, expected: "200"},
		{name: "negative value clamps to zero", discount: &Discount{Type: DiscountFixed, Value: d("-10")}, expected: "0"},
		{name: "bogo contributes nothing", discount: &Discount{Type: DiscountBOGO, Value: d("1")}, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscountAmount(items, tt.discount)
			assert.True(t, got.Equal(d(tt.expected)), "got %s", got)
		})
	}
}

func TestDiscountAmountBounds(t *testing.T) {
	// The guarantee: result is within [0, subtotal] for any configuration.
	items := []LineItem{item("19.99", 3, true), item("5", 1, false)}
	subtotal := Subtotal(items)

	discounts := []*Discount{
		nil,
		{Type: DiscountPercentage, Value: d("0")},
		{Type: DiscountPercentage, Value: d("33.3")},
		{Type: DiscountPercentage, Value: d("100")},
		{Type: DiscountPercentage, Value: d("250")},
		{Type: DiscountFixed, Value: d("0.01")},
		{Type: DiscountFixed, Value: d("64.97")},
		{Type: DiscountFixed, Value: d("1000000")},
		{Type: DiscountFixed, Value: d("-50")},
		{Type: DiscountBOGO, Value: d("50")},
	}

	for _, disc := range discounts {
		got := DiscountAmount(items, disc)
		assert.False(t, got.IsNegative(), "discount %v went negative: %s", disc, got)
		assert.True(t, got.LessThanOrEqual(subtotal), "discount %v exceeds subtotal: %s", disc, got)
	}
}

func TestTaxZeroSubtotal(t *testing.T) {
	// No divide-by-zero: zero subtotal means zero tax at any rate.
	assert.True(t, Tax(nil, nil, d("8.5")).IsZero())
	assert.True(t, Tax([]LineItem{item("0", 1, true)}, nil, d("100")).IsZero())
}

func TestTaxProration(t *testing.T) {
	// When exactly half of the subtotal is taxable, the tax equals half of
	// what a fully taxable quote would pay. This pins the ratio step.
	half := []LineItem{
		item("100", 1, true),
		item("100", 1, false),
	}
	full := []LineItem{
		item("100", 1, true),
		item("100", 1, true),
	}
	discount := &Discount{Type: DiscountPercentage, Value: d("10")}
	rate := d("10")

	halfTax := Tax(half, discount, rate)
	fullTax := Tax(full, discount, rate)

	require.False(t, fullTax.IsZero())
	assert.True(t, halfTax.Mul(decimal.NewFromInt(2)).Equal(fullTax),
		"half %s, full %s", halfTax, fullTax)
}

func TestTotalConsistency(t *testing.T) {
	items := []LineItem{
		item("149.99", 2, true),
		item("80", 1, false),
		item("12.25", 4, true),
	}
	discount := &Discount{Type: DiscountFixed, Value: d("45")}
	rate := d("7.25")

	total := Total(items, discount, rate)
	expected := Subtotal(items).
		Sub(DiscountAmount(items, discount)).
		Add(Tax(items, discount, rate))
	assert.True(t, total.Equal(expected))

	// Same law over the rounded breakdown.
	b := Compute(items, discount, rate)
	assert.True(t, b.Total.Equal(b.Subtotal.Sub(b.DiscountAmount).Add(b.TaxAmount)))
}

func TestComputeScenarios(t *testing.T) {
	tests := []struct {
		name     string
		items    []LineItem
		discount *Discount
		rate     string
		expected Breakdown
	}{
		{
			name:  "taxable item no discount",
			items: []LineItem{item("100", 2, true)},
			rate:  "7",
			expected: Breakdown{
				Subtotal:       d("200"),
				DiscountAmount: d("0"),
				TaxAmount:      d("14.00"),
				Total:          d("214.00"),
			},
		},
		{
			name: "mixed taxability with percentage discount",
			items: []LineItem{
				item("100", 1, true),
				item("100", 1, false),
			},
			discount: &Discount{Type: DiscountPercentage, Value: d("10")},
			rate:     "10",
			expected: Breakdown{
				Subtotal:       d("200"),
				DiscountAmount: d("20"),
				TaxAmount:      d("9.00"),
				Total:          d("189.00"),
			},
		},
		{
			name:     "fixed discount larger than subtotal",
			items:    []LineItem{item("50", 1, false)},
			discount: &Discount{Type: DiscountFixed, Value: d("100")},
			rate:     "8",
			expected: Breakdown{
				Subtotal:       d("50"),
				DiscountAmount: d("50"),
				TaxAmount:      d("0"),
				Total:          d("0.00"),
			},
		},
		{
			name:  "empty draft",
			items: nil,
			rate:  "9.5",
			expected: Breakdown{
				Subtotal:       d("0"),
				DiscountAmount: d("0"),
				TaxAmount:      d("0"),
				Total:          d("0"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.items, tt.discount, d(tt.rate))
			assert.True(t, got.Subtotal.Equal(tt.expected.Subtotal), "subtotal %s", got.Subtotal)
			assert.True(t, got.DiscountAmount.Equal(tt.expected.DiscountAmount), "discount %s", got.DiscountAmount)
			assert.True(t, got.TaxAmount.Equal(tt.expected.TaxAmount), "tax %s", got.TaxAmount)
			assert.True(t, got.Total.Equal(tt.expected.Total), "total %s", got.Total)
		})
	}
}

func TestHasTaxableItems(t *testing.T) {
	assert.False(t, HasTaxableItems(nil))
	assert.False(t, HasTaxableItems([]LineItem{item("10", 1, false)}))
	assert.True(t, HasTaxableItems([]LineItem{
		item("10", 1, false),
		item("10", 1, true),
	}))
}

func TestClamping(t *testing.T) {
	assert.Equal(t, 1, ClampQuantity(0))
	assert.Equal(t, 1, ClampQuantity(-7))
	assert.Equal(t, 3, ClampQuantity(3))

	assert.True(t, ClampUnitPrice(d("-12.50")).IsZero())
	assert.True(t, ClampUnitPrice(d("12.50")).Equal(d("12.50")))
	assert.True(t, ClampUnitPrice(d("0")).IsZero())
}

func TestMissingTaxRateTreatedAsZero(t *testing.T) {
	// decimal.Decimal's zero value is 0, so an unset rate charges no tax.
	var rate decimal.Decimal
	items := []LineItem{item("100", 1, true)}
	assert.True(t, Tax(items, nil, rate).IsZero())
	assert.True(t, Total(items, nil, rate).Equal(d("100")))
}
