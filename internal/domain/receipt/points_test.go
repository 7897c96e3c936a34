//go:build unit

package receipt_test

import (
	"testing"

	"receipt-points/internal/domain/receipt"
	"receipt-points/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// neutralBuilder returns a receipt where every rule scores zero: a retailer
// with no alphanumerics, a total that is neither round nor a quarter
// multiple, one item whose trimmed description length is not a multiple of
// three, and a purchase time outside the afternoon window.
func neutralBuilder() *builder.ReceiptBuilder {
	return builder.NewReceiptBuilder().
		WithRetailer("-").
		WithPurchaseDate("2022-01-02").
		WithPurchaseTime("13:01").
		WithItems(receipt.ItemInput{ShortDescription: "Pepsi", Price: "1.13"}).
		WithTotal("1.13")
}

func points(t *testing.T, b *builder.ReceiptBuilder) int {
	t.Helper()
	rec, err := b.BuildDomain()
	require.NoError(t, err)
	return rec.Points()
}

func TestPointsDeterminism(t *testing.T) {
	rec, err := builder.NewReceiptBuilder().BuildDomain()
	require.NoError(t, err)

	first := rec.Points()
	for range 5 {
		assert.Equal(t, first, rec.Points())
	}
}

func TestRetailerRule(t *testing.T) {
	cases := []struct {
		name     string
		retailer string
		expected int
	}{
		{name: "mixed punctuation and letters", retailer: "M&M Corner Market", expected: 14},
		{name: "plain word", retailer: "Target", expected: 6},
		{name: "digits count", retailer: "Store 24", expected: 7},
		{name: "hyphens and spaces earn nothing", retailer: "- - -", expected: 0},
		{name: "non-latin letters count", retailer: "Café München", expected: 11},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := points(t, neutralBuilder().WithRetailer(tc.retailer))
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestTotalRules(t *testing.T) {
	cases := []struct {
		name     string
		total    string
		expected int
	}{
		{name: "round dollar fires both rules", total: "9.00", expected: 75},
		{name: "quarter multiple only", total: "35.25", expected: 25},
		{name: "neither", total: "35.35", expected: 0},
		{name: "zero total is round and quarter", total: "0.00", expected: 75},
		{name: "cent boundary stays exact", total: "100.00", expected: 75},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := points(t, neutralBuilder().WithTotal(tc.total))
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestItemCountRule(t *testing.T) {
	item := receipt.ItemInput{ShortDescription: "Pepsi", Price: "1.13"}

	cases := []struct {
		name     string
		count    int
		expected int
	}{
		{name: "single item earns nothing", count: 1, expected: 0},
		{name: "one pair", count: 2, expected: 5},
		{name: "two pairs", count: 4, expected: 10},
		{name: "odd leftover earns nothing", count: 5, expected: 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := make([]receipt.ItemInput, tc.count)
			for i := range items {
				items[i] = item
			}
			got := points(t, neutralBuilder().WithItems(items...))
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestDescriptionRule(t *testing.T) {
	cases := []struct {
		name        string
		description string
		price       string
		expected    int
	}{
		{name: "length not a multiple of three", description: "Gatorade", price: "2.25", expected: 0},
		{name: "multiple of three rounds up", description: "Emils Cheese Pizza", price: "12.25", expected: 3},
		{name: "outer whitespace trimmed, interior counted", description: "   Klarbrunn 12-PK 12 FL OZ  ", price: "12.00", expected: 3},
		{name: "exact multiple still ceils to itself", description: "abc", price: "5.00", expected: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := points(t, neutralBuilder().
				WithItems(receipt.ItemInput{ShortDescription: tc.description, Price: tc.price}))
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestTimeOfDayRule(t *testing.T) {
	cases := []struct {
		name     string
		time     string
		expected int
	}{
		{name: "inside the window", time: "14:33", expected: 10},
		{name: "start boundary excluded", time: "14:00", expected: 0},
		{name: "end boundary excluded", time: "16:00", expected: 0},
		{name: "just after start", time: "14:01", expected: 10},
		{name: "just before end", time: "15:59", expected: 10},
		{name: "morning", time: "08:13", expected: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := points(t, neutralBuilder().WithPurchaseTime(tc.time))
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestFullReceipts(t *testing.T) {
	t.Run("corner market, four gatorades", func(t *testing.T) {
		// retailer 14 + round/quarter 75 + two pairs 10 + afternoon 10
		assert.Equal(t, 109, points(t, builder.NewReceiptBuilder()))
	})

	t.Run("target, five items", func(t *testing.T) {
		b := builder.NewReceiptBuilder().
			WithRetailer("Target").
			WithPurchaseDate("2022-01-01").
			WithPurchaseTime("13:01").
			WithTotal("35.35").
			WithItems(
				receipt.ItemInput{ShortDescription: "Mountain Dew 12PK", Price: "6.49"},
				receipt.ItemInput{ShortDescription: "Emils Cheese Pizza", Price: "12.25"},
				receipt.ItemInput{ShortDescription: "Knorr Creamy Chicken", Price: "1.26"},
				receipt.ItemInput{ShortDescription: "Doritos Nacho Cheese", Price: "3.35"},
				receipt.ItemInput{ShortDescription: "   Klarbrunn 12-PK 12 FL OZ  ", Price: "12.00"},
			)
		// retailer 6 + two pairs 10 + descriptions 3+3
		assert.Equal(t, 22, points(t, b))
	})

	t.Run("walgreens, two items", func(t *testing.T) {
		b := builder.NewReceiptBuilder().
			WithRetailer("Walgreens").
			WithPurchaseDate("2022-01-02").
			WithPurchaseTime("08:13").
			WithTotal("2.65").
			WithItems(
				receipt.ItemInput{ShortDescription: "Pepsi - 12-oz", Price: "1.25"},
				receipt.ItemInput{ShortDescription: "Dasani", Price: "1.40"},
			)
		// retailer 9 + one pair 5 + Dasani ceil(0.28)=1
		assert.Equal(t, 15, points(t, b))
	})

	t.Run("target, single item", func(t *testing.T) {
		b := builder.NewReceiptBuilder().
			WithRetailer("Target").
			WithPurchaseDate("2022-01-02").
			WithPurchaseTime("13:13").
			WithTotal("1.25").
			WithItems(receipt.ItemInput{ShortDescription: "Pepsi - 12-oz", Price: "1.25"})
		// retailer 6 + quarter multiple 25
		assert.Equal(t, 31, points(t, b))
	})
}
