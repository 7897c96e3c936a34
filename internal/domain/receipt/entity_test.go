//go:build unit

package receipt_test

import (
	"errors"
	"testing"

	"receipt-points/internal/domain/receipt"
	"receipt-points/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReceipt(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		rec, err := builder.NewReceiptBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, rec)

		assert.Equal(t, "M&M Corner Market", rec.Retailer().String())
		assert.Equal(t, "2022-03-20", rec.PurchaseDate().String())
		assert.Equal(t, "14:33", rec.PurchaseTime().String())
		assert.Equal(t, "9.00", rec.Total().String())
		assert.Len(t, rec.Items(), 4)
	})

	t.Run("snapshot round trip", func(t *testing.T) {
		rec, err := builder.NewReceiptBuilder().BuildDomain()
		require.NoError(t, err)

		snap := rec.Snapshot()
		rebuilt, err := receipt.FromSnapshot(snap)
		require.NoError(t, err)

		if diff := cmp.Diff(snap, rebuilt.Snapshot()); diff != "" {
			t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, rec.Points(), rebuilt.Points())
	})
}

func TestRetailerValidation(t *testing.T) {
	valid := []string{"Target", "M&M Corner Market", "A-1 Liquor_Store", "Café München"}
	for _, v := range valid {
		t.Run("valid: "+v, func(t *testing.T) {
			_, err := builder.NewReceiptBuilder().WithRetailer(v).BuildDomain()
			assert.NoError(t, err)
		})
	}

	invalid := []string{"", "Target^^", "Shop!", "a.b", "store@home"}
	for _, v := range invalid {
		t.Run("invalid: "+v, func(t *testing.T) {
			_, err := builder.NewReceiptBuilder().WithRetailer(v).BuildDomain()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "retailer")
		})
	}
}

func TestPurchaseDateValidation(t *testing.T) {
	accepted := []string{
		"March 20, 2022",
		"20 March 2022",
		"03/20/2022",
		"2022-03-20",
		"20 03 22",
		"20 03 2022",
	}
	for _, v := range accepted {
		t.Run("accepted: "+v, func(t *testing.T) {
			_, err := builder.NewReceiptBuilder().WithPurchaseDate(v).BuildDomain()
			assert.NoError(t, err)
		})
	}

	rejected := []string{"", "20220320", "2022/03/20", "March 20 2022", "32 01 2022", "yesterday"}
	for _, v := range rejected {
		t.Run("rejected: "+v, func(t *testing.T) {
			_, err := builder.NewReceiptBuilder().WithPurchaseDate(v).BuildDomain()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "purchaseDate")
			assert.Contains(t, err.Error(), "2022-01-01", "failure message should enumerate example formats")
		})
	}
}

func TestPurchaseTimeValidation(t *testing.T) {
	valid := []string{"00:00", "08:13", "13:01", "23:59"}
	for _, v := range valid {
		t.Run("valid: "+v, func(t *testing.T) {
			_, err := builder.NewReceiptBuilder().WithPurchaseTime(v).BuildDomain()
			assert.NoError(t, err)
		})
	}

	invalid := []string{"", "24:00", "14:60", "14:5", "1:05", "2pm", "14-33"}
	for _, v := range invalid {
		t.Run("invalid: "+v, func(t *testing.T) {
			_, err := builder.NewReceiptBuilder().WithPurchaseTime(v).BuildDomain()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "purchaseTime")
		})
	}
}

func TestAmountValidation(t *testing.T) {
	valid := []string{"0.00", "9.00", "1234.56"}
	for _, v := range valid {
		t.Run("valid: "+v, func(t *testing.T) {
			_, err := builder.NewReceiptBuilder().WithTotal(v).BuildDomain()
			assert.NoError(t, err)
		})
	}

	invalid := []string{"", "9", "9.0", "9.000", "-9.00", ".99", "9,00"}
	for _, v := range invalid {
		t.Run("invalid: "+v, func(t *testing.T) {
			_, err := builder.NewReceiptBuilder().WithTotal(v).BuildDomain()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "total")
		})
	}
}

func TestItemsValidation(t *testing.T) {
	t.Run("empty items rejected", func(t *testing.T) {
		_, err := builder.NewReceiptBuilder().WithItems().BuildDomain()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "items must contain at least one item")
	})

	t.Run("item violations carry their index", func(t *testing.T) {
		_, err := builder.NewReceiptBuilder().WithItems(
			receipt.ItemInput{ShortDescription: "Gatorade", Price: "2.25"},
			receipt.ItemInput{ShortDescription: "Bad!Item", Price: "2.5"},
		).BuildDomain()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "items[1].shortDescription")
		assert.Contains(t, err.Error(), "items[1].price")
	})
}

func TestViolationAggregation(t *testing.T) {
	_, err := builder.NewReceiptBuilder().
		WithRetailer("Target^^").
		WithPurchaseDate("not a date").
		WithPurchaseTime("25:99").
		WithTotal("9.9").
		WithItems().
		BuildDomain()
	require.Error(t, err)

	var vErr *receipt.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Violations(), 5, "every violation from one submission is reported")

	msg := err.Error()
	for _, field := range []string{"retailer", "purchaseDate", "purchaseTime", "total", "items"} {
		assert.Contains(t, msg, field)
	}
}
