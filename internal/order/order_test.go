package order

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/model"
)

func TestStatusLabel(t *testing.T) {
	tests := map[Status]string{
		StatusPending:    "Pending",
		StatusProcessing: "Processing",
		StatusShipped:    "Shipped",
		StatusCompleted:  "Completed",
		StatusCancelled:  "Cancelled",
		"refunded":       "Unlabeled",
		"":               "Unlabeled",
		"PENDING":        "Unlabeled",
	}

	for status, want := range tests {
		t.Run(string(status), func(t *testing.T) {
			assert.Equal(t, want, status.Label())
			assert.Equal(t, want != "Unlabeled", status.Known())
		})
	}
}

func TestDecodeOrderFromBackend(t *testing.T) {
	body := `{
		"id": 12,
		"customer_name": "Ada",
		"customer_email": "ada@example.com",
		"customer_address": "1 Loop St",
		"total_amount": 75.0,
		"status": "on_hold",
		"created_at": "2024-03-01T10:15:30.123456",
		"items": [
			{"id": 1, "product_id": 7, "quantity": 3, "price": 25.0,
			 "product": {"id": 7, "name": "Lamp", "description": "", "price": 25.0, "category": "Home", "stock": 2, "created_at": "2024-01-01T00:00:00"}},
			{"id": 2, "product_id": 9, "quantity": 1, "price": 0}
		]
	}`

	var o Order
	require.NoError(t, json.Unmarshal([]byte(body), &o))

	assert.Equal(t, int64(12), o.ID)
	assert.Equal(t, Status("on_hold"), o.Status)
	assert.Equal(t, "Unlabeled", o.Status.Label())
	assert.True(t, o.TotalAmount.Equal(decimal.NewFromInt(75)))
	assert.Equal(t, time.Date(2024, 3, 1, 10, 15, 30, 123456000, time.UTC), o.CreatedAt.Time)
	require.Len(t, o.Items, 2)
	assert.Equal(t, "Lamp", o.Items[0].DisplayName())
	assert.Equal(t, "Product #9", o.Items[1].DisplayName())
	assert.True(t, o.Items[0].Subtotal().Equal(decimal.NewFromInt(75)))
	assert.Equal(t, 4, o.ItemCount())

	out, err := json.Marshal(o)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"status":"on_hold"`)
}

func TestTimeline(t *testing.T) {
	done := func(o Order) []bool {
		var out []bool
		for _, s := range o.Timeline() {
			out = append(out, s.Done)
		}
		return out
	}

	tests := map[Status][]bool{
		StatusPending:    {true, false, false, false},
		StatusProcessing: {true, true, false, false},
		StatusShipped:    {true, true, true, false},
		StatusCompleted:  {true, true, true, true},
		StatusCancelled:  {true, true, false, false},
		"mystery":        {true, true, false, false},
	}

	for status, want := range tests {
		t.Run(string(status), func(t *testing.T) {
			assert.Equal(t, want, done(Order{Status: status}))
		})
	}

	t.Run("captions", func(t *testing.T) {
		o := Order{
			Status:    StatusShipped,
			CreatedAt: model.NewTimestamp(time.Date(2024, 5, 6, 14, 30, 0, 0, time.UTC)),
		}
		steps := o.Timeline()
		require.Len(t, steps, 4)
		assert.Equal(t, "May 6, 2024 02:30 PM", steps[0].Caption)
		assert.Equal(t, "Your order is being processed", steps[1].Caption)
		assert.Equal(t, "Your order has been shipped", steps[2].Caption)
		assert.Equal(t, "Not yet delivered", steps[3].Caption)
	})
}

func TestSubmissionPricesAreNumbers(t *testing.T) {
	s := Submission{
		CustomerName:    "Ada",
		CustomerEmail:   "ada@example.com",
		CustomerAddress: "1 Loop St",
		Items:           []SubmissionItem{NewSubmissionItem(7, 3, decimal.RequireFromString("25.00"))},
	}

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"customer_name": "Ada",
		"customer_email": "ada@example.com",
		"customer_address": "1 Loop St",
		"items": [{"product_id": 7, "quantity": 3, "price": 25}]
	}`, string(out))
}

func TestItemDisplayNameWithEmptySnapshot(t *testing.T) {
	it := Item{ProductID: 3, Product: &catalog.Product{ID: 3}}
	assert.Equal(t, "Product #3", it.DisplayName())
}
