package order

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want Status
	}{
		{"Canonical", `"preparing"`, StatusPreparing},
		{"Uppercase is normalized", `"PENDING"`, StatusPending},
		{"Legacy ready maps to on_way", `"ready"`, StatusOnWay},
		{"Whitespace trimmed", `" completed "`, StatusCompleted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var s Status
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &s))
			assert.Equal(t, tc.want, s)
		})
	}

	t.Run("Unknown value passes through", func(t *testing.T) {
		var s Status
		require.NoError(t, json.Unmarshal([]byte(`"frozen"`), &s))
		assert.Equal(t, Status("frozen"), s)
		assert.False(t, s.Known())
	})
}

func TestStatus_Known(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusPreparing, StatusOnWay, StatusCompleted, StatusCancelled} {
		assert.True(t, s.Known(), string(s))
	}
	assert.False(t, Status("ready").Known())
}

func TestPaymentMethod_Valid(t *testing.T) {
	assert.True(t, PayCash.Valid())
	assert.True(t, PayCard.Valid())
	assert.True(t, PayOnline.Valid())
	assert.False(t, PaymentMethod("bitcoin").Valid())
	assert.False(t, PaymentMethod("").Valid())
}

func TestOrder_VerifyTotal(t *testing.T) {
	o := Order{
		Items: []Item{
			{ID: "dish-1", Price: 35, Quantity: 2},
			{ID: "dish-2", Price: 50, Quantity: 1},
		},
		TotalAmount: 120,
	}
	assert.True(t, o.VerifyTotal())

	o.TotalAmount = 125
	assert.False(t, o.VerifyTotal())

	// Small floating point drift is tolerated.
	o.TotalAmount = 120.001
	assert.True(t, o.VerifyTotal())
}

func TestOrder_DecodesUpstreamPayload(t *testing.T) {
	payload := `{
		"id": "ord-1",
		"items": [{"id":"dish-1","name":"Koshari","price":35,"quantity":2}],
		"total_amount": 70,
		"status": "ready",
		"payment_status": "unpaid",
		"customer_info": {"name":"Sara","phone":"0100000000"},
		"created_at": "2025-05-01T10:00:00Z",
		"updated_at": "2025-05-01T10:05:00Z"
	}`

	var o Order
	require.NoError(t, json.Unmarshal([]byte(payload), &o))

	assert.Equal(t, "ord-1", o.ID)
	assert.Equal(t, StatusOnWay, o.Status)
	assert.Equal(t, PaymentUnpaid, o.PaymentStatus)
	require.NotNil(t, o.CustomerInfo)
	assert.Equal(t, "Sara", o.CustomerInfo.Name)
	assert.True(t, o.VerifyTotal())
}
