package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderTypeIsValid(t *testing.T) {
	assert.True(t, OrderTypeDelivery.IsValid())
	assert.True(t, OrderTypeTakeAway.IsValid())
	assert.True(t, OrderTypeDineIn.IsValid())
	assert.False(t, OrderType(0).IsValid())
	assert.False(t, OrderType(4).IsValid())
}

func TestOrderStatusJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(OrderStatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, `"Preparing"`, string(data))

	var s OrderStatus
	require.NoError(t, json.Unmarshal([]byte(`"Cancel"`), &s))
	assert.Equal(t, OrderStatusCancel, s)

	// Numeric form is accepted too
	require.NoError(t, json.Unmarshal([]byte(`2`), &s))
	assert.Equal(t, OrderStatusReady, s)
}

func TestReservationStatusString(t *testing.T) {
	assert.Equal(t, "Pending", ReservationStatusPending.String())
	assert.Equal(t, "Confirmed", ReservationStatusConfirmed.String())
	assert.Equal(t, "Seated", ReservationStatusSeated.String())
	assert.Equal(t, "Complete", ReservationStatusComplete.String())
	assert.Equal(t, "Cancel", ReservationStatusCancel.String())
	assert.Equal(t, "NoShow", ReservationStatusNoShow.String())
}

func TestPurchaseStatusJSON(t *testing.T) {
	data, err := json.Marshal(PurchaseStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, `"Approved"`, string(data))

	var s PurchaseStatus
	require.NoError(t, json.Unmarshal([]byte(`"Cancel"`), &s))
	assert.Equal(t, PurchaseStatusCancel, s)
}

func TestDiscountScopeString(t *testing.T) {
	assert.Equal(t, "Total", DiscountScopeTotal.String())
	assert.Equal(t, "Line", DiscountScopeLine.String())
}
