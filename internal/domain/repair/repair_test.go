package repair

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "fixtrack/internal/domain/repair/valueobjects"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newValidRepair(t *testing.T) *Repair {
	t.Helper()
	r, err := NewRepair("Ahmed Hassan", "iPhone 12", "broken screen", "black", "01001234567",
		decimal.NewFromInt(500), nil, nil, "", 1)
	require.NoError(t, err)
	return r
}

func repairInStatus(t *testing.T, status vo.RepairStatus) *Repair {
	t.Helper()
	r := newValidRepair(t)
	switch status {
	case vo.StatusPending:
	case vo.StatusInProgress:
		require.NoError(t, r.ApplyTransition(TransitionRequest{Status: vo.StatusInProgress}, 1, time.Now().UTC()))
	case vo.StatusCompleted:
		require.NoError(t, r.ApplyTransition(TransitionRequest{Status: vo.StatusCompleted}, 1, time.Now().UTC()))
	case vo.StatusDelivered:
		require.NoError(t, r.ApplyTransition(TransitionRequest{Status: vo.StatusDelivered}, 1, time.Now().UTC()))
	case vo.StatusRejected:
		loc := vo.LocationAtShop
		require.NoError(t, r.ApplyTransition(TransitionRequest{Status: vo.StatusRejected, RejectedLocation: &loc}, 1, time.Now().UTC()))
	case vo.StatusReturned:
		require.NoError(t, r.ApplyTransition(TransitionRequest{Status: vo.StatusDelivered}, 1, time.Now().UTC()))
		require.NoError(t, r.ApplyTransition(TransitionRequest{Status: vo.StatusReturned}, 1, time.Now().UTC()))
	}
	return r
}

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func strPtr(s string) *string { return &s }

// ---------------------------------------------------------------------------
// Constructor
// ---------------------------------------------------------------------------

func TestNewRepair(t *testing.T) {
	t.Run("valid input starts pending", func(t *testing.T) {
		r := newValidRepair(t)
		assert.Equal(t, vo.StatusPending, r.Status())
		assert.Nil(t, r.FinalPrice())
		assert.Empty(t, r.Parts())
		assert.False(t, r.Returned())
	})

	t.Run("missing customer name", func(t *testing.T) {
		_, err := NewRepair("", "iPhone", "issue", "", "", decimal.Zero, nil, nil, "", 1)
		assert.Error(t, err)
	})

	t.Run("missing device type", func(t *testing.T) {
		_, err := NewRepair("Ahmed", "", "issue", "", "", decimal.Zero, nil, nil, "", 1)
		assert.Error(t, err)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := NewRepair("Ahmed", "iPhone", "issue", "", "", decimal.NewFromInt(-5), nil, nil, "", 1)
		assert.Error(t, err)
	})
}

// ---------------------------------------------------------------------------
// Transitions
// ---------------------------------------------------------------------------

func TestApplyTransition_Graph(t *testing.T) {
	tests := []struct {
		name    string
		from    vo.RepairStatus
		to      vo.RepairStatus
		wantErr error
	}{
		{"pending to in_progress", vo.StatusPending, vo.StatusInProgress, nil},
		{"pending to delivered", vo.StatusPending, vo.StatusDelivered, nil},
		{"in_progress back to pending", vo.StatusInProgress, vo.StatusPending, nil},
		{"completed to delivered", vo.StatusCompleted, vo.StatusDelivered, nil},
		{"delivered to returned", vo.StatusDelivered, vo.StatusReturned, nil},
		{"returned back to in_progress", vo.StatusReturned, vo.StatusInProgress, nil},
		{"delivered to pending blocked", vo.StatusDelivered, vo.StatusPending, ErrInvalidTransition},
		{"rejected is terminal", vo.StatusRejected, vo.StatusInProgress, ErrInvalidTransition},
		{"returned cannot reject", vo.StatusReturned, vo.StatusRejected, ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := repairInStatus(t, tt.from)
			loc := vo.LocationAtShop
			err := r.ApplyTransition(TransitionRequest{Status: tt.to, RejectedLocation: &loc}, 2, time.Now().UTC())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, r.Status())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.to, r.Status())
			}
		})
	}
}

func TestApplyTransition_UnknownStatus(t *testing.T) {
	r := newValidRepair(t)
	err := r.ApplyTransition(TransitionRequest{Status: vo.RepairStatus("smashed")}, 1, time.Now().UTC())
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestApplyTransition_ElevatedBypassesGraph(t *testing.T) {
	r := repairInStatus(t, vo.StatusRejected)
	err := r.ApplyTransition(TransitionRequest{Status: vo.StatusInProgress, Elevated: true}, 1, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusInProgress, r.Status())
}

func TestApplyTransition_TimestampsIdempotent(t *testing.T) {
	r := newValidRepair(t)
	first := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	later := first.Add(48 * time.Hour)

	require.NoError(t, r.ApplyTransition(TransitionRequest{Status: vo.StatusInProgress}, 1, first))
	require.NotNil(t, r.StartTime())
	assert.Equal(t, first, *r.StartTime())

	require.NoError(t, r.ApplyTransition(TransitionRequest{Status: vo.StatusPending}, 1, later))
	require.NoError(t, r.ApplyTransition(TransitionRequest{Status: vo.StatusInProgress}, 1, later))
	assert.Equal(t, first, *r.StartTime(), "re-entering in_progress must not reset start time")

	require.NoError(t, r.ApplyTransition(TransitionRequest{Status: vo.StatusCompleted}, 1, later))
	require.NotNil(t, r.EndTime())
	assert.Equal(t, later, *r.EndTime())
}

// ---------------------------------------------------------------------------
// Delivery
// ---------------------------------------------------------------------------

func TestApplyTransition_Delivery(t *testing.T) {
	t.Run("explicit final price wins", func(t *testing.T) {
		r := newValidRepair(t)
		err := r.ApplyTransition(TransitionRequest{Status: vo.StatusDelivered, FinalPrice: decPtr(650)}, 1, time.Now().UTC())
		require.NoError(t, err)
		require.NotNil(t, r.FinalPrice())
		assert.True(t, r.FinalPrice().Equal(decimal.NewFromInt(650)))
		assert.NotNil(t, r.DeliveryDate())
	})

	t.Run("falls back to quoted price", func(t *testing.T) {
		r := newValidRepair(t)
		err := r.ApplyTransition(TransitionRequest{Status: vo.StatusDelivered}, 1, time.Now().UTC())
		require.NoError(t, err)
		require.NotNil(t, r.FinalPrice())
		assert.True(t, r.FinalPrice().Equal(decimal.NewFromInt(500)))
	})

	t.Run("no usable price fails", func(t *testing.T) {
		r, err := NewRepair("Ahmed", "iPhone", "issue", "", "", decimal.Zero, nil, nil, "", 1)
		require.NoError(t, err)
		err = r.ApplyTransition(TransitionRequest{Status: vo.StatusDelivered}, 1, time.Now().UTC())
		assert.ErrorIs(t, err, ErrMissingPrice)
		assert.Equal(t, vo.StatusPending, r.Status())
	})

	t.Run("redelivery clears return flags", func(t *testing.T) {
		r := repairInStatus(t, vo.StatusReturned)
		assert.True(t, r.Returned())
		require.NotNil(t, r.ReturnDate())

		err := r.ApplyTransition(TransitionRequest{Status: vo.StatusDelivered}, 1, time.Now().UTC())
		require.NoError(t, err)
		assert.False(t, r.Returned())
		assert.Nil(t, r.ReturnDate())
	})

	t.Run("delivery records parts", func(t *testing.T) {
		r := newValidRepair(t)
		parts := []PartEntry{{Name: "screen", UnitCost: decimal.NewFromInt(200), Qty: 1}}
		err := r.ApplyTransition(TransitionRequest{Status: vo.StatusDelivered, FinalPrice: decPtr(650), Parts: parts}, 1, time.Now().UTC())
		require.NoError(t, err)
		require.Len(t, r.Parts(), 1)
		assert.Equal(t, "screen", r.Parts()[0].Name)
	})
}

// ---------------------------------------------------------------------------
// Rejection and return
// ---------------------------------------------------------------------------

func TestApplyTransition_Rejection(t *testing.T) {
	t.Run("requires device location", func(t *testing.T) {
		r := newValidRepair(t)
		err := r.ApplyTransition(TransitionRequest{Status: vo.StatusRejected}, 1, time.Now().UTC())
		assert.ErrorIs(t, err, ErrMissingLocation)
	})

	t.Run("stores provided location", func(t *testing.T) {
		r := newValidRepair(t)
		loc := vo.LocationWithCustomer
		err := r.ApplyTransition(TransitionRequest{Status: vo.StatusRejected, RejectedLocation: &loc}, 1, time.Now().UTC())
		require.NoError(t, err)
		require.NotNil(t, r.RejectedLocation())
		assert.Equal(t, vo.LocationWithCustomer, *r.RejectedLocation())
	})

	t.Run("elevated may reject without location", func(t *testing.T) {
		r := newValidRepair(t)
		err := r.ApplyTransition(TransitionRequest{Status: vo.StatusRejected, Elevated: true}, 1, time.Now().UTC())
		require.NoError(t, err)
		assert.Nil(t, r.RejectedLocation())
	})
}

func TestApplyTransition_Return(t *testing.T) {
	r := repairInStatus(t, vo.StatusDelivered)
	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, r.ApplyTransition(TransitionRequest{Status: vo.StatusReturned}, 1, now))
	assert.True(t, r.Returned())
	require.NotNil(t, r.ReturnDate())
	assert.Equal(t, now, *r.ReturnDate())
}

// ---------------------------------------------------------------------------
// Edits
// ---------------------------------------------------------------------------

func TestApplyEdit(t *testing.T) {
	t.Run("assigns provided fields only", func(t *testing.T) {
		r := newValidRepair(t)
		err := r.ApplyEdit(EditRequest{Notes: strPtr("water damage found"), FinalPrice: decPtr(700)}, 2, time.Now().UTC())
		require.NoError(t, err)
		assert.Equal(t, "water damage found", r.Notes())
		assert.Equal(t, "Ahmed Hassan", r.CustomerName())
		require.NotNil(t, r.FinalPrice())
		assert.True(t, r.FinalPrice().Equal(decimal.NewFromInt(700)))
		require.NotNil(t, r.UpdatedBy())
		assert.Equal(t, uint(2), *r.UpdatedBy())
	})

	t.Run("pricing frozen after delivery", func(t *testing.T) {
		r := repairInStatus(t, vo.StatusDelivered)
		err := r.ApplyEdit(EditRequest{FinalPrice: decPtr(1)}, 1, time.Now().UTC())
		assert.ErrorIs(t, err, ErrPricingFrozen)

		err = r.ApplyEdit(EditRequest{Parts: []PartEntry{{Name: "battery", UnitCost: decimal.NewFromInt(100), Qty: 1}}}, 1, time.Now().UTC())
		assert.ErrorIs(t, err, ErrPricingFrozen)

		err = r.ApplyEdit(EditRequest{Notes: strPtr("picked up by brother")}, 1, time.Now().UTC())
		assert.NoError(t, err, "non-pricing edits stay allowed after delivery")
	})

	t.Run("rejects empty customer name", func(t *testing.T) {
		r := newValidRepair(t)
		err := r.ApplyEdit(EditRequest{CustomerName: strPtr("")}, 1, time.Now().UTC())
		assert.Error(t, err)
	})
}

// ---------------------------------------------------------------------------
// Snapshot and visibility
// ---------------------------------------------------------------------------

func TestSnapshot(t *testing.T) {
	r := newValidRepair(t)
	before := r.Snapshot()
	assert.Equal(t, "pending", before["status"])
	_, hasFinal := before["finalPrice"]
	assert.False(t, hasFinal)

	require.NoError(t, r.ApplyTransition(TransitionRequest{Status: vo.StatusDelivered, FinalPrice: decPtr(650)}, 1, time.Now().UTC()))
	after := r.Snapshot()
	assert.Equal(t, "delivered", after["status"])
	assert.Equal(t, "650", after["finalPrice"])
	assert.NotEmpty(t, after["deliveryDate"])
}

func TestCanBeViewedBy(t *testing.T) {
	tech := uint(7)
	recipient := uint(9)
	r, err := NewRepair("Ahmed", "iPhone", "issue", "", "", decimal.NewFromInt(100), &tech, &recipient, "", 1)
	require.NoError(t, err)

	assert.True(t, r.CanBeViewedBy(3, true), "broad viewers see everything")
	assert.True(t, r.CanBeViewedBy(7, false), "assigned technician sees it")
	assert.True(t, r.CanBeViewedBy(9, false), "recipient sees it")
	assert.False(t, r.CanBeViewedBy(3, false))
}

func TestEffectivePrice(t *testing.T) {
	r := newValidRepair(t)
	assert.True(t, r.EffectivePrice().Equal(decimal.NewFromInt(500)))

	require.NoError(t, r.ApplyEdit(EditRequest{FinalPrice: decPtr(650)}, 1, time.Now().UTC()))
	assert.True(t, r.EffectivePrice().Equal(decimal.NewFromInt(650)))
}
