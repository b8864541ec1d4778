package entity

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingState(t *testing.T) {
	cases := map[string]struct {
		raw  string
		want BookingState
	}{
		"empty defaults to ALL": {raw: "", want: StateAll},
		"all":                   {raw: "ALL", want: StateAll},
		"current":               {raw: "CURRENT", want: StateCurrent},
		"future":                {raw: "FUTURE", want: StateFuture},
		"past":                  {raw: "PAST", want: StatePast},
		"waiting":               {raw: "WAITING", want: StateWaiting},
		"rejected":              {raw: "REJECTED", want: StateRejected},
		"approved":              {raw: "APPROVED", want: StateApproved},
		"case insensitive":      {raw: "future", want: StateFuture},
		"mixed case":            {raw: "Waiting", want: StateWaiting},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			state, err := ParseBookingState(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, state)
		})
	}
}

func TestParseBookingState_Unsupported(t *testing.T) {
	_, err := ParseBookingState("SOMETIMES")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedState))
}

func TestBookingState_Status(t *testing.T) {
	assert.Equal(t, StatusWaiting, StateWaiting.Status())
	assert.Equal(t, StatusRejected, StateRejected.Status())
	assert.Equal(t, StatusApproved, StateApproved.Status())
	assert.Equal(t, BookingStatus(""), StateAll.Status())
	assert.Equal(t, BookingStatus(""), StateCurrent.Status())
}

func TestBookingState_String(t *testing.T) {
	assert.Equal(t, "FUTURE", StateFuture.String())
	assert.Equal(t, "ALL", StateAll.String())
}
