package dto

import (
	"encoding/json"
	"testing"
	"time"

	"shareit/internal/domain/entity"
	"shareit/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToItemDto_OmitsAbsentRequestID(t *testing.T) {
	data, err := json.Marshal(ToItemDto(&entity.Item{ID: 10, OwnerID: 1, Name: "Drill", Available: true}))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "requestId")

	requestID := int64(7)
	data, err = json.Marshal(ToItemDto(&entity.Item{ID: 10, OwnerID: 1, RequestID: &requestID}))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"requestId":7`)
}

func TestToItemDtoFull_NilBookingsStayNull(t *testing.T) {
	full := ToItemDtoFull(&usecase.ItemFull{
		Item:     &entity.Item{ID: 10, OwnerID: 1},
		Comments: []*entity.Comment{},
	})

	data, err := json.Marshal(full)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"lastBooking":null`)
	assert.Contains(t, string(data), `"nextBooking":null`)
	assert.Contains(t, string(data), `"comments":[]`)
}

func TestToItemDtoWithBookings_ProjectsBookerID(t *testing.T) {
	projection := ToItemDtoWithBookings(&usecase.ItemWithBookings{
		Item:        &entity.Item{ID: 10, OwnerID: 1},
		LastBooking: &entity.Booking{ID: 4, Booker: entity.User{ID: 2}},
	})

	require.NotNil(t, projection.LastBooking)
	assert.Equal(t, int64(4), projection.LastBooking.ID)
	assert.Equal(t, int64(2), projection.LastBooking.BookerID)
	assert.Nil(t, projection.NextBooking)
}

func TestToBookingOutDto(t *testing.T) {
	booking := &entity.Booking{
		ID:     5,
		Start:  time.Date(2025, time.July, 2, 10, 0, 0, 0, time.UTC),
		End:    time.Date(2025, time.July, 3, 10, 0, 0, 0, time.UTC),
		Status: entity.StatusWaiting,
		Item:   entity.Item{ID: 10, Name: "Drill"},
		Booker: entity.User{ID: 2, Name: "Petr"},
	}

	out := ToBookingOutDto(booking)
	assert.Equal(t, int64(5), out.ID)
	assert.Equal(t, ItemRef{ID: 10, Name: "Drill"}, out.Item)
	assert.Equal(t, UserRef{ID: 2, Name: "Petr"}, out.Booker)
	assert.Equal(t, "WAITING", out.Status)

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"start":"2025-07-02T10:00:00"`)
}

func TestToRequestDtoWithItems(t *testing.T) {
	projection := ToRequestDtoWithItems(&usecase.RequestWithItems{
		Request: &entity.Request{ID: 7, AuthorID: 1, Description: "Нужна дрель", Created: time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)},
		Items:   []*entity.Item{},
	})

	assert.Equal(t, int64(1), projection.UserID)

	data, err := json.Marshal(projection)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"items":[]`)
	assert.Contains(t, string(data), `"created":"2025-07-01T12:00:00"`)
}

func TestToCommentDto(t *testing.T) {
	comment := ToCommentDto(&entity.Comment{
		ID:      1,
		Text:    "Great drill",
		Author:  entity.User{ID: 2, Name: "Petr"},
		Created: time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, "Petr", comment.AuthorName)
	require.NotNil(t, comment.Created)
	assert.Equal(t, time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC), comment.Created.Time())
}
