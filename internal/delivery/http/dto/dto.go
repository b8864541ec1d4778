// Package dto holds the wire representations of the HTTP API. Field names
// are a stable contract; the mappers translate to and from domain entities.
package dto

import (
	"shareit/internal/domain/entity"
	"shareit/internal/usecase"
)

// UserDto is the wire form of a user.
type UserDto struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserPatchDto is the partial update body; absent fields stay untouched.
type UserPatchDto struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// ItemDto is the wire form of an item. RequestID is omitted when the item
// does not answer a request.
type ItemDto struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"ownerId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// ItemCreateDto is the item creation body.
type ItemCreateDto struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

// ItemPatchDto is the partial update body; absent fields stay untouched.
type ItemPatchDto struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

// BookingShort is the nested last/next booking projection on item reads.
type BookingShort struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

// ItemDtoWithBookings is the owner-listing projection.
type ItemDtoWithBookings struct {
	ItemDto
	LastBooking *BookingShort `json:"lastBooking"`
	NextBooking *BookingShort `json:"nextBooking"`
}

// ItemDtoFull is the single-item read projection.
type ItemDtoFull struct {
	ItemDtoWithBookings
	Comments []*CommentDto `json:"comments"`
}

// CommentDto is the wire form of a comment, both inbound and outbound.
type CommentDto struct {
	ID         int64     `json:"id,omitempty"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName,omitempty"`
	Created    *DateTime `json:"created,omitempty"`
}

// BookingInDto is the booking creation body.
type BookingInDto struct {
	ItemID int64    `json:"itemId"`
	Start  DateTime `json:"start"`
	End    DateTime `json:"end"`
}

// ItemRef is the nested item projection on booking reads.
type ItemRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserRef is the nested booker projection on booking reads.
type UserRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookingOutDto is the wire form of a booking.
type BookingOutDto struct {
	ID     int64    `json:"id"`
	Start  DateTime `json:"start"`
	End    DateTime `json:"end"`
	Item   ItemRef  `json:"item"`
	Booker UserRef  `json:"booker"`
	Status string   `json:"status"`
}

// RequestInDto is the item-request creation body.
type RequestInDto struct {
	Description string `json:"description"`
}

// RequestDto is the wire form of an item request.
type RequestDto struct {
	ID          int64    `json:"id"`
	UserID      int64    `json:"userId"`
	Description string   `json:"description"`
	Created     DateTime `json:"created"`
}

// RequestDtoWithItems is the request read projection with the items
// offered in response.
type RequestDtoWithItems struct {
	RequestDto
	Items []*ItemDto `json:"items"`
}

// ToUserDto maps a user entity to the wire.
func ToUserDto(user *entity.User) *UserDto {
	return &UserDto{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// ToUserDtos maps a user slice to the wire.
func ToUserDtos(users []*entity.User) []*UserDto {
	out := make([]*UserDto, 0, len(users))
	for _, user := range users {
		out = append(out, ToUserDto(user))
	}

	return out
}

// ToItemDto maps an item entity to the wire.
func ToItemDto(item *entity.Item) *ItemDto {
	return &ItemDto{
		ID:          item.ID,
		OwnerID:     item.OwnerID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		RequestID:   item.RequestID,
	}
}

// ToItemDtos maps an item slice to the wire.
func ToItemDtos(items []*entity.Item) []*ItemDto {
	out := make([]*ItemDto, 0, len(items))
	for _, item := range items {
		out = append(out, ToItemDto(item))
	}

	return out
}

func toBookingShort(booking *entity.Booking) *BookingShort {
	if booking == nil {
		return nil
	}

	return &BookingShort{
		ID:       booking.ID,
		BookerID: booking.Booker.ID,
	}
}

// ToItemDtoWithBookings maps the owner-listing projection to the wire.
func ToItemDtoWithBookings(projection *usecase.ItemWithBookings) *ItemDtoWithBookings {
	return &ItemDtoWithBookings{
		ItemDto:     *ToItemDto(projection.Item),
		LastBooking: toBookingShort(projection.LastBooking),
		NextBooking: toBookingShort(projection.NextBooking),
	}
}

// ToItemDtosWithBookings maps a projection slice to the wire.
func ToItemDtosWithBookings(projections []*usecase.ItemWithBookings) []*ItemDtoWithBookings {
	out := make([]*ItemDtoWithBookings, 0, len(projections))
	for _, projection := range projections {
		out = append(out, ToItemDtoWithBookings(projection))
	}

	return out
}

// ToItemDtoFull maps the single-item read projection to the wire. The
// comments array is always present, empty rather than null.
func ToItemDtoFull(projection *usecase.ItemFull) *ItemDtoFull {
	return &ItemDtoFull{
		ItemDtoWithBookings: ItemDtoWithBookings{
			ItemDto:     *ToItemDto(projection.Item),
			LastBooking: toBookingShort(projection.LastBooking),
			NextBooking: toBookingShort(projection.NextBooking),
		},
		Comments: ToCommentDtos(projection.Comments),
	}
}

// ToCommentDto maps a comment entity to the wire.
func ToCommentDto(comment *entity.Comment) *CommentDto {
	created := NewDateTime(comment.Created)

	return &CommentDto{
		ID:         comment.ID,
		Text:       comment.Text,
		AuthorName: comment.Author.Name,
		Created:    &created,
	}
}

// ToCommentDtos maps a comment slice to the wire.
func ToCommentDtos(comments []*entity.Comment) []*CommentDto {
	out := make([]*CommentDto, 0, len(comments))
	for _, comment := range comments {
		out = append(out, ToCommentDto(comment))
	}

	return out
}

// ToBookingOutDto maps a booking entity to the wire.
func ToBookingOutDto(booking *entity.Booking) *BookingOutDto {
	return &BookingOutDto{
		ID:    booking.ID,
		Start: NewDateTime(booking.Start),
		End:   NewDateTime(booking.End),
		Item: ItemRef{
			ID:   booking.Item.ID,
			Name: booking.Item.Name,
		},
		Booker: UserRef{
			ID:   booking.Booker.ID,
			Name: booking.Booker.Name,
		},
		Status: string(booking.Status),
	}
}

// ToBookingOutDtos maps a booking slice to the wire.
func ToBookingOutDtos(bookings []*entity.Booking) []*BookingOutDto {
	out := make([]*BookingOutDto, 0, len(bookings))
	for _, booking := range bookings {
		out = append(out, ToBookingOutDto(booking))
	}

	return out
}

// ToRequestDto maps a request entity to the wire.
func ToRequestDto(request *entity.Request) *RequestDto {
	return &RequestDto{
		ID:          request.ID,
		UserID:      request.AuthorID,
		Description: request.Description,
		Created:     NewDateTime(request.Created),
	}
}

// ToRequestDtoWithItems maps the request read projection to the wire. The
// items array is always present, empty rather than null.
func ToRequestDtoWithItems(projection *usecase.RequestWithItems) *RequestDtoWithItems {
	return &RequestDtoWithItems{
		RequestDto: *ToRequestDto(projection.Request),
		Items:      ToItemDtos(projection.Items),
	}
}

// ToRequestDtosWithItems maps a projection slice to the wire.
func ToRequestDtosWithItems(projections []*usecase.RequestWithItems) []*RequestDtoWithItems {
	out := make([]*RequestDtoWithItems, 0, len(projections))
	for _, projection := range projections {
		out = append(out, ToRequestDtoWithItems(projection))
	}

	return out
}
