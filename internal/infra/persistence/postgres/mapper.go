package postgres

import (
	"shareit/internal/domain/entity"
	"shareit/internal/infra/persistence/model"
)

func toUserModel(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

func toUserEntity(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:    m.ID,
		Name:  m.Name,
		Email: m.Email,
	}
}

func toItemModel(item *entity.Item) *model.ItemModel {
	return &model.ItemModel{
		ID:          item.ID,
		OwnerID:     item.OwnerID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		RequestID:   item.RequestID,
	}
}

func toItemEntity(m *model.ItemModel) *entity.Item {
	return &entity.Item{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Description: m.Description,
		Available:   m.Available,
		RequestID:   m.RequestID,
	}
}

func toItemEntities(models []*model.ItemModel) []*entity.Item {
	items := make([]*entity.Item, 0, len(models))
	for _, m := range models {
		items = append(items, toItemEntity(m))
	}

	return items
}

func toBookingModel(booking *entity.Booking) *model.BookingModel {
	return &model.BookingModel{
		ID:        booking.ID,
		ItemID:    booking.Item.ID,
		BookerID:  booking.Booker.ID,
		StartTime: booking.Start,
		EndTime:   booking.End,
		Status:    string(booking.Status),
	}
}

func toBookingEntity(m *model.BookingModel) *entity.Booking {
	booking := &entity.Booking{
		ID:     m.ID,
		Start:  m.StartTime,
		End:    m.EndTime,
		Status: entity.BookingStatus(m.Status),
	}
	if m.Item != nil {
		booking.Item = *toItemEntity(m.Item)
	} else {
		booking.Item = entity.Item{ID: m.ItemID}
	}
	if m.Booker != nil {
		booking.Booker = *toUserEntity(m.Booker)
	} else {
		booking.Booker = entity.User{ID: m.BookerID}
	}

	return booking
}

func toBookingEntities(models []*model.BookingModel) []*entity.Booking {
	bookings := make([]*entity.Booking, 0, len(models))
	for _, m := range models {
		bookings = append(bookings, toBookingEntity(m))
	}

	return bookings
}

func toRequestModel(request *entity.Request) *model.RequestModel {
	return &model.RequestModel{
		ID:          request.ID,
		AuthorID:    request.AuthorID,
		Description: request.Description,
		Created:     request.Created,
	}
}

func toRequestEntity(m *model.RequestModel) *entity.Request {
	return &entity.Request{
		ID:          m.ID,
		AuthorID:    m.AuthorID,
		Description: m.Description,
		Created:     m.Created,
	}
}

func toRequestEntities(models []*model.RequestModel) []*entity.Request {
	requests := make([]*entity.Request, 0, len(models))
	for _, m := range models {
		requests = append(requests, toRequestEntity(m))
	}

	return requests
}

func toCommentModel(comment *entity.Comment) *model.CommentModel {
	return &model.CommentModel{
		ID:       comment.ID,
		ItemID:   comment.ItemID,
		AuthorID: comment.Author.ID,
		Text:     comment.Text,
		Created:  comment.Created,
	}
}

func toCommentEntity(m *model.CommentModel) *entity.Comment {
	comment := &entity.Comment{
		ID:      m.ID,
		ItemID:  m.ItemID,
		Text:    m.Text,
		Created: m.Created,
	}
	if m.Author != nil {
		comment.Author = *toUserEntity(m.Author)
	} else {
		comment.Author = entity.User{ID: m.AuthorID}
	}

	return comment
}

func toCommentEntities(models []*model.CommentModel) []*entity.Comment {
	comments := make([]*entity.Comment, 0, len(models))
	for _, m := range models {
		comments = append(comments, toCommentEntity(m))
	}

	return comments
}
