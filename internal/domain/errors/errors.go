// Package errors defines the application error taxonomy. Services return
// typed errors from this package; the HTTP layer maps them to status codes
// and the wire envelopes.
package errors

import (
	"fmt"
	"net/http"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Business error codes. CodeInvalidRequest is special: the HTTP layer
// renders it with the bad-request envelope instead of the default one.
const (
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeForbidden      = "FORBIDDEN"
	CodeInvalidRequest = "INVALID_REQUEST"
)

// NewNotFound builds a 404. Also used to hide existence from
// non-participants, per the API contract.
func NewNotFound(format string, args ...any) *BaseError {
	return NewBaseError(http.StatusNotFound, CodeNotFound, fmt.Sprintf(format, args...))
}

// NewConflict builds a 409.
func NewConflict(format string, args ...any) *BaseError {
	return NewBaseError(http.StatusConflict, CodeConflict, fmt.Sprintf(format, args...))
}

// NewForbidden builds a 403.
func NewForbidden(format string, args ...any) *BaseError {
	return NewBaseError(http.StatusForbidden, CodeForbidden, fmt.Sprintf(format, args...))
}

// NewInvalidRequest builds a 400 rendered with the {"error": ...} envelope.
func NewInvalidRequest(format string, args ...any) *BaseError {
	return NewBaseError(http.StatusBadRequest, CodeInvalidRequest, fmt.Sprintf(format, args...))
}

// Predefined errors with user messages that are stable API contract.
var (
	// ErrUnknownState is returned for an unrecognized booking state tag.
	// The front-end depends on this exact string.
	ErrUnknownState = NewInvalidRequest("Unknown state: UNSUPPORTED_STATUS")

	// ErrBookingNotModifiable is returned when approving a booking that
	// already left the WAITING status.
	ErrBookingNotModifiable = NewInvalidRequest("статус не может быть изменен")

	// ErrOwnItemBooking is returned when an owner tries to book their own
	// item. A 404 by contract: existence is hidden from non-bookers.
	ErrOwnItemBooking = NewNotFound("пользователь пытается забронировать свой собственный товар")

	// ErrInvalidBookingData covers an unavailable item and a bad time window.
	ErrInvalidBookingData = NewInvalidRequest("попытка бронирования не удалась из-за неверных данных")

	// ErrBlankComment is returned for a comment with blank text.
	ErrBlankComment = NewInvalidRequest("комментарий не может быть пустым")

	// ErrCommentWithoutBooking is returned when the author has no completed
	// booking of the item.
	ErrCommentWithoutBooking = NewInvalidRequest("user cannot comment on this item")

	// ErrNoBookingsForOwner is returned for owner listings when the user
	// owns no items.
	ErrNoBookingsForOwner = NewNotFound("В этом нет никакого смысла")
)

// NewUserNotFound builds the canonical user-miss error.
func NewUserNotFound(userID int64) *BaseError {
	return NewNotFound("Пользователь с id=%d не найден", userID)
}

// NewItemNotFound builds the canonical item-miss error.
func NewItemNotFound(itemID int64) *BaseError {
	return NewNotFound("Предмет с id=%d не найден", itemID)
}

// NewRequestNotFound builds the canonical request-miss error.
func NewRequestNotFound(requestID int64) *BaseError {
	return NewNotFound("Запрос с id=%d не найден", requestID)
}

// NewBookingNotFound builds the canonical booking-miss error.
func NewBookingNotFound(bookingID int64) *BaseError {
	return NewNotFound("Бронирование с помощью id=%d не найдено", bookingID)
}

// NewBookingAccessDenied hides a booking from a non-participant; the owner
// check in approve uses it too. A 404 by contract.
func NewBookingAccessDenied(bookingID, userID int64) *BaseError {
	return NewNotFound("бронирование с помощью id=%d для пользователя с id=%d не может быть", bookingID, userID)
}

// NewDuplicateEmail reports an email uniqueness violation.
func NewDuplicateEmail(email string) *BaseError {
	return NewConflict("Пользователь с электронной почтой=%s уже существует", email)
}

// NewItemUpdateForbidden reports an item mutation by a non-owner.
func NewItemUpdateForbidden(userID, itemID int64) *BaseError {
	return NewForbidden("Пользователь с id=%d не имеет прав на обновление элемента с id=%d", userID, itemID)
}
