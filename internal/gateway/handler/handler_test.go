package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shareit/config"
	domainerrors "shareit/internal/domain/errors"
	"shareit/internal/gateway/client"
	"shareit/internal/gateway/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newGatewayContext builds an echo context wired the way the gateway
// server wires it, with the upstream forwarder pointed at serverURL.
func newGatewayContext(t *testing.T, serverURL, method, target, body string) (echo.Context, *httptest.ResponseRecorder, *client.Forwarder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	cfg := &config.Config{Gateway: &config.Gateway{ServerURL: serverURL}}
	forwarder, err := client.New(client.Params{Config: cfg})
	require.NoError(t, err)

	return c, rec, forwarder
}

// refuseUpstream fails the test if the gateway contacts the server.
func refuseUpstream(t *testing.T) *httptest.Server {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected upstream call: %s %s", r.Method, r.URL.Path)
	}))
	t.Cleanup(upstream.Close)

	return upstream
}

// acceptUpstream records the forwarded request body and answers 200.
func acceptUpstream(t *testing.T) (*httptest.Server, *string) {
	t.Helper()

	var got string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got = string(body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(upstream.Close)

	return upstream, &got
}

func requireInvalidRequest(t *testing.T, err error, message string) {
	t.Helper()

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, domainerrors.CodeInvalidRequest, appErr.ErrorCode())
	assert.Equal(t, message, appErr.Message())
}

func TestUserHandler_Create_ForwardsValidBody(t *testing.T) {
	upstream, forwarded := acceptUpstream(t)
	body := `{"name":"Ivan","email":"ivan@example.com"}`
	c, rec, forwarder := newGatewayContext(t, upstream.URL, http.MethodPost, "/users", body)

	require.NoError(t, NewUserHandler(forwarder).Create(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, body, *forwarded)
}

func TestUserHandler_Create_RejectsBlankName(t *testing.T) {
	upstream := refuseUpstream(t)
	c, _, forwarder := newGatewayContext(t, upstream.URL, http.MethodPost, "/users", `{"name":"  ","email":"ivan@example.com"}`)

	err := NewUserHandler(forwarder).Create(c)
	requireInvalidRequest(t, err, "некорректное поле name")
}

func TestUserHandler_Create_RejectsMalformedJSON(t *testing.T) {
	upstream := refuseUpstream(t)
	c, _, forwarder := newGatewayContext(t, upstream.URL, http.MethodPost, "/users", `{"name":`)

	err := NewUserHandler(forwarder).Create(c)
	requireInvalidRequest(t, err, "некорректное тело запроса")
}

func TestUserHandler_Update_RejectsBadEmail(t *testing.T) {
	upstream := refuseUpstream(t)
	c, _, forwarder := newGatewayContext(t, upstream.URL, http.MethodPatch, "/users/1", `{"email":"not-an-email"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := NewUserHandler(forwarder).Update(c)
	requireInvalidRequest(t, err, "некорректное поле email")
}

func TestUserHandler_Update_RejectsNonNumericID(t *testing.T) {
	upstream := refuseUpstream(t)
	c, _, forwarder := newGatewayContext(t, upstream.URL, http.MethodPatch, "/users/abc", `{"name":"Ivan"}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := NewUserHandler(forwarder).Update(c)
	requireInvalidRequest(t, err, "некорректный идентификатор abc")
}

func TestItemHandler_Create_RequiresAvailable(t *testing.T) {
	upstream := refuseUpstream(t)
	c, _, forwarder := newGatewayContext(t, upstream.URL, http.MethodPost, "/items", `{"name":"Drill","description":"Cordless"}`)

	err := NewItemHandler(forwarder).Create(c)
	requireInvalidRequest(t, err, "некорректное поле available")
}

func TestItemHandler_Create_ForwardsValidBody(t *testing.T) {
	upstream, forwarded := acceptUpstream(t)
	body := `{"name":"Drill","description":"Cordless","available":true}`
	c, rec, forwarder := newGatewayContext(t, upstream.URL, http.MethodPost, "/items", body)

	require.NoError(t, NewItemHandler(forwarder).Create(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, body, *forwarded)
}

func TestItemHandler_PostComment_RejectsBlankText(t *testing.T) {
	upstream := refuseUpstream(t)
	c, _, forwarder := newGatewayContext(t, upstream.URL, http.MethodPost, "/items/10/comment", `{"text":"   "}`)
	c.SetParamNames("id")
	c.SetParamValues("10")

	err := NewItemHandler(forwarder).PostComment(c)
	requireInvalidRequest(t, err, "некорректное поле text")
}

func TestBookingHandler_Create_RequiresTimeWindow(t *testing.T) {
	upstream := refuseUpstream(t)
	c, _, forwarder := newGatewayContext(t, upstream.URL, http.MethodPost, "/bookings", `{"itemId":10,"start":"2025-07-02T10:00:00"}`)

	err := NewBookingHandler(forwarder).Create(c)
	requireInvalidRequest(t, err, "некорректное поле end")
}

func TestBookingHandler_Create_ForwardsValidBody(t *testing.T) {
	upstream, forwarded := acceptUpstream(t)
	body := `{"itemId":10,"start":"2025-07-02T10:00:00","end":"2025-07-03T10:00:00"}`
	c, rec, forwarder := newGatewayContext(t, upstream.URL, http.MethodPost, "/bookings", body)

	require.NoError(t, NewBookingHandler(forwarder).Create(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, body, *forwarded)
}

func TestBookingHandler_ListByBooker_RejectsNegativeFrom(t *testing.T) {
	upstream := refuseUpstream(t)
	c, _, forwarder := newGatewayContext(t, upstream.URL, http.MethodGet, "/bookings?from=-1&size=10", "")

	err := NewBookingHandler(forwarder).ListByBooker(c)
	requireInvalidRequest(t, err, "некорректный параметр from=-1")
}

func TestBookingHandler_ListByOwner_RejectsZeroSize(t *testing.T) {
	upstream := refuseUpstream(t)
	c, _, forwarder := newGatewayContext(t, upstream.URL, http.MethodGet, "/bookings/owner?size=0", "")

	err := NewBookingHandler(forwarder).ListByOwner(c)
	requireInvalidRequest(t, err, "некорректный параметр size=0")
}

func TestRequestHandler_Create_RejectsMissingDescription(t *testing.T) {
	upstream := refuseUpstream(t)
	c, _, forwarder := newGatewayContext(t, upstream.URL, http.MethodPost, "/requests", `{}`)

	err := NewRequestHandler(forwarder).Create(c)
	requireInvalidRequest(t, err, "некорректное поле description")
}
