package client

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shareit/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestForwarder(t *testing.T, serverURL string) *Forwarder {
	t.Helper()

	cfg := &config.Config{Gateway: &config.Gateway{ServerURL: serverURL}}
	forwarder, err := New(Params{Config: cfg})
	require.NoError(t, err)

	return forwarder
}

func TestNew_RequiresServerURL(t *testing.T) {
	_, err := New(Params{Config: &config.Config{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "serverUrl")

	_, err = New(Params{Config: &config.Config{Gateway: &config.Gateway{}}})
	require.Error(t, err)
}

func TestForwarder_RelaysStatusAndBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, "1", r.Header.Get("X-Sharer-User-Id"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"Ivan"}`, string(body))

		w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":1,"name":"Ivan"}`))
	}))
	defer upstream.Close()

	e := echo.New()
	body := `{"name":"Ivan"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("X-Sharer-User-Id", "1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	forwarder := newTestForwarder(t, upstream.URL)
	require.NoError(t, forwarder.Forward(c, []byte(body)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Ivan"}`, rec.Body.String())
}

func TestForwarder_PreservesQueryAndErrorStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "from=0&size=10", r.URL.RawQuery)

		w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"Сообщение об ошибке":"Предмет с id=99 не найден"}`))
	}))
	defer upstream.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/items/99?from=0&size=10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	forwarder := newTestForwarder(t, upstream.URL)
	require.NoError(t, forwarder.Forward(c, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Предмет с id=99 не найден")
}

func TestForwarder_TrimsTrailingSlash(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	forwarder := newTestForwarder(t, upstream.URL + "/")
	require.NoError(t, forwarder.Forward(c, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
