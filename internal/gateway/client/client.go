// Package client forwards validated gateway traffic to the back-end
// server and relays the response untouched.
package client

import (
	"bytes"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"shareit/config"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
}

// Forwarder proxies a request to the server, preserving method, path,
// query, identity header and body.
type Forwarder struct {
	baseURL string
	client  *http.Client
}

// New creates the Forwarder with a pooled HTTP client. The gateway section
// must be configured; there is no sane default upstream.
func New(params Params) (*Forwarder, error) {
	if params.Config.Gateway == nil || params.Config.Gateway.ServerURL == "" {
		return nil, errors.New("gateway.serverUrl is not configured")
	}

	return &Forwarder{
		baseURL: strings.TrimRight(params.Config.Gateway.ServerURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				MaxConnsPerHost:     100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// Forward sends the request to the server. The body is passed explicitly
// because the validators have already consumed the request stream.
func (f *Forwarder) Forward(c echo.Context, body []byte) error {
	req := c.Request()

	target := f.baseURL + req.URL.Path
	if req.URL.RawQuery != "" {
		target += "?" + req.URL.RawQuery
	}

	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	outReq, err := http.NewRequestWithContext(req.Context(), req.Method, target, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build upstream request")
	}
	outReq.Header = req.Header.Clone()

	resp, err := f.client.Do(outReq)
	if err != nil {
		return errors.Wrap(err, "failed to reach upstream server")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read upstream response")
	}

	contentType := resp.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = echo.MIMEApplicationJSON
	}

	return c.Blob(resp.StatusCode, contentType, respBody)
}
