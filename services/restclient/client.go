package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/meucampus/planner/core"
)

type (
	Options struct {
		BaseURL string
		APIKey  string // static x-api-key header; empty disables it
		Timeout time.Duration
		Session core.Session
		Logger  core.Logger

		// OnSessionExpired is invoked after a 401 response cleared the
		// persisted session, so the app can navigate to the login entry
		// point. It is not invoked when no session was held.
		OnSessionExpired func()
	}

	// Client is the single HTTP gateway to the API: it attaches the bearer
	// token and API key to every outgoing request, decodes the standard
	// envelope and handles session expiry.
	Client struct {
		opts *Options
		http *http.Client
	}
)

var _ core.Requester = (*Client)(nil)

func NewClient(opts *Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		opts: opts,
		http: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, query url.Values, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, query, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, query url.Values) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	reqURL := c.opts.BaseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var rdr io.Reader
	var contentType string
	switch b := body.(type) {
	case nil:
	case core.RawBody:
		rdr, contentType = b.Content, b.ContentType
	default:
		buf, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		rdr, contentType = bytes.NewReader(buf), "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, rdr)
	if err != nil {
		return errors.Wrapf(err, "building request %s %s", method, path)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if tok, ok := c.token(); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	if c.opts.APIKey != "" {
		req.Header.Set("x-api-key", c.opts.APIKey)
	}
	req.Header.Set("X-Request-ID", uuid.New().String())

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		c.expireSession()
		return core.ErrSessionExpired
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrapf(err, "reading response of %s %s", method, path)
	}

	var env core.Envelope
	if len(raw) > 0 {
		// a malformed body on an error status still yields an APIError below
		_ = json.Unmarshal(raw, &env)
	}

	if res.StatusCode >= 400 {
		apiErr := &core.APIError{Status: res.StatusCode, Message: env.Message}
		for _, envErr := range env.Errors {
			apiErr.Fields = append(apiErr.Fields, core.FieldError{Field: envErr.Key, Error: envErr.Message})
		}
		if c.opts.Logger != nil && res.StatusCode >= 500 {
			c.opts.Logger.Error("api request failed", apiErr, method, path)
		}
		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrapf(err, "decoding response of %s %s", method, path)
		}
	}
	return nil
}

func (c *Client) token() (string, bool) {
	if c.opts.Session == nil {
		return "", false
	}
	return c.opts.Session.Token()
}

// expireSession is the single point of session-expiry handling:
// it clears the persisted token and signals the navigation hook,
// unless no session was held to begin with.
func (c *Client) expireSession() {
	var had bool
	if c.opts.Session != nil {
		_, had = c.opts.Session.Token()
		_ = c.opts.Session.Clear()
	}
	if had && c.opts.OnSessionExpired != nil {
		c.opts.OnSessionExpired()
	}
}
