package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"courier-app/internal/logx"
)

const (
	defaultTimeout  = 15 * time.Second
	maxBodyBytes    = 8 << 20
	timeoutMessage  = "Request timeout"
	networkMessage  = "Network error"
	fallbackMessage = "Request failed"
)

// TokenSource is the slice of the token store the gateway needs: it
// reads the credential per request and evicts it on 401. Eviction on
// this path and session logout are the only two legal ways a
// credential disappears.
type TokenSource interface {
	Current() string
	Clear()
}

type counter interface {
	Inc()
}

// Config stores gateway client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Counters are the gateway-side metrics, injected by the container.
// Any of them may be nil.
type Counters struct {
	Requests      counter
	Timeouts      counter
	AuthEvictions counter
}

// Client is the single HTTP chokepoint to the backend. Every call
// goes through Do: consistent headers, one timeout, one response
// normalization.
type Client struct {
	baseURL  string
	timeout  time.Duration
	http     *http.Client
	tokens   TokenSource
	logger   logx.Logger
	counters Counters
	// newRequestID is swappable in tests.
	newRequestID func() string
}

// NewClient creates a gateway client. The tokens source must not be
// nil; a nil logger falls back to the no-op logger.
func NewClient(cfg Config, tokens TokenSource, logger logx.Logger, counters Counters) *Client {
	if tokens == nil {
		return nil
	}
	if logger == nil {
		logger = logx.Nop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		timeout:      timeout,
		http:         &http.Client{},
		tokens:       tokens,
		logger:       logger,
		counters:     counters,
		newRequestID: uuid.NewString,
	}
}

// Do performs one backend call and normalizes the response. The error
// return is non-nil only for programmer mistakes; every transport or
// HTTP failure comes back as a failed Result.
func (c *Client) Do(ctx context.Context, method, path string, body any, includeAuth bool) (Result, error) {
	var bodyReader io.Reader
	if body != nil && (method == http.MethodPost || method == http.MethodPut) {
		raw, err := json.Marshal(body)
		if err != nil {
			return Result{}, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", c.newRequestID())
	if includeAuth {
		if tok := c.tokens.Current(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	if c.counters.Requests != nil {
		c.counters.Requests.Inc()
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.transportFailure(method, path, includeAuth, err), nil
	}
	defer resp.Body.Close()

	return c.normalize(method, path, resp), nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, includeAuth bool) (Result, error) {
	return c.Do(ctx, http.MethodGet, path, nil, includeAuth)
}

// Post performs a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body any, includeAuth bool) (Result, error) {
	return c.Do(ctx, http.MethodPost, path, body, includeAuth)
}

// Put performs a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, body any, includeAuth bool) (Result, error) {
	return c.Do(ctx, http.MethodPut, path, body, includeAuth)
}

func (c *Client) transportFailure(method, path string, includeAuth bool, err error) Result {
	if errors.Is(err, context.DeadlineExceeded) {
		if c.counters.Timeouts != nil {
			c.counters.Timeouts.Inc()
		}
		c.logger.Warn("gateway timeout",
			logx.String("method", method),
			logx.String("path", path),
			logx.Bool("auth", includeAuth),
			logx.Duration("timeout", c.timeout),
		)
		return Result{Message: timeoutMessage, Err: err.Error()}
	}
	c.logger.Warn("gateway transport error",
		logx.String("method", method),
		logx.String("path", path),
		logx.Bool("auth", includeAuth),
		logx.Any("err", err),
	)
	return Result{Message: networkMessage, Err: err.Error()}
}

// normalize shapes any HTTP response into a Result. It is the only
// place the response envelope is interpreted.
func (c *Client) normalize(method, path string, resp *http.Response) Result {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Result{
			Message:    networkMessage,
			Err:        fmt.Sprintf("read response body: %v", err),
			StatusCode: resp.StatusCode,
		}
	}

	var env envelope
	var decodeErr error
	if len(raw) > 0 {
		decodeErr = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Forces the session to re-derive authenticated=false.
		c.tokens.Clear()
		if c.counters.AuthEvictions != nil {
			c.counters.AuthEvictions.Inc()
		}
		c.logger.Warn("gateway 401, credential evicted",
			logx.String("method", method),
			logx.String("path", path),
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Message
		if msg == "" {
			msg = fallbackMessage
		}
		return Result{
			Message:    msg,
			Err:        env.Error,
			StatusCode: resp.StatusCode,
		}
	}

	if decodeErr != nil {
		c.logger.Warn("gateway malformed response",
			logx.String("method", method),
			logx.String("path", path),
			logx.Int("status", resp.StatusCode),
		)
		return Result{
			Message:    "Invalid server response",
			Err:        fmt.Sprintf("decode envelope: %v", decodeErr),
			StatusCode: resp.StatusCode,
		}
	}

	data := env.Data
	if isEmptyJSON(data) && !isEmptyJSON(env.User) {
		// Legacy envelope: payload under `user` instead of `data`.
		c.logger.Warn("gateway envelope missing data, using legacy user field",
			logx.String("method", method),
			logx.String("path", path),
		)
		data = env.User
	}

	return Result{
		Success:    env.Success,
		Message:    env.Message,
		Err:        env.Error,
		StatusCode: resp.StatusCode,
		Data:       data,
		Token:      env.Token,
	}
}

// isEmptyJSON reports whether a raw payload carries no value.
func isEmptyJSON(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
