package holodex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the production API origin and version prefix.
	DefaultBaseURL = "https://holodex.net/api/v2"

	apiKeyHeader     = "X-APIKEY"
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "holowatch"

	headerRateLimit     = "X-RateLimit-Limit"
	headerRateRemaining = "X-RateLimit-Remaining"
	headerRateReset     = "X-RateLimit-Reset"
)

// Client is a Holodex API client. It is synchronous: one request at a time,
// blocking until the response is read. A Client may be reused sequentially;
// concurrent use from multiple goroutines is not supported.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	userAgent  string
	lenient    bool
	logger     zerolog.Logger

	// lastRate is overwritten on every successful call.
	lastRate *RateLimit
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the client identifier sent on every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLenientDecoding disables the duplicate-JSON-key check on response
// bodies. Unknown fields are ignored either way.
func WithLenientDecoding() Option {
	return func(c *Client) {
		c.lenient = true
	}
}

// NewClient creates a Holodex client. baseURL must be an http or https URL
// with a host; apiKey must be a dashed-hex key. Both are validated here so
// that API calls never fail on configuration.
func NewClient(baseURL, apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, &ConfigError{Field: "base URL", Reason: err.Error()}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &ConfigError{Field: "base URL", Reason: fmt.Sprintf("unsupported scheme %q", u.Scheme)}
	}
	if u.Host == "" {
		return nil, &ConfigError{Field: "base URL", Reason: "missing host"}
	}
	if apiKey == "" {
		return nil, &ConfigError{Field: "API key", Reason: "required"}
	}
	if _, err := ParseID(apiKey); err != nil {
		return nil, &ConfigError{Field: "API key", Reason: err.Error()}
	}

	// No trailing slash; paths supply their own.
	base := u.String()
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}

	client := &Client{
		baseURL:    base,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
		userAgent:  defaultUserAgent,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Clone returns a client with the same configuration and no call history.
// Callers that want one client per goroutine use this, since a Client is
// not safe for concurrent use.
func (c *Client) Clone() *Client {
	clone := *c
	clone.lastRate = nil
	return &clone
}

// LastRateLimit reports the rate-limit headers of the most recent successful
// call, or nil before the first one.
func (c *Client) LastRateLimit() *RateLimit {
	return c.lastRate
}

// do performs one request/response cycle: build the URL, send, classify the
// status, parse the rate-limit headers and decode the body into out.
func (c *Client) do(ctx context.Context, method, path, query string, body, out any) (*RateLimit, error) {
	requestURL := c.baseURL + path
	if query != "" {
		requestURL += "?" + query
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", requestURL).
		Msg("Making Holodex API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: requestURL, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: requestURL, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	rate, err := parseRateLimit(resp.Header)
	if err != nil {
		return nil, err
	}
	c.lastRate = rate

	if out != nil {
		if err := c.decode(data, out); err != nil {
			return nil, err
		}
	}
	return rate, nil
}

// decode unmarshals a response body. Unknown fields are ignored; duplicate
// object keys are rejected unless lenient decoding was selected.
func (c *Client) decode(data []byte, out any) error {
	if !c.lenient {
		if err := checkDuplicateKeys(data); err != nil {
			return err
		}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &ParseError{Reason: "cannot decode body", Err: err}
	}
	return nil
}

// checkDuplicateKeys walks the raw JSON token stream and rejects any object
// that repeats a key. encoding/json silently keeps the last occurrence, which
// would hide a provider-side bug.
func checkDuplicateKeys(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return checkDuplicateValue(dec)
}

func checkDuplicateValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return &ParseError{Reason: "malformed body", Err: err}
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil
	}
	switch delim {
	case '{':
		seen := make(map[string]struct{})
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return &ParseError{Reason: "malformed body", Err: err}
			}
			key := keyTok.(string)
			if _, dup := seen[key]; dup {
				return &ParseError{Reason: fmt.Sprintf("duplicate key %q", key)}
			}
			seen[key] = struct{}{}
			if err := checkDuplicateValue(dec); err != nil {
				return err
			}
		}
		if _, err := dec.Token(); err != nil {
			return &ParseError{Reason: "malformed body", Err: err}
		}
	case '[':
		for dec.More() {
			if err := checkDuplicateValue(dec); err != nil {
				return err
			}
		}
		if _, err := dec.Token(); err != nil {
			return &ParseError{Reason: "malformed body", Err: err}
		}
	}
	return nil
}

// parseRateLimit extracts the three rate-limit headers. Header name matching
// is case-insensitive (net/http canonicalizes on receipt); each header must
// appear exactly once.
func parseRateLimit(h http.Header) (*RateLimit, error) {
	limit, err := rateHeaderValue(h, headerRateLimit)
	if err != nil {
		return nil, err
	}
	remaining, err := rateHeaderValue(h, headerRateRemaining)
	if err != nil {
		return nil, err
	}
	reset, err := rateHeaderValue(h, headerRateReset)
	if err != nil {
		return nil, err
	}
	return &RateLimit{
		Limit:     int(limit),
		Remaining: int(remaining),
		Reset:     time.Unix(reset, 0),
	}, nil
}

func rateHeaderValue(h http.Header, name string) (int64, error) {
	values := h.Values(name)
	switch len(values) {
	case 0:
		return 0, &HeaderError{Header: name, Reason: "missing"}
	case 1:
	default:
		return 0, &HeaderError{Header: name, Reason: "duplicated"}
	}
	n, err := strconv.ParseInt(values[0], 10, 64)
	if err != nil {
		return 0, &HeaderError{Header: name, Reason: fmt.Sprintf("not a number: %q", values[0])}
	}
	return n, nil
}
