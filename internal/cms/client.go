package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/bilgisen/atlas/internal/cache"
	"github.com/bilgisen/atlas/internal/logger"
	"github.com/bilgisen/atlas/internal/utils"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// maxGETLength is the longest encoded query string sent with GET. Longer
// queries are POSTed.
const maxGETLength = 11 * 1024

// Params are the named query parameters, referenced as $name in templates.
type Params map[string]any

// Config binds a client to one project and dataset.
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	UseCDN     bool
	Token      string
	Timeout    time.Duration

	// BaseURL overrides the computed API host, e.g. for tests.
	BaseURL string

	// Cache is optional. Only successful responses are stored.
	Cache    cache.Store
	CacheTTL time.Duration
}

// Client runs queries against the content platform's query endpoint.
// Every call is a single attempt: no retries, no request de-duplication.
type Client struct {
	http     *resty.Client
	cfg      Config
	endpoint string
	log      zerolog.Logger
}

func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		host := "api.sanity.io"
		if cfg.UseCDN {
			host = "apicdn.sanity.io"
		}
		base = fmt.Sprintf("https://%s.%s", cfg.ProjectID, host)
	}

	hc := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	if cfg.Token != "" {
		hc.SetAuthToken(cfg.Token)
	}

	return &Client{
		http:     hc,
		cfg:      cfg,
		endpoint: fmt.Sprintf("%s/v%s/data/query/%s", base, cfg.APIVersion, url.PathEscape(cfg.Dataset)),
		log:      logger.Component("cms").With().Str("project", cfg.ProjectID).Str("dataset", cfg.Dataset).Logger(),
	}
}

// Endpoint returns the query URL the client talks to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

type envelope struct {
	Result json.RawMessage `json:"result"`
	Ms     int             `json:"ms"`
}

// Query executes a query and returns the raw "result" payload, which is
// "null" when a single-record lookup matched nothing.
func (c *Client) Query(ctx context.Context, query string, params Params) (json.RawMessage, error) {
	encoded, err := encodeParams(params)
	if err != nil {
		return nil, err
	}

	key := utils.Hash(c.cfg.ProjectID, c.cfg.Dataset, c.cfg.APIVersion, query, string(mustJSON(encoded)))
	if c.cfg.Cache != nil {
		if raw, ok, err := c.cfg.Cache.Get(ctx, key); err != nil {
			c.log.Warn().Err(err).Msg("cache read failed")
		} else if ok {
			c.log.Debug().Str("key", key[:12]).Msg("cache hit")
			return raw, nil
		}
	}

	start := time.Now()
	resp, err := c.send(ctx, query, encoded)
	if err != nil {
		c.log.Error().Err(err).Dur("latency", time.Since(start)).Msg("query request failed")
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	body := resp.Body()
	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		var apiErr apiError
		_ = json.Unmarshal(body, &apiErr)
		c.log.Warn().
			Int("status", resp.StatusCode()).
			Str("reason", apiErr.String()).
			Msg("query rejected")
		return nil, fmt.Errorf("%w: %d %s", ErrStatus, resp.StatusCode(), apiErr.String())
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if env.Result == nil {
		return nil, fmt.Errorf("%w: response has no result field", ErrDecode)
	}

	c.log.Debug().
		Int("status", resp.StatusCode()).
		Int("server_ms", env.Ms).
		Dur("latency", time.Since(start)).
		Msg("query ok")

	if c.cfg.Cache != nil && c.cfg.CacheTTL > 0 {
		if err := c.cfg.Cache.Set(ctx, key, env.Result, c.cfg.CacheTTL); err != nil {
			c.log.Warn().Err(err).Msg("cache write failed")
		}
	}

	return env.Result, nil
}

func (c *Client) send(ctx context.Context, query string, params map[string]json.RawMessage) (*resty.Response, error) {
	values := url.Values{}
	values.Set("query", query)
	for name, v := range params {
		values.Set("$"+name, string(v))
	}

	req := c.http.R().SetContext(ctx)
	if len(values.Encode()) <= maxGETLength {
		return req.SetQueryParamsFromValues(values).Get(c.endpoint)
	}

	return req.
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"query": query, "params": params}).
		Post(c.endpoint)
}

func encodeParams(params Params) (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage, len(params))
	for name, v := range params {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("cms: encode param %q: %w", name, err)
		}
		out[name] = b
	}
	return out, nil
}

func mustJSON(v any) []byte {
	b, _ := json.Marshal(v)
	return b
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// Fetch runs query and decodes its result into T. A null result yields T's
// zero value.
func Fetch[T any](ctx context.Context, c *Client, query string, params Params) (T, error) {
	var out T
	raw, err := c.Query(ctx, query, params)
	if err != nil {
		return out, err
	}
	if isNull(raw) {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return out, nil
}

// FetchOne is Fetch for single-record lookups: a null result is ErrNotFound.
func FetchOne[T any](ctx context.Context, c *Client, query string, params Params) (T, error) {
	var out T
	raw, err := c.Query(ctx, query, params)
	if err != nil {
		return out, err
	}
	if isNull(raw) {
		return out, ErrNotFound
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return out, nil
}

// IsNotFound reports whether err means the record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
