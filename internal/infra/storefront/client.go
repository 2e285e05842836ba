package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"catalog-sync/internal/domain/settings"
	"catalog-sync/internal/pkg/config"
	"catalog-sync/internal/pkg/errs"
	"catalog-sync/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"
)

const maxErrorBody = 512

// Client talks to the storefront admin GraphQL API on behalf of many shops.
// Every shop gets its own token bucket; throttled and 5xx answers are
// retried with exponential backoff, everything else fails at once.
type Client struct {
	httpClient      *http.Client
	endpoint        string
	apiVersion      string
	maxRetries      uint64
	initialInterval time.Duration
	rps             rate.Limit
	burst           int
	logger          *slog.Logger

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	lookups  map[string]string
}

var _ shared.Storefront = (*Client)(nil)

func NewClient(cfg config.StorefrontConfig, logger *slog.Logger) *Client {
	rps := rate.Limit(cfg.RequestsPerSecond)
	if cfg.RequestsPerSecond <= 0 {
		rps = rate.Inf
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &Client{
		httpClient:      &http.Client{Timeout: cfg.Timeout},
		endpoint:        strings.TrimRight(cfg.Endpoint, "/"),
		apiVersion:      cfg.APIVersion,
		maxRetries:      cfg.MaxRetries,
		initialInterval: 500 * time.Millisecond,
		rps:             rps,
		burst:           burst,
		logger:          logger,
		limiters:        make(map[string]*rate.Limiter),
		lookups:         make(map[string]string),
	}
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors QueryErrors     `json:"errors"`
}

// retryable wraps errors worth another attempt.
type retryable struct{ err error }

func (r retryable) Error() string { return r.err.Error() }
func (r retryable) Unwrap() error { return r.err }

func (c *Client) do(ctx context.Context, creds settings.Credentials, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(gqlRequest{Query: query, Variables: vars})
	if err != nil {
		return errs.Wrap(err, "encode graphql request")
	}
	limiter := c.limiter(creds.ShopDomain)

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = c.initialInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(eb, c.maxRetries), ctx)

	attempt := 0
	op := func() error {
		attempt++
		if err := limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}
		data, err := c.post(ctx, creds, body)
		if err != nil {
			var r retryable
			if errors.As(err, &r) {
				c.logger.Warn("storefront call failed, retrying",
					slog.String("shop", creds.ShopDomain),
					slog.Int("attempt", attempt),
					slog.String("error", err.Error()))
				return r.err
			}
			return backoff.Permanent(err)
		}
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return backoff.Permanent(errs.Wrap(err, "decode graphql data"))
		}
		return nil
	}
	return backoff.Retry(op, policy)
}

func (c *Client) post(ctx context.Context, creds settings.Credentials, body []byte) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(creds.ShopDomain), bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "build graphql request")
	}
	req.Header.Set("X-Shopify-Access-Token", creds.AccessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, retryable{errs.Mark(errs.Wrap(err, "call storefront api"), errs.ErrUnavailable)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, retryable{errs.Wrap(err, "read storefront response")}
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, retryable{ErrThrottled}
	case resp.StatusCode >= 500:
		return nil, retryable{errs.Mark(&HTTPError{StatusCode: resp.StatusCode, Body: clip(raw)}, errs.ErrUnavailable)}
	case resp.StatusCode != http.StatusOK:
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: clip(raw)}
	}

	var gr gqlResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return nil, errs.Wrap(err, "decode graphql response")
	}
	if len(gr.Errors) > 0 {
		if gr.Errors.throttled() {
			return nil, retryable{ErrThrottled}
		}
		return nil, gr.Errors
	}
	return gr.Data, nil
}

func (c *Client) url(shopDomain string) string {
	base := c.endpoint
	if base == "" {
		base = "https://" + shopDomain
	}
	return base + "/admin/api/" + c.apiVersion + "/graphql.json"
}

func (c *Client) limiter(shopDomain string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.limiters[shopDomain]
	if !ok {
		l = rate.NewLimiter(c.rps, c.burst)
		c.limiters[shopDomain] = l
	}
	return l
}

// cached memoizes per-shop lookups that never change during a process run.
func (c *Client) cached(key string, load func() (string, error)) (string, error) {
	c.mu.Lock()
	v, ok := c.lookups[key]
	c.mu.Unlock()
	if ok {
		return v, nil
	}
	v, err := load()
	if err != nil || v == "" {
		return v, err
	}
	c.mu.Lock()
	c.lookups[key] = v
	c.mu.Unlock()
	return v, nil
}

func clip(b []byte) string {
	if len(b) > maxErrorBody {
		return string(b[:maxErrorBody])
	}
	return string(b)
}
