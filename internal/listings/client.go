package listings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the RapidAPI gateway for the Bayut API.
	DefaultBaseURL = "https://bayut.p.rapidapi.com"
	// DefaultRatePerSecond bounds outbound requests to stay inside the
	// RapidAPI plan quota.
	DefaultRatePerSecond = 5.0

	tracerName   = "github.com/louisbranch/dwelling.space/internal/listings"
	maxBodyBytes = 8 << 20
)

// Endpoint paths.
const (
	PathPropertiesList   = "/properties/list"
	PathPropertiesDetail = "/properties/detail"
	PathAutoComplete     = "/auto-complete"
)

var (
	// ErrNotFound reports that the requested listing does not exist.
	ErrNotFound = errors.New("listing not found")
	// ErrRateLimited reports that the API quota was exhausted.
	ErrRateLimited = errors.New("listings api rate limited")
	// ErrUpstream reports any other failed call to the listings API.
	ErrUpstream = errors.New("listings api unavailable")
)

// Source is the read contract the web and MCP surfaces depend on.
type Source interface {
	ListProperties(ctx context.Context, query SearchQuery) ([]Property, error)
	PropertyDetail(ctx context.Context, externalID string) (Property, error)
	AutoComplete(ctx context.Context, term string) ([]Location, error)
}

// Config configures a Client.
type Config struct {
	BaseURL       string
	APIKey        string
	RatePerSecond float64
	HTTPClient    *http.Client
}

// Client calls the listings API over HTTP.
type Client struct {
	baseURL *url.URL
	host    string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
	tracer  trace.Tracer
}

// NewClient validates cfg and returns a client.
func NewClient(cfg Config) (*Client, error) {
	rawBase := strings.TrimSpace(cfg.BaseURL)
	if rawBase == "" {
		rawBase = DefaultBaseURL
	}
	base, err := url.Parse(strings.TrimRight(rawBase, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse listings base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("listings base url %q must be http or https", rawBase)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	perSecond := cfg.RatePerSecond
	if perSecond <= 0 {
		perSecond = DefaultRatePerSecond
	}
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	return &Client{
		baseURL: base,
		host:    base.Hostname(),
		apiKey:  strings.TrimSpace(cfg.APIKey),
		client:  httpClient,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		tracer:  otel.Tracer(tracerName),
	}, nil
}

// ListProperties returns the listings matching query.
func (c *Client) ListProperties(ctx context.Context, query SearchQuery) ([]Property, error) {
	var resp listResponse
	if err := c.getJSON(ctx, PathPropertiesList, query.Values(), &resp); err != nil {
		return nil, err
	}
	out := make([]Property, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		out = append(out, sanitizeProperty(hit))
	}
	return out, nil
}

// PropertyDetail returns one listing by external ID.
func (c *Client) PropertyDetail(ctx context.Context, externalID string) (Property, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return Property{}, fmt.Errorf("%w: external id is required", ErrNotFound)
	}
	var raw json.RawMessage
	if err := c.getJSON(ctx, PathPropertiesDetail, url.Values{"externalID": {externalID}}, &raw); err != nil {
		return Property{}, err
	}
	return decodeDetail(externalID, raw)
}

// AutoComplete returns locations whose name matches term.
func (c *Client) AutoComplete(ctx context.Context, term string) ([]Location, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, nil
	}
	var resp autoCompleteResponse
	if err := c.getJSON(ctx, PathAutoComplete, url.Values{"query": {term}}, &resp); err != nil {
		return nil, err
	}
	return resp.Hits, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target any) (err error) {
	ctx, span := c.tracer.Start(ctx, "listings "+path, trace.WithSpanKind(trace.SpanKindClient))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("listings request %s: %w", path, ctxErr)
		}
		return fmt.Errorf("%w: wait for rate limiter: %v", ErrRateLimited, err)
	}

	endpoint := *c.baseURL
	endpoint.Path = strings.TrimRight(endpoint.Path, "/") + path
	endpoint.RawQuery = query.Encode()
	span.SetAttributes(
		attribute.String("http.request.method", http.MethodGet),
		attribute.String("url.path", path),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build listings request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-rapidapi-host", c.host)
	if c.apiKey != "" {
		req.Header.Set("x-rapidapi-key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUpstream, path, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if err := statusError(path, resp.StatusCode); err != nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return err
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %s returned an empty body", ErrNotFound, path)
		}
		return fmt.Errorf("%w: decode %s response: %v", ErrUpstream, path, err)
	}
	return nil
}

func statusError(path string, status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s returned %d", ErrNotFound, path, status)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s returned %d", ErrRateLimited, path, status)
	default:
		return fmt.Errorf("%w: %s returned %d", ErrUpstream, path, status)
	}
}

func decodeDetail(externalID string, raw json.RawMessage) (Property, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" || trimmed == "{}" {
		return Property{}, fmt.Errorf("%w: %s", ErrNotFound, externalID)
	}
	var p Property
	if err := json.Unmarshal(raw, &p); err != nil {
		return Property{}, fmt.Errorf("%w: decode property %s: %v", ErrUpstream, externalID, err)
	}
	if p.ExternalID == "" && p.ID == 0 {
		return Property{}, fmt.Errorf("%w: %s", ErrNotFound, externalID)
	}
	if p.ExternalID == "" {
		p.ExternalID = externalID
	}
	return sanitizeProperty(p), nil
}

var _ Source = (*Client)(nil)
