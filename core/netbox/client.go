package netbox

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrAmbiguous is returned by a Find call when the filter matched more than
// one record. The lookup keys used by the importer (prefix CIDR, masked host
// address) are expected to be unique; multiple matches mean the inventory
// holds duplicates the importer must not silently pick between.
var ErrAmbiguous = errors.New("query matched more than one record")

// Client is the capability interface against the NetBox inventory.
//
// Find methods return (nil, nil) when no record matches: absence is an
// ordinary outcome, not an error. Create methods are plain writes with no
// dedup of their own. Idempotence is a contract owned by the caller: look up
// by the canonical key first and create only on a miss. Every method returns
// a distinguishable error on transport or API failure so the caller can count
// and continue.
type Client interface {
	// Status probes connectivity and authentication.
	Status(ctx context.Context) (*StatusInfo, error)
	// FindPrefix looks up a prefix record by its exact CIDR.
	FindPrefix(ctx context.Context, cidr string) (*Prefix, error)
	// CreatePrefix creates a new prefix record.
	CreatePrefix(ctx context.Context, in PrefixCreate) (*Prefix, error)
	// FindAddress looks up an IP address record by its masked address
	// ("/32" for IPv4, "/128" for IPv6).
	FindAddress(ctx context.Context, address string) (*IPAddress, error)
	// CreateAddress creates a new IP address record.
	CreateAddress(ctx context.Context, in AddressCreate) (*IPAddress, error)
}

// APIError describes a NetBox API response outside the 2xx range.
type APIError struct {
	StatusCode int
	Method     string
	URL        string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("netbox: %s %s returned %d: %s", e.Method, e.URL, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("netbox: %s %s returned %d", e.Method, e.URL, e.StatusCode)
}

type httpClient struct {
	base  *url.URL
	token string
	http  *http.Client
}

// NewClient creates a NetBox API client based on the configuration.
func NewClient(cfg Config) (Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("netbox url is required")
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("netbox token is required")
	}

	base, err := url.Parse(strings.TrimRight(cfg.URL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid netbox url %q: %w", cfg.URL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid netbox url %q: scheme must be http or https", cfg.URL)
	}

	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Create custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration, // Connection setup timeout
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration, // TLS Handshake timeout
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration, // Wait for first response byte timeout
	}

	return &httpClient{
		base:  base,
		token: cfg.Token,
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
	}, nil
}

func (c *httpClient) Status(ctx context.Context) (*StatusInfo, error) {
	var info StatusInfo
	if err := c.do(ctx, http.MethodGet, "api/status/", nil, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *httpClient) FindPrefix(ctx context.Context, cidr string) (*Prefix, error) {
	query := url.Values{"prefix": []string{cidr}}

	var list prefixList
	if err := c.do(ctx, http.MethodGet, "api/ipam/prefixes/", query, nil, &list); err != nil {
		return nil, err
	}

	// Decide on the returned records, not the count field: the two can
	// disagree and only the slice is safe to index.
	switch len(list.Results) {
	case 0:
		return nil, nil
	case 1:
		return &list.Results[0], nil
	default:
		return nil, fmt.Errorf("prefix %s: %w", cidr, ErrAmbiguous)
	}
}

func (c *httpClient) CreatePrefix(ctx context.Context, in PrefixCreate) (*Prefix, error) {
	var created Prefix
	if err := c.do(ctx, http.MethodPost, "api/ipam/prefixes/", nil, in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *httpClient) FindAddress(ctx context.Context, address string) (*IPAddress, error) {
	query := url.Values{"address": []string{address}}

	var list addressList
	if err := c.do(ctx, http.MethodGet, "api/ipam/ip-addresses/", query, nil, &list); err != nil {
		return nil, err
	}

	switch len(list.Results) {
	case 0:
		return nil, nil
	case 1:
		return &list.Results[0], nil
	default:
		return nil, fmt.Errorf("address %s: %w", address, ErrAmbiguous)
	}
}

func (c *httpClient) CreateAddress(ctx context.Context, in AddressCreate) (*IPAddress, error) {
	var created IPAddress
	if err := c.do(ctx, http.MethodPost, "api/ipam/ip-addresses/", nil, in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// do performs one API round trip: build the request, attach auth, send, and
// decode the JSON response into out (when out is non-nil).
func (c *httpClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.base.JoinPath(path)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("netbox request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Method:     method,
			URL:        u.String(),
			Detail:     readErrorDetail(resp.Body),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// readErrorDetail extracts NetBox's "detail" message from an error body, or
// falls back to a trimmed snippet of the raw body. The body is capped so a
// misbehaving proxy cannot balloon error messages.
func readErrorDetail(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}

	return strings.TrimSpace(string(data))
}
