// Package shopify is a client of the Shopify Storefront GraphQL API.
package shopify

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/niksmo/storefront/internal/core/port"
)

const (
	DefaultAPIVersion = "2026-01"

	accessTokenHeader = "X-Shopify-Storefront-Access-Token"
	maxErrorBody      = 512
)

var _ port.CacheRevalidator = (*Client)(nil)

// CacheMode is selected per call.
type CacheMode int

const (
	// NoCache always reaches the API. Cart reads, cart mutations and search use it.
	NoCache CacheMode = iota
	// CacheLongLived serves tagged catalog reads from the tag cache.
	CacheLongLived
)

// A Config used for setup [Client].
//
// StoreDomain and AccessToken are required.
type Config struct {
	StoreDomain string
	APIVersion  string
	AccessToken string
	Timeout     time.Duration
	CacheTTL    time.Duration
}

type ClientOpt func(*Client)

func HTTPClientOpt(hc *http.Client) ClientOpt {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// EndpointOpt overrides the endpoint derived from the store domain.
func EndpointOpt(url string) ClientOpt {
	return func(c *Client) {
		c.endpoint = url
	}
}

type Client struct {
	endpoint    string
	accessToken string
	timeout     time.Duration
	httpClient  *http.Client
	cache       *tagCache
}

func NewClient(config Config, opts ...ClientOpt) (*Client, error) {
	const op = "shopify.NewClient"

	if config.StoreDomain == "" {
		return nil, fmt.Errorf("%s: store domain is empty", op)
	}
	if config.AccessToken == "" {
		return nil, fmt.Errorf("%s: access token is empty", op)
	}

	version := config.APIVersion
	if version == "" {
		version = DefaultAPIVersion
	}

	c := &Client{
		endpoint: fmt.Sprintf(
			"https://%s/api/%s/graphql.json", config.StoreDomain, version,
		),
		accessToken: config.AccessToken,
		timeout:     config.Timeout,
		httpClient:  http.DefaultClient,
	}
	if config.CacheTTL > 0 {
		c.cache = newTagCache(config.CacheTTL)
	}

	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// Revalidate drops cached reads tagged with tag.
func (c *Client) Revalidate(tag string) int {
	if c.cache == nil {
		return 0
	}
	return c.cache.revalidate(tag)
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Execute posts the document and decodes the unwrapped data into out.
//
// Non-2xx responses fail with *TransportError, an errors envelope
// fails with *GraphQLError. Calls are attempted once.
func (c *Client) Execute(
	ctx context.Context,
	document string,
	variables map[string]any,
	mode CacheMode,
	tags []string,
	out any,
) error {
	const op = "Client.Execute"

	body, err := json.Marshal(graphqlRequest{Query: document, Variables: variables})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	cacheable := mode == CacheLongLived && c.cache != nil
	var key string
	if cacheable {
		sum := sha256.Sum256(body)
		key = hex.EncodeToString(sum[:])
		if data, ok := c.cache.get(key); ok {
			return decodeData(op, data, out)
		}
	}

	data, err := c.post(ctx, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cacheable {
		c.cache.set(key, data, tags)
	}
	return decodeData(op, data, out)
}

func (c *Client) post(ctx context.Context, body []byte) (json.RawMessage, error) {
	const op = "Client.post"
	log := slog.With("op", op)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.endpoint, bytes.NewReader(body),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(accessTokenHeader, c.accessToken)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		log.Error("unexpected status", "status", res.StatusCode)
		return nil, &TransportError{Status: res.StatusCode, Body: string(snippet)}
	}

	var envelope graphqlResponse
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	if len(envelope.Errors) > 0 {
		msg := envelope.Errors[0].Message
		if msg == "" {
			msg = "unknown storefront api error"
		}
		log.Error("graphql errors", "count", len(envelope.Errors), "first", msg)
		return nil, &GraphQLError{Message: msg}
	}
	return envelope.Data, nil
}

func decodeData(op string, data []byte, out any) error {
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode data: %w", op, err)
	}
	return nil
}
