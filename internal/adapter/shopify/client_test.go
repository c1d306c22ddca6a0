package shopify_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/niksmo/storefront/internal/adapter/shopify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

type recordedRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// newServer answers every request with status and body and
// counts the requests it receives.
func newServer(
	t *testing.T, status int, body string, last *recordedRequest,
) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, testToken, r.Header.Get("X-Shopify-Storefront-Access-Token"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		if last != nil {
			assert.NoError(t, json.Unmarshal(raw, last))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func newClient(t *testing.T, srv *httptest.Server, ttl time.Duration) *shopify.Client {
	t.Helper()
	c, err := shopify.NewClient(
		shopify.Config{
			StoreDomain: "shop.example",
			AccessToken: testToken,
			Timeout:     time.Second,
			CacheTTL:    ttl,
		},
		shopify.EndpointOpt(srv.URL),
		shopify.HTTPClientOpt(srv.Client()),
	)
	require.NoError(t, err)
	return c
}

func TestNewClient(t *testing.T) {
	c, err := shopify.NewClient(shopify.Config{
		StoreDomain: "shop.example", AccessToken: testToken,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example/api/2026-01/graphql.json", c.Endpoint())

	c, err = shopify.NewClient(shopify.Config{
		StoreDomain: "shop.example", AccessToken: testToken, APIVersion: "2025-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example/api/2025-10/graphql.json", c.Endpoint())

	_, err = shopify.NewClient(shopify.Config{StoreDomain: "shop.example"})
	assert.Error(t, err)
	_, err = shopify.NewClient(shopify.Config{AccessToken: testToken})
	assert.Error(t, err)
}

func TestClientExecute(t *testing.T) {
	t.Run("UnwrapsData", func(t *testing.T) {
		var req recordedRequest
		srv, _ := newServer(t, http.StatusOK, `{"data":{"shop":{"name":"Demo"}}}`, &req)
		c := newClient(t, srv, 0)

		var out struct {
			Shop struct {
				Name string `json:"name"`
			} `json:"shop"`
		}
		err := c.Execute(t.Context(), "query { shop { name } }",
			map[string]any{"first": 3}, shopify.NoCache, nil, &out)
		require.NoError(t, err)

		assert.Equal(t, "Demo", out.Shop.Name)
		assert.Equal(t, "query { shop { name } }", req.Query)
		assert.EqualValues(t, 3, req.Variables["first"])
	})

	t.Run("TransportError", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusUnauthorized, `{"errors":"bad token"}`, nil)
		c := newClient(t, srv, 0)

		err := c.Execute(t.Context(), "query { shop { name } }", nil, shopify.NoCache, nil, nil)
		var te *shopify.TransportError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, http.StatusUnauthorized, te.Status)
	})

	t.Run("GraphQLErrorUsesFirstMessage", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusOK,
			`{"data":null,"errors":[{"message":"Field 'nope' doesn't exist"},{"message":"second"}]}`, nil)
		c := newClient(t, srv, 0)

		err := c.Execute(t.Context(), "query { nope }", nil, shopify.NoCache, nil, nil)
		var ge *shopify.GraphQLError
		require.ErrorAs(t, err, &ge)
		assert.Equal(t, "Field 'nope' doesn't exist", ge.Message)
	})

	t.Run("Timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		t.Cleanup(srv.Close)

		c, err := shopify.NewClient(
			shopify.Config{
				StoreDomain: "shop.example",
				AccessToken: testToken,
				Timeout:     50 * time.Millisecond,
			},
			shopify.EndpointOpt(srv.URL),
		)
		require.NoError(t, err)

		err = c.Execute(t.Context(), "query { shop { name } }", nil, shopify.NoCache, nil, nil)
		assert.Error(t, err)
	})
}

func TestClientCache(t *testing.T) {
	srv, calls := newServer(t, http.StatusOK, `{"data":{"ok":true}}`, nil)
	c := newClient(t, srv, time.Minute)

	exec := func(mode shopify.CacheMode, tags ...string) {
		var out struct {
			OK bool `json:"ok"`
		}
		require.NoError(t, c.Execute(t.Context(), "query { ok }", nil, mode, tags, &out))
		assert.True(t, out.OK)
	}

	exec(shopify.CacheLongLived, "products", "product-shirt")
	exec(shopify.CacheLongLived, "products", "product-shirt")
	assert.EqualValues(t, 1, calls.Load())

	exec(shopify.NoCache)
	assert.EqualValues(t, 2, calls.Load())

	assert.Equal(t, 0, c.Revalidate("collections"))
	assert.Equal(t, 1, c.Revalidate("product-shirt"))

	exec(shopify.CacheLongLived, "products", "product-shirt")
	assert.EqualValues(t, 3, calls.Load())
}
