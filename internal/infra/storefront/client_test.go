//go:build unit

package storefront

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"catalog-sync/internal/domain/catalog"
	"catalog-sync/internal/domain/settings"
	"catalog-sync/internal/pkg/config"
	"catalog-sync/internal/pkg/errs"
	"catalog-sync/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = settings.Credentials{ShopDomain: "shop-1.myshopify.com", AccessToken: "shpat_test"}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(config.StorefrontConfig{
		APIVersion: "2025-01",
		Endpoint:   srv.URL,
		Timeout:    time.Second,
		MaxRetries: 2,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.initialInterval = time.Millisecond
	return c, &calls
}

func writeData(w http.ResponseWriter, data string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, `{"data":`+data+`}`)
}

func TestGetProduct(t *testing.T) {
	t.Run("maps the size option, variants and media", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/admin/api/2025-01/graphql.json", r.URL.Path)
			assert.Equal(t, "shpat_test", r.Header.Get("X-Shopify-Access-Token"))

			var req gqlRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "gid://shopify/Product/1", req.Variables["id"])

			writeData(w, `{"product":{
				"id":"gid://shopify/Product/1",
				"options":[{"id":"gid://shopify/ProductOption/1","name":"Size","optionValues":[
					{"id":"gid://shopify/ProductOptionValue/40","name":"40"}]}],
				"variants":{"nodes":[{
					"id":"gid://shopify/ProductVariant/40","price":"120.00","compareAtPrice":null,
					"selectedOptions":[{"name":"Size","value":"40"}],
					"inventoryItem":{"id":"gid://shopify/InventoryItem/40"}}]},
				"media":{"nodes":[{"id":"gid://shopify/MediaImage/9"}]}
			}}`)
		})

		state, err := c.GetProduct(context.Background(), testCreds, "gid://shopify/Product/1")

		require.NoError(t, err)
		require.NotNil(t, state)
		assert.Equal(t, "gid://shopify/ProductOption/1", state.OptionID)
		require.Len(t, state.Variants, 1)
		assert.Equal(t, "40", state.Variants[0].OptionValueName)
		assert.Equal(t, "", state.Variants[0].CompareAtPrice)
		assert.Equal(t, "gid://shopify/InventoryItem/40", state.Variants[0].InventoryItemID)
		assert.Equal(t, []string{"gid://shopify/MediaImage/9"}, state.MediaIDs)
	})

	t.Run("returns nil for a missing product", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeData(w, `{"product":null}`)
		})

		state, err := c.GetProduct(context.Background(), testCreds, "gid://shopify/Product/404")

		require.NoError(t, err)
		assert.Nil(t, state)
	})
}

func TestInventoryLevels(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req gqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gid://shopify/Location/1", req.Variables["locationId"])
		assert.Equal(t, []any{"gid://shopify/InventoryItem/40", "gid://shopify/InventoryItem/41"}, req.Variables["ids"])

		writeData(w, `{"nodes":[
			{"id":"gid://shopify/InventoryItem/40","inventoryLevel":{"quantities":[{"name":"available","quantity":4}]}},
			{"id":"gid://shopify/InventoryItem/41","inventoryLevel":null}
		]}`)
	})

	levels, err := c.InventoryLevels(context.Background(), testCreds, "gid://shopify/Location/1",
		[]string{"gid://shopify/InventoryItem/40", "gid://shopify/InventoryItem/41"})

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"gid://shopify/InventoryItem/40": 4}, levels)
}

func TestRetryPolicy(t *testing.T) {
	t.Run("retries a throttled response", func(t *testing.T) {
		var n atomic.Int32
		c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if n.Add(1) == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			writeData(w, `{"location":{"id":"gid://shopify/Location/1"}}`)
		})

		id, err := c.PrimaryLocationID(context.Background(), testCreds)

		require.NoError(t, err)
		assert.Equal(t, "gid://shopify/Location/1", id)
		assert.EqualValues(t, 2, calls.Load())
	})

	t.Run("retries a 5xx response until the budget is spent", func(t *testing.T) {
		c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := c.GetProduct(context.Background(), testCreds, "gid://shopify/Product/1")

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrUnavailable))
		assert.EqualValues(t, 3, calls.Load())
	})

	t.Run("gives up on a THROTTLED graphql error after the budget", func(t *testing.T) {
		c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"errors":[{"message":"Throttled","extensions":{"code":"THROTTLED"}}]}`)
		})

		_, err := c.GetProduct(context.Background(), testCreds, "gid://shopify/Product/1")

		require.Error(t, err)
		assert.True(t, errs.Is(err, ErrThrottled))
		assert.EqualValues(t, 3, calls.Load())
	})

	t.Run("does not retry a client error", func(t *testing.T) {
		c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := c.GetProduct(context.Background(), testCreds, "gid://shopify/Product/1")

		var httpErr *HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
		assert.EqualValues(t, 1, calls.Load())
	})
}

func TestUserErrors(t *testing.T) {
	t.Run("TAKEN marks already exists", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeData(w, `{"metafieldDefinitionCreate":{"createdDefinition":null,
				"userErrors":[{"field":["definition","key"],"message":"Key is in use","code":"TAKEN"}]}}`)
		})

		err := c.CreateMetafieldDefinition(context.Background(), testCreds, shared.MetafieldDefinition{
			Namespace: "retailer", Key: "brand", Name: "Brand", Type: "single_line_text_field",
		})

		require.Error(t, err)
		assert.True(t, errs.Is(err, shared.ErrAlreadyExists))
		var ue *UserErrors
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, "metafieldDefinitionCreate", ue.Operation)
	})

	t.Run("a missing product marks product gone", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeData(w, `{"productDelete":{"deletedProductId":null,
				"userErrors":[{"field":["id"],"message":"Product does not exist"}]}}`)
		})

		err := c.DeleteProduct(context.Background(), testCreds, "gid://shopify/Product/1")

		require.Error(t, err)
		assert.True(t, errs.Is(err, shared.ErrProductGone))
	})

	t.Run("any other user error is a plain failure", func(t *testing.T) {
		c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeData(w, `{"inventoryAdjustQuantities":{
				"userErrors":[{"field":["input","changes"],"message":"Invalid location","code":"INVALID_LOCATION"}]}}`)
		})

		err := c.AdjustInventory(context.Background(), testCreds, shared.InventoryAdjustment{
			LocationID: "gid://shopify/Location/1",
			Reason:     "correction",
			Name:       "available",
			Changes:    []catalog.InventoryChange{{InventoryItemID: "gid://shopify/InventoryItem/40", Delta: 2}},
		})

		require.Error(t, err)
		assert.False(t, errs.Is(err, shared.ErrAlreadyExists))
		assert.Contains(t, err.Error(), "input.changes: Invalid location")
		assert.EqualValues(t, 1, calls.Load())
	})
}

func TestLookupsAreCached(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeData(w, `{"publications":{"nodes":[
			{"id":"gid://shopify/Publication/2","name":"Point of Sale"},
			{"id":"gid://shopify/Publication/1","name":"Online Store"}]}}`)
	})

	for range 2 {
		id, err := c.OnlineStorePublicationID(context.Background(), testCreds)
		require.NoError(t, err)
		assert.Equal(t, "gid://shopify/Publication/1", id)
	}
	assert.EqualValues(t, 1, calls.Load())
}

func TestEmptyMutationsSkipTheNetwork(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request")
	})
	ctx := context.Background()

	require.NoError(t, c.DeleteFiles(ctx, testCreds, nil))
	require.NoError(t, c.SetMetafields(ctx, testCreds, "gid://shopify/Product/1", nil))
	require.NoError(t, c.DeleteMetafields(ctx, testCreds, "gid://shopify/Product/1", nil))
	require.NoError(t, c.AdjustInventory(ctx, testCreds, shared.InventoryAdjustment{}))
	levels, err := c.InventoryLevels(ctx, testCreds, "gid://shopify/Location/1", nil)
	require.NoError(t, err)
	assert.Empty(t, levels)
	assert.EqualValues(t, 0, calls.Load())
}
