package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gamesync/core/fetch"
	"gamesync/feature/library/currency"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testFetcher(t *testing.T) *fetch.Fetcher {
	t.Helper()
	return fetch.New(fetch.Config{
		Concurrency:    3,
		MinDelayMs:     1,
		MaxRetries:     2,
		BackoffBaseMs:  1,
		TimeoutSeconds: 5,
	}, zap.NewNop())
}

func testClient(t *testing.T, apiURL, storeURL, ratesURL string) *Client {
	t.Helper()
	cfg := Config{
		ApiBaseURL:        apiURL,
		StoreBaseURL:      storeURL,
		ApiKey:            "test-key",
		RatesURL:          ratesURL,
		ReferenceCurrency: "EUR",
		CountryCode:       "de",
	}
	normalizer := currency.NewNormalizer(ratesURL, zap.NewNop()).WithRetryDelay(time.Millisecond)
	return NewClient(cfg, testFetcher(t), normalizer, zap.NewNop())
}

func TestFetchOwnedItems_ReturnsIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "111", r.URL.Query().Get("steamid"))
		fmt.Fprint(w, `{"response":{"game_count":2,"games":[{"appid":42},{"appid":7}]}}`)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL, srv.URL, srv.URL)
	ids, err := c.FetchOwnedItems(context.Background(), "111")

	require.NoError(t, err)
	assert.Equal(t, []uint64{42, 7}, ids)
}

func TestFetchOwnedItems_AbsentListIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Private libraries answer with an empty response object.
		fmt.Fprint(w, `{"response":{}}`)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL, srv.URL, srv.URL)
	ids, err := c.FetchOwnedItems(context.Background(), "111")

	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestFetchOwnedItems_TransportFailureIsReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL, srv.URL, srv.URL)
	_, err := c.FetchOwnedItems(context.Background(), "111")

	assert.Error(t, err)
}

func TestFetchDetails_Found(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "42", r.URL.Query().Get("appids"))
		assert.Equal(t, "de", r.URL.Query().Get("cc"))
		fmt.Fprint(w, `{"42":{"success":true,"data":{
			"steam_appid":42,
			"name":"Portal",
			"short_description":"A puzzle game.",
			"platforms":{"windows":true,"mac":true,"linux":false},
			"header_image":"https://cdn.example/header.jpg",
			"screenshots":[{"path_full":"https://cdn.example/s1.jpg"}],
			"price_overview":{"currency":"EUR","initial":999,"final":499,"discount_percent":50}
		}}}`)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL, srv.URL, srv.URL)
	result := c.FetchDetails(context.Background(), 42, nil)

	require.Equal(t, DetailFound, result.Status)
	require.NotNil(t, result.Record)
	assert.Equal(t, uint64(42), result.Record.ItemID)
	assert.Equal(t, "Portal", result.Record.Name)
	assert.True(t, result.Record.Platforms.Windows)
	assert.False(t, result.Record.Platforms.Linux)
	assert.Equal(t, "https://cdn.example/header.jpg", result.Record.Media.HeaderImage)
	assert.Equal(t, []string{"https://cdn.example/s1.jpg"}, result.Record.Media.Screenshots)
	require.NotNil(t, result.Record.Price)
	assert.Equal(t, int64(499), result.Record.Price.Final)
	assert.False(t, result.Record.LastModified.IsZero())
}

func TestFetchDetails_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"42":{"success":false}}`)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL, srv.URL, srv.URL)
	result := c.FetchDetails(context.Background(), 42, nil)

	assert.Equal(t, DetailNotFound, result.Status)
	assert.Nil(t, result.Record)
}

func TestFetchDetails_IDMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Delisted items redirect to a successor with a different id.
		fmt.Fprint(w, `{"42":{"success":true,"data":{"steam_appid":9000,"name":"Successor"}}}`)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL, srv.URL, srv.URL)
	result := c.FetchDetails(context.Background(), 42, nil)

	assert.Equal(t, DetailIDMismatch, result.Status)
}

func TestFetchDetails_UndecodableBodyIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>maintenance</html>`)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL, srv.URL, srv.URL)
	result := c.FetchDetails(context.Background(), 42, nil)

	assert.Equal(t, DetailTransientFailure, result.Status)
}

func TestFetchDetails_ExhaustedThrottlingIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	var reported int
	c := testClient(t, srv.URL, srv.URL, srv.URL)
	result := c.FetchDetails(context.Background(), 42, func(wait time.Duration, attempt int) {
		reported++
	})

	assert.Equal(t, DetailTransientFailure, result.Status)
	assert.Equal(t, 2, reported)
}

func TestFetchDetails_NormalizesForeignCurrency(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/appdetails", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"42":{"success":true,"data":{
			"steam_appid":42,"name":"Portal",
			"price_overview":{"currency":"USD","initial":1000,"final":500,"discount_percent":50}
		}}}`)
	})
	mux.HandleFunc("/USD", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"rates":{"EUR":0.9}}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := testClient(t, srv.URL, srv.URL, srv.URL)
	result := c.FetchDetails(context.Background(), 42, nil)

	require.Equal(t, DetailFound, result.Status)
	require.NotNil(t, result.Record.Price)
	assert.Equal(t, "EUR", result.Record.Price.Currency)
	assert.Equal(t, int64(900), result.Record.Price.Initial)
	assert.Equal(t, int64(450), result.Record.Price.Final)
}

func TestFetchDetails_KeepsQuoteWithoutPlausibleRate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/appdetails", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"42":{"success":true,"data":{
			"steam_appid":42,"name":"Portal",
			"price_overview":{"currency":"USD","initial":1000,"final":500}
		}}}`)
	})
	mux.HandleFunc("/USD", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := testClient(t, srv.URL, srv.URL, srv.URL)
	result := c.FetchDetails(context.Background(), 42, nil)

	require.Equal(t, DetailFound, result.Status)
	assert.Equal(t, "USD", result.Record.Price.Currency)
	assert.Equal(t, int64(1000), result.Record.Price.Initial)
}
