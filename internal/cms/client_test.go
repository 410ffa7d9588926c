package cms

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bilgisen/atlas/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}

func newTestClient(t *testing.T, h http.HandlerFunc, mutate ...func(*Config)) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	cfg := Config{
		ProjectID:  "proj",
		Dataset:    "production",
		APIVersion: "2024-01-01",
		Timeout:    2 * time.Second,
		BaseURL:    srv.URL,
	}
	for _, m := range mutate {
		m(&cfg)
	}
	return NewClient(cfg)
}

func TestEndpoint(t *testing.T) {
	c := NewClient(Config{ProjectID: "67rpxlqi", Dataset: "production", APIVersion: "2024-01-01"})
	assert.Equal(t, "https://67rpxlqi.api.sanity.io/v2024-01-01/data/query/production", c.Endpoint())

	c = NewClient(Config{ProjectID: "67rpxlqi", Dataset: "production", APIVersion: "2024-01-01", UseCDN: true})
	assert.Equal(t, "https://67rpxlqi.apicdn.sanity.io/v2024-01-01/data/query/production", c.Endpoint())
}

func TestQuerySendsEncodedParams(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2024-01-01/data/query/production", r.URL.Path)
		assert.Equal(t, `*[_id == $id][0]`, r.URL.Query().Get("query"))
		assert.Equal(t, `"abc"`, r.URL.Query().Get("$id"))
		assert.Equal(t, `6`, r.URL.Query().Get("$limit"))
		w.Write([]byte(`{"ms":3,"query":"...","result":{"_id":"abc","title":"Hello"}}`))
	})

	got, err := FetchOne[record](context.Background(), c, `*[_id == $id][0]`, Params{"id": "abc", "limit": 6})
	require.NoError(t, err)
	assert.Equal(t, record{ID: "abc", Title: "Hello"}, got)
}

func TestLongQueriesArePosted(t *testing.T) {
	long := `*[_type == "resource" && title match $q]{` + strings.Repeat("title,", 3000) + `}`
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		var payload struct {
			Query  string                     `json:"query"`
			Params map[string]json.RawMessage `json:"params"`
		}
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, long, payload.Query)
		assert.JSONEq(t, `"acme"`, string(payload.Params["q"]))
		w.Write([]byte(`{"result":[]}`))
	})

	got, err := Fetch[[]record](context.Background(), c, long, Params{"q": "acme"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    error
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error":{"description":"expected '}' following object body","type":"queryParseError"}}`))
			},
			want: ErrStatus,
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html>oops</html>`))
			},
			want: ErrDecode,
		},
		{
			name: "missing result field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"ms":1}`))
			},
			want: ErrDecode,
		},
		{
			name: "unexpected result shape",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"result":"not a record"}`))
			},
			want: ErrDecode,
		},
		{
			name: "null single record",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"result":null}`))
			},
			want: ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler)
			_, err := FetchOne[record](context.Background(), c, "*[0]", nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestStatusErrorCarriesDescription(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"description":"param $id referenced, but not provided","type":"queryParseError"}}`))
	})
	_, err := c.Query(context.Background(), "*[_id == $id]", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "param $id referenced")
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	c := NewClient(Config{ProjectID: "p", Dataset: "d", APIVersion: "2024-01-01", Timeout: time.Second, BaseURL: base})
	_, err := c.Query(context.Background(), "*", nil)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestNullListResultIsEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":null}`))
	})
	got, err := Fetch[[]record](context.Background(), c, "*", nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNoRetryOnFailure(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	_, err := c.Query(context.Background(), "*", nil)
	assert.ErrorIs(t, err, ErrStatus)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestCacheServesRepeatedQueries(t *testing.T) {
	var calls int32
	store := cache.NewMemoryClient()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{"result":[{"_id":"a","title":"A"}]}`))
	}, func(cfg *Config) {
		cfg.Cache = store
		cfg.CacheTTL = time.Minute
	})

	for i := 0; i < 3; i++ {
		got, err := Fetch[[]record](context.Background(), c, "*[_type == $t]", Params{"t": "demo"})
		require.NoError(t, err)
		require.Len(t, got, 1)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	_, err := Fetch[[]record](context.Background(), c, "*[_type == $t]", Params{"t": "persona"})
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestFailuresAreNotCached(t *testing.T) {
	var calls int32
	store := cache.NewMemoryClient()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}, func(cfg *Config) {
		cfg.Cache = store
		cfg.CacheTTL = time.Minute
	})

	_, _ = c.Query(context.Background(), "*", nil)
	_, _ = c.Query(context.Background(), "*", nil)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, 0, store.Len())
}
