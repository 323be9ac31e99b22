package gateway_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"pizza-platform/internal/gateway"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxy_ForwardsBodyAndPath(t *testing.T) {
	var gotPath, gotContentLength, gotBody string

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentLength = r.Header.Get("Content-Length")
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"data":{"id":"o1"}}`))
	}))
	defer upstream.Close()

	p := gateway.NewProxy("test", []gateway.Route{
		{Prefix: "/api/orders", Upstream: upstream.URL + "/api/orders", Timeout: time.Second},
	})

	payload := `{"userId":"u1","items":[{"pizzaId":"p1","quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders/", strings.NewReader(payload))
	rr := httptest.NewRecorder()

	p.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	// upstream saw the request exactly as the client sent it
	assert.Equal(t, "/api/orders/", gotPath)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, strconv.Itoa(len(payload)), gotContentLength)

	// upstream's answer is relayed verbatim
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"data":{"id":"o1"}}`, string(body))
}

func TestProxy_RelaysUpstreamErrors(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"pizza not found"}`))
	}))
	defer upstream.Close()

	p := gateway.NewProxy("test", []gateway.Route{
		{Prefix: "/api/menu", Upstream: upstream.URL + "/api/menu", Timeout: time.Second},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/menu/missing", nil)
	rr := httptest.NewRecorder()

	p.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "pizza not found")
}

func TestProxy_UnknownRoute(t *testing.T) {
	p := gateway.NewProxy("test", []gateway.Route{
		{Prefix: "/api/menu", Upstream: "http://localhost:0/api/menu", Timeout: time.Second},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rr := httptest.NewRecorder()

	p.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Route /api/unknown not found", resp["message"])
}

func TestProxy_UpstreamDown(t *testing.T) {
	// a closed server guarantees a connection error
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	var intercepted error
	p := gateway.NewProxy("test", []gateway.Route{
		{Prefix: "/api/orders", Upstream: upstream.URL + "/api/orders", Timeout: time.Second},
	}, gateway.WithErrorInterceptors(func(r *http.Request, err error) {
		intercepted = err
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/orders/", nil)
	rr := httptest.NewRecorder()

	p.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Error(t, intercepted)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Service temporarily unavailable", resp["message"])
	// outside production the cause is exposed for debugging
	assert.NotEmpty(t, resp["error"])
}

func TestProxy_ProductionHidesCause(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	p := gateway.NewProxy("production", []gateway.Route{
		{Prefix: "/api/orders", Upstream: upstream.URL + "/api/orders", Timeout: time.Second},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/orders/", nil)
	rr := httptest.NewRecorder()

	p.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	_, hasCause := resp["error"]
	assert.False(t, hasCause)
}

func TestProxy_Timeout(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer upstream.Close()

	p := gateway.NewProxy("test", []gateway.Route{
		{Prefix: "/api/orders", Upstream: upstream.URL + "/api/orders", Timeout: 50 * time.Millisecond},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/orders/", nil)
	rr := httptest.NewRecorder()

	start := time.Now()
	p.ServeHTTP(rr, req)

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, rr.Body.String(), "Service temporarily unavailable")
}

func TestProxy_LongestPrefixWins(t *testing.T) {
	var hit string

	general := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = "general"
	}))
	defer general.Close()

	specific := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = "specific"
	}))
	defer specific.Close()

	p := gateway.NewProxy("test", []gateway.Route{
		{Prefix: "/api", Upstream: general.URL + "/api", Timeout: time.Second},
		{Prefix: "/api/menu", Upstream: specific.URL + "/api/menu", Timeout: time.Second},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/menu/p1", nil)
	rr := httptest.NewRecorder()

	p.ServeHTTP(rr, req)

	assert.Equal(t, "specific", hit)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestProxy_MountedAsFallback(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	}))
	defer upstream.Close()

	p := gateway.NewProxy("test", []gateway.Route{
		{Prefix: "/api/menu", Upstream: upstream.URL + "/api/menu", Timeout: time.Second},
	})

	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("local"))
	})
	p.Init(r)

	// local routes stay local
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, "local", rr.Body.String())

	// everything else goes through the route table
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/menu/p1", nil))
	assert.JSONEq(t, `{"success":true}`, rr.Body.String())
}
