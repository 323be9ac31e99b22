// Package gateway implements the platform's single entry point: a route
// table matched by path prefix, with every failure mode normalized into
// the shared response envelope.
package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"pizza-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// Route maps a path prefix to an upstream base address. The upstream
// address already carries the service's own mount path, e.g.
// "http://menu:3002/api/menu" for the "/api/menu" prefix, so the request
// the upstream sees is identical to the one the client sent.
type Route struct {
	Prefix   string
	Upstream string
	Timeout  time.Duration
}

// Interceptors run around every forwarded call, replacing the proxy
// callbacks of older deployments with an explicit pipeline.
type (
	RequestInterceptor  func(r *http.Request)
	ResponseInterceptor func(r *http.Request, resp *http.Response)
	ErrorInterceptor    func(r *http.Request, err error)
)

type Proxy struct {
	routes []Route
	client *http.Client
	env    string

	onRequest  []RequestInterceptor
	onResponse []ResponseInterceptor
	onError    []ErrorInterceptor
}

type Option func(*Proxy)

func WithRequestInterceptors(ics ...RequestInterceptor) Option {
	return func(p *Proxy) { p.onRequest = append(p.onRequest, ics...) }
}

func WithResponseInterceptors(ics ...ResponseInterceptor) Option {
	return func(p *Proxy) { p.onResponse = append(p.onResponse, ics...) }
}

func WithErrorInterceptors(ics ...ErrorInterceptor) Option {
	return func(p *Proxy) { p.onError = append(p.onError, ics...) }
}

func NewProxy(env string, routes []Route, opts ...Option) *Proxy {
	sorted := make([]Route, len(routes))
	copy(sorted, routes)
	// longest prefix wins when prefixes overlap
	sort.Slice(sorted, func(i, j int) bool {
		return len(sorted[i].Prefix) > len(sorted[j].Prefix)
	})

	p := &Proxy{
		routes: sorted,
		// timeouts are enforced per request from the route table
		client: &http.Client{},
		env:    env,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Init mounts the proxy as the router's fallback so /health and /metrics
// stay local while everything else is matched against the route table.
func (p *Proxy) Init(r chi.Router) {
	r.NotFound(p.ServeHTTP)
}

func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	route, ok := p.match(r.URL.Path)
	if !ok {
		utils.WriteError(w, fmt.Sprintf("Route %s not found", r.URL.Path), http.StatusNotFound)
		return
	}
	p.forward(w, r, route)
}

func (p *Proxy) match(path string) (Route, bool) {
	for _, route := range p.routes {
		if strings.HasPrefix(path, route.Prefix) {
			return route, true
		}
	}
	return Route{}, false
}

func (p *Proxy) forward(w http.ResponseWriter, r *http.Request, route Route) {
	ctx, cancel := context.WithTimeout(r.Context(), route.Timeout)
	defer cancel()

	target := route.Upstream + strings.TrimPrefix(r.URL.Path, route.Prefix)
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	// Body-bearing methods are buffered so the forwarded request carries an
	// exact Content-Length; streaming the original reader would force
	// chunked encoding and lose the length header.
	var body io.Reader
	var buffered []byte
	if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			utils.WriteError(w, "failed to read request body", http.StatusBadRequest)
			return
		}
		buffered = data
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		p.writeUnavailable(w, r, route, err)
		return
	}

	req.Header = r.Header.Clone()
	req.Header.Del("Connection")
	if buffered != nil {
		req.ContentLength = int64(len(buffered))
		req.Header.Set("Content-Length", strconv.Itoa(len(buffered)))
	}

	for _, ic := range p.onRequest {
		ic(req)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.writeUnavailable(w, r, route, err)
		return
	}
	defer resp.Body.Close()

	for _, ic := range p.onResponse {
		ic(r, resp)
	}
	proxiedRequests.WithLabelValues(route.Prefix, strconv.Itoa(resp.StatusCode)).Inc()

	// relay status and body verbatim
	for key, values := range resp.Header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	w.WriteHeader(resp.StatusCode)
	io.Copy(w, resp.Body)
}

func (p *Proxy) writeUnavailable(w http.ResponseWriter, r *http.Request, route Route, err error) {
	for _, ic := range p.onError {
		ic(r, err)
	}
	proxyErrors.WithLabelValues(route.Prefix).Inc()

	cause := ""
	if p.env != "production" {
		cause = err.Error()
	}
	utils.WriteErrorCause(w, "Service temporarily unavailable", cause, http.StatusServiceUnavailable)
}
