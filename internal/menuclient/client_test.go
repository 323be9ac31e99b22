package menuclient_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pizza-platform/internal/entities"
	"pizza-platform/internal/menuclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *menuclient.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return menuclient.New(logger, server.URL+"/api/menu", time.Second)
}

func TestClient_GetPizzaByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/menu/p1", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success":true,"data":{"id":"p1","name":"Margherita","price":45,"available":true}}`))
		})

		got, err := client.GetPizzaByID(context.Background(), "p1")
		require.NoError(t, err)
		assert.Equal(t, entities.Pizza{ID: "p1", Name: "Margherita", Price: 45, Available: true}, got)
	})

	t.Run("not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"message":"pizza not found"}`))
		})

		_, err := client.GetPizzaByID(context.Background(), "missing")
		assert.ErrorIs(t, err, entities.ErrPizzaNotFound)
	})

	t.Run("unexpected status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.GetPizzaByID(context.Background(), "p1")
		assert.ErrorIs(t, err, entities.ErrMenuUnavailable)
	})

	t.Run("malformed response", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		})

		_, err := client.GetPizzaByID(context.Background(), "p1")
		assert.ErrorIs(t, err, entities.ErrMenuUnavailable)
	})

	t.Run("success false in body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":false,"message":"pizza not found"}`))
		})

		_, err := client.GetPizzaByID(context.Background(), "p1")
		assert.ErrorIs(t, err, entities.ErrPizzaNotFound)
	})

	t.Run("service unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		client := menuclient.New(logger, server.URL+"/api/menu", time.Second)

		_, err := client.GetPizzaByID(context.Background(), "p1")
		assert.ErrorIs(t, err, entities.ErrMenuUnavailable)
	})
}
