// Package menuclient is the order service's view of the menu service:
// a single read-by-id lookup. Results are never cached, every call is a
// fresh read so pricing always reflects the menu at order time.
package menuclient

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"pizza-platform/internal/entities"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New builds a client for the given menu service base URL, e.g.
// "http://localhost:3002/api/menu".
func New(logger *slog.Logger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With(slog.String("client", "menu")),
	}
}

type pizzaData struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

type pizzaResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    pizzaData `json:"data"`
}

// GetPizzaByID distinguishes "the pizza does not exist" (ErrPizzaNotFound)
// from "could not find out" (ErrMenuUnavailable); callers rely on that to
// decide between a 404 and a 503.
func (c *Client) GetPizzaByID(ctx context.Context, id string) (entities.Pizza, error) {
	url := c.baseURL + "/" + id

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entities.Pizza{}, fmt.Errorf("%w: %v", entities.ErrMenuUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("menu lookup failed", slog.String("pizza_id", id), slog.Any("error", err))
		return entities.Pizza{}, fmt.Errorf("%w: %v", entities.ErrMenuUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return entities.Pizza{}, fmt.Errorf("%w: %s", entities.ErrPizzaNotFound, id)
	}
	if resp.StatusCode != http.StatusOK {
		return entities.Pizza{}, fmt.Errorf("%w: unexpected status %d", entities.ErrMenuUnavailable, resp.StatusCode)
	}

	var body pizzaResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entities.Pizza{}, fmt.Errorf("%w: malformed response: %v", entities.ErrMenuUnavailable, err)
	}
	if !body.Success {
		return entities.Pizza{}, fmt.Errorf("%w: %s", entities.ErrPizzaNotFound, id)
	}

	return entities.Pizza{
		ID:        body.Data.ID,
		Name:      body.Data.Name,
		Price:     body.Data.Price,
		Available: body.Data.Available,
	}, nil
}
