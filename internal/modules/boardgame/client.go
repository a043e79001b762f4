package boardgame

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrGameNotFound means the external database answered but had no usable
// record for the id. Distinct from transport failures so callers can map it
// to a 404 instead of a 500.
var ErrGameNotFound = errors.New("game not found")

// Client talks to the external board-game database over its JSON gateway.
// The gateway is inconsistent about single results: "items" can be an
// object or a list, which the normalizer tolerates.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type lookupResponse struct {
	Items json.RawMessage `json:"items"`
}

// Search calls the free-text search endpoint and returns the raw item
// records in the order the source ranked them.
func (c *Client) Search(ctx context.Context, query string) ([]json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/search?query=%s", c.baseURL, url.QueryEscape(query))

	items, err := c.fetchItems(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	return items, nil
}

// Thing calls the detail endpoint for a single game id.
func (c *Client) Thing(ctx context.Context, id string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/thing?id=%s", c.baseURL, url.QueryEscape(id))

	items, err := c.fetchItems(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, ErrGameNotFound
	}

	return items[0], nil
}

func (c *Client) fetchItems(ctx context.Context, endpoint string) ([]json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("game database returned status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	return oneOrMany(body.Items), nil
}
