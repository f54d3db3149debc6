package trello

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://api.trello.com/1"
	defaultTimeout = 30 * time.Second
)

// ErrNotConfigured is returned when the key/token/list trio has not been
// provisioned. Checked before any network call is made.
var ErrNotConfigured = errors.New("trello configuration missing")

// APIError is a non-success response from the Trello API. The raw body is
// retained for diagnostics.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("trello API returned %d: %s", e.StatusCode, e.Body)
}

type Config struct {
	APIKey string
	Token  string
	ListID string
}

func (c Config) Complete() bool {
	return c.APIKey != "" && c.Token != "" && c.ListID != ""
}

// Card is the subset of Trello's card payload the service records.
type Card struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Client talks to the Trello REST API with pre-provisioned credentials.
type Client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:     cfg,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// NewClientWithBaseURL exists for tests that point the client at a local server.
func NewClientWithBaseURL(cfg Config, baseURL string) *Client {
	c := NewClient(cfg)
	c.baseURL = baseURL
	return c
}

func (c *Client) Configured() bool {
	return c.cfg.Complete()
}

// CreateCard creates a card at the top of the configured list with the given
// due date.
func (c *Client) CreateCard(ctx context.Context, name, desc string, due time.Time) (*Card, error) {
	if !c.cfg.Complete() {
		return nil, ErrNotConfigured
	}

	payload := map[string]interface{}{
		"idList": c.cfg.ListID,
		"name":   name,
		"desc":   desc,
		"due":    due.Format(time.DateOnly),
		"pos":    "top",
	}

	var card Card
	if err := c.post(ctx, "/cards", payload, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// AttachURL attaches a link to an existing card.
func (c *Client) AttachURL(ctx context.Context, cardID, attachURL string) error {
	if !c.cfg.Complete() {
		return ErrNotConfigured
	}
	path := fmt.Sprintf("/cards/%s/attachments", url.PathEscape(cardID))
	return c.post(ctx, path, map[string]interface{}{"url": attachURL}, nil)
}

func (c *Client) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal trello payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s%s?key=%s&token=%s",
		c.baseURL, path, url.QueryEscape(c.cfg.APIKey), url.QueryEscape(c.cfg.Token))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build trello request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("trello request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read trello response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode trello response: %w", err)
		}
	}
	return nil
}
