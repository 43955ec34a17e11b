// Package client provides an HTTP client for the Fritter engagement API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Freet is a short post as served by the engagement API.
type Freet struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// RankedFreet is a freet with its aggregate recommendation score.
type RankedFreet struct {
	Freet
	Score int `json:"score"`
}

// Reaction is one user's emotional response to a freet.
type Reaction struct {
	ID             string    `json:"id"`
	User           string    `json:"user"`
	FreetID        string    `json:"freet"`
	Kind           string    `json:"reaction"`
	PostBoost      int       `json:"post_boost"`
	Recommendation string    `json:"recommendation"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Bookmark records that a user saved a freet.
type Bookmark struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	FreetID   string    `json:"freet"`
	CreatedAt time.Time `json:"created_at"`
}

// Status is a short-lived user status.
type Status struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Notification tells a freet author about engagement on their freet.
type Notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	FreetID   string    `json:"freet"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type listResponse[T any] struct {
	Data []T `json:"data"`
}

// Client is an HTTP client for the Fritter engagement API.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// NewClient creates a new API client.
func NewClient(baseURL, apiToken string) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string) (*http.Response, error) {
	return c.doRequestWithBody(ctx, method, path, nil)
}

func (c *Client) doJSONRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshalling request: %w", err)
	}
	return c.doRequestWithBody(ctx, method, path, bytes.NewReader(jsonBody))
}

func (c *Client) doRequestWithBody(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

func (c *Client) handleResponse(resp *http.Response, result any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}

	var result listResponse[T]
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return result.Data, nil
}

func withQuery(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}

// RankedFreets lists every freet, highest recommendation score first.
func (c *Client) RankedFreets(ctx context.Context) ([]RankedFreet, error) {
	return getList[RankedFreet](ctx, c, "/v1/reactions/freets")
}

// GetFreet retrieves a single freet by ID.
func (c *Client) GetFreet(ctx context.Context, freetID string) (*Freet, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/freets/"+url.PathEscape(freetID))
	if err != nil {
		return nil, err
	}

	var freet Freet
	if err := c.handleResponse(resp, &freet); err != nil {
		return nil, err
	}

	return &freet, nil
}

// ListReactions lists reactions by author username, on a freet, or both.
func (c *Client) ListReactions(ctx context.Context, author, freetID string) ([]Reaction, error) {
	params := url.Values{}
	if author != "" {
		params.Set("author", author)
	}
	if freetID != "" {
		params.Set("freet_id", freetID)
	}
	return getList[Reaction](ctx, c, withQuery("/v1/reactions", params))
}

// CreateReaction reacts to a freet as the token's user.
func (c *Client) CreateReaction(ctx context.Context, freetID, kind string) (*Reaction, error) {
	resp, err := c.doJSONRequest(ctx, http.MethodPost, "/v1/reactions", struct {
		FreetID      string `json:"freet_id"`
		ReactionType string `json:"reaction_type"`
	}{
		FreetID:      freetID,
		ReactionType: kind,
	})
	if err != nil {
		return nil, err
	}

	var reaction Reaction
	if err := c.handleResponse(resp, &reaction); err != nil {
		return nil, err
	}

	return &reaction, nil
}

// ResolveReaction records whether a sad reaction should boost its freet.
func (c *Client) ResolveReaction(ctx context.Context, reactionID, decision string) (*Reaction, error) {
	params := url.Values{}
	params.Set("recommended", decision)

	path := withQuery("/v1/reactions/"+url.PathEscape(reactionID), params)
	resp, err := c.doRequest(ctx, http.MethodPut, path)
	if err != nil {
		return nil, err
	}

	var reaction Reaction
	if err := c.handleResponse(resp, &reaction); err != nil {
		return nil, err
	}

	return &reaction, nil
}

// DeleteReaction removes one of the token user's reactions.
func (c *Client) DeleteReaction(ctx context.Context, reactionID string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/v1/reactions/"+url.PathEscape(reactionID))
	if err != nil {
		return err
	}
	return c.handleResponse(resp, nil)
}

// ListBookmarks lists the freets bookmarked by author, or by the token's user
// when author is empty.
func (c *Client) ListBookmarks(ctx context.Context, author string) ([]Freet, error) {
	params := url.Values{}
	if author != "" {
		params.Set("author", author)
	}
	return getList[Freet](ctx, c, withQuery("/v1/bookmarks", params))
}

// CreateBookmark bookmarks a freet as the token's user.
func (c *Client) CreateBookmark(ctx context.Context, freetID string) (*Bookmark, error) {
	resp, err := c.doJSONRequest(ctx, http.MethodPost, "/v1/bookmarks", struct {
		FreetID string `json:"freet_id"`
	}{
		FreetID: freetID,
	})
	if err != nil {
		return nil, err
	}

	var bookmark Bookmark
	if err := c.handleResponse(resp, &bookmark); err != nil {
		return nil, err
	}

	return &bookmark, nil
}

// DeleteBookmark removes the token user's bookmark on a freet.
func (c *Client) DeleteBookmark(ctx context.Context, freetID string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/v1/bookmarks/"+url.PathEscape(freetID))
	if err != nil {
		return err
	}
	return c.handleResponse(resp, nil)
}

// ListStatuses lists live statuses, optionally only those of author.
func (c *Client) ListStatuses(ctx context.Context, author string) ([]Status, error) {
	params := url.Values{}
	if author != "" {
		params.Set("author", author)
	}
	return getList[Status](ctx, c, withQuery("/v1/statuses", params))
}

// ListNotifications lists the token user's unexpired notifications.
func (c *Client) ListNotifications(ctx context.Context) ([]Notification, error) {
	return getList[Notification](ctx, c, "/v1/notifications")
}
