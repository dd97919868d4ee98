package tasks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/oauth2"
)

const (
	// DefaultTodoistURL is the Todoist REST API v1 root.
	DefaultTodoistURL = "https://api.todoist.com/api/v1"

	defaultTodoistPageSize = 50
	maxErrorBody           = 4 << 10
)

// TodoistBackend talks to the Todoist REST API.
type TodoistBackend struct {
	baseURL  string
	pageSize int
	base     *http.Client
	http     *http.Client
}

// TodoistOption configures a TodoistBackend.
type TodoistOption func(*TodoistBackend)

// WithTodoistURL overrides the API root.
func WithTodoistURL(u string) TodoistOption {
	return func(b *TodoistBackend) {
		if u != "" {
			b.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithTodoistPageSize sets the listing page size; values <= 0 keep the default.
func WithTodoistPageSize(n int) TodoistOption {
	return func(b *TodoistBackend) {
		if n > 0 {
			b.pageSize = n
		}
	}
}

// WithTodoistHTTPClient sets the client whose transport carries the
// authenticated requests.
func WithTodoistHTTPClient(c *http.Client) TodoistOption {
	return func(b *TodoistBackend) {
		if c != nil {
			b.base = c
		}
	}
}

// NewTodoistBackend returns a backend authenticating every request with
// apiKey as a bearer token. The key is not checked here; a bad key fails on
// the first call.
func NewTodoistBackend(ctx context.Context, apiKey string, opts ...TodoistOption) *TodoistBackend {
	b := &TodoistBackend{
		baseURL:  DefaultTodoistURL,
		pageSize: defaultTodoistPageSize,
		base:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(b)
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, b.base)
	b.http = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiKey}))
	return b
}

type todoistCreateRequest struct {
	Content     string `json:"content"`
	Description string `json:"description,omitempty"`
}

type todoistTask struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

type todoistPage struct {
	Results    []todoistTask `json:"results"`
	NextCursor *string       `json:"next_cursor"`
}

// Create implements Backend.
func (b *TodoistBackend) Create(ctx context.Context, t NewTask) error {
	body, err := json.Marshal(todoistCreateRequest{Content: t.Title, Description: t.Description})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/tasks", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := checkResponse(resp); err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// Page implements Backend.
func (b *TodoistBackend) Page(ctx context.Context, cursor string) (Page, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(b.pageSize))
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/tasks?"+q.Encode(), nil)
	if err != nil {
		return Page{}, err
	}

	resp, err := b.http.Do(req)
	if err != nil {
		return Page{}, err
	}
	defer resp.Body.Close()
	if err := checkResponse(resp); err != nil {
		return Page{}, err
	}

	var raw todoistPage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return Page{}, fmt.Errorf("decode todoist page: %w", err)
	}
	page := Page{Items: make([]Item, 0, len(raw.Results))}
	for _, t := range raw.Results {
		page.Items = append(page.Items, Item{ID: t.ID, Title: t.Content})
	}
	if raw.NextCursor != nil {
		page.Next = *raw.NextCursor
	}
	return page, nil
}

// checkResponse turns a non-2xx response into an *APIError.
func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(b))}
}
