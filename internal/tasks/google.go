package tasks

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	gtasks "google.golang.org/api/tasks/v1"
)

const (
	// DefaultTaskList addresses the user's default Google Tasks list.
	DefaultTaskList = "@default"

	defaultGooglePageSize = 100
)

// GoogleBackend talks to the Google Tasks API.
type GoogleBackend struct {
	svc      *gtasks.Service
	listID   string
	pageSize int64
}

// NewGoogleBackend returns a backend for one task list. token is an OAuth2
// access token with the tasks scope; it is passed through untouched. Extra
// client options (endpoint, HTTP client) are applied after the token source.
func NewGoogleBackend(ctx context.Context, token, listID string, opts ...option.ClientOption) (*GoogleBackend, error) {
	if listID == "" {
		listID = DefaultTaskList
	}
	opts = append([]option.ClientOption{
		option.WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})),
	}, opts...)

	svc, err := gtasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Tasks service: %w", err)
	}
	return &GoogleBackend{svc: svc, listID: listID, pageSize: defaultGooglePageSize}, nil
}

// Create implements Backend.
func (b *GoogleBackend) Create(ctx context.Context, t NewTask) error {
	_, err := b.svc.Tasks.Insert(b.listID, &gtasks.Task{
		Title: t.Title,
		Notes: t.Description,
	}).Context(ctx).Do()
	return err
}

// Page implements Backend. Completed tasks are left out, matching what a
// to-do list shows.
func (b *GoogleBackend) Page(ctx context.Context, cursor string) (Page, error) {
	call := b.svc.Tasks.List(b.listID).
		ShowCompleted(false).
		MaxResults(b.pageSize).
		Context(ctx)
	if cursor != "" {
		call = call.PageToken(cursor)
	}
	res, err := call.Do()
	if err != nil {
		return Page{}, err
	}

	page := Page{Items: make([]Item, 0, len(res.Items)), Next: res.NextPageToken}
	for _, t := range res.Items {
		if t == nil {
			continue
		}
		page.Items = append(page.Items, Item{ID: t.Id, Title: t.Title})
	}
	return page, nil
}
