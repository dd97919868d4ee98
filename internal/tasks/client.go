package tasks

import (
	"context"
	"fmt"
	"iter"
	"strings"
)

// Client exposes the task operations used by the assistant's tools.
type Client struct {
	backend Backend
}

// NewClient wraps a backend.
func NewClient(b Backend) *Client {
	return &Client{backend: b}
}

// CreateTask creates a task with the given title and optional description.
func (c *Client) CreateTask(ctx context.Context, title, description string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if err := c.backend.Create(ctx, NewTask{Title: title, Description: description}); err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// Titles returns a lazy sequence over the titles of every task, page by page,
// in the order the service returns them. The next page is fetched only once
// the current one has been consumed. On failure the error is yielded once and
// the sequence ends.
func (c *Client) Titles(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		cursor := ""
		for {
			page, err := c.backend.Page(ctx, cursor)
			if err != nil {
				yield("", fmt.Errorf("failed to list tasks: %w", err))
				return
			}
			for _, it := range page.Items {
				if !yield(it.Title, nil) {
					return
				}
			}
			if page.Next == "" {
				return
			}
			if page.Next == cursor {
				yield("", fmt.Errorf("failed to list tasks: %w", ErrCursorLoop))
				return
			}
			cursor = page.Next
		}
	}
}

// ListTasks drains Titles into a slice. The result is never nil on success.
func (c *Client) ListTasks(ctx context.Context) ([]string, error) {
	titles := []string{}
	for title, err := range c.Titles(ctx) {
		if err != nil {
			return nil, err
		}
		titles = append(titles, title)
	}
	return titles, nil
}
