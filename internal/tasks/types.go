package tasks

import "context"

// Item is a single task as seen in a listing page. Only the fields the
// assistant reads are kept.
type Item struct {
	ID    string
	Title string
}

// Page is one page of a task listing. An empty Next ends the listing.
type Page struct {
	Items []Item
	Next  string
}

// NewTask is the input for creating a task. Description is optional.
type NewTask struct {
	Title       string
	Description string
}

// Backend is a concrete remote task service.
type Backend interface {
	// Create issues exactly one create request for t.
	Create(ctx context.Context, t NewTask) error
	// Page fetches the listing page addressed by cursor ("" for the first page).
	Page(ctx context.Context, cursor string) (Page, error)
}
