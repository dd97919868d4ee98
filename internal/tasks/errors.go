package tasks

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrEmptyTitle is returned when a task is created without a title.
	ErrEmptyTitle = errors.New("task title must not be empty")
	// ErrCursorLoop is returned when a backend hands back the cursor it was just given.
	ErrCursorLoop = errors.New("task listing returned the same cursor twice")
)

// APIError is a non-2xx response from a task service.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("task api: status %d", e.Status)
	}
	return fmt.Sprintf("task api: status %d: %s", e.Status, e.Body)
}

// Unauthorized reports whether the service rejected the credentials.
func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}
