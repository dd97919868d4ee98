package provider

import (
	"context"
	"fmt"

	"github.com/petasbytes/taskchat/internal/config"
	"github.com/petasbytes/taskchat/internal/tasks"
)

// NewTaskBackend builds the task service backend selected by cfg.
func NewTaskBackend(ctx context.Context, cfg *config.Config, creds config.Credentials) (tasks.Backend, error) {
	switch cfg.Backend {
	case config.BackendTodoist:
		return tasks.NewTodoistBackend(ctx, creds.TaskAPIKey, tasks.WithTodoistURL(cfg.TodoistURL)), nil
	case config.BackendGoogle:
		b, err := tasks.NewGoogleBackend(ctx, creds.TaskAPIKey, cfg.TaskList)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
