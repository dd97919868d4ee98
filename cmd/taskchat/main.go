package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/petasbytes/taskchat/internal/config"
	"github.com/petasbytes/taskchat/internal/provider"
	"github.com/petasbytes/taskchat/internal/tasks"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	var cfg config.Config
	kong.Parse(&cfg,
		kong.Name("taskchat"),
		kong.Description("Chat with an assistant that manages your to-do list."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"default_model":       string(provider.DefaultModel),
			"default_task_list":   tasks.DefaultTaskList,
			"default_todoist_url": tasks.DefaultTodoistURL,
		},
	)

	// Ctrl-C / SIGTERM end the session cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, &cfg, os.Stdin, os.Stdout, os.Stderr); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
