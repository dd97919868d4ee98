package main

import (
	"context"
	"fmt"
	"io"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/petasbytes/taskchat/internal/config"
	"github.com/petasbytes/taskchat/internal/logging"
	"github.com/petasbytes/taskchat/internal/provider"
	"github.com/petasbytes/taskchat/internal/repl"
	"github.com/petasbytes/taskchat/internal/runner"
	"github.com/petasbytes/taskchat/internal/tasks"
	"github.com/petasbytes/taskchat/internal/telemetry"
	"github.com/petasbytes/taskchat/memory"
	"github.com/petasbytes/taskchat/tools"
)

// run wires the collaborators and blocks in the interaction loop.
func run(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer, llmOpts ...option.RequestOption) error {
	logger := logging.New(errOut, cfg.LogLevel)
	telemetry.Configure(cfg.Observe, cfg.ArtifactsDir)

	creds := config.LoadCredentials(cfg.Backend)
	logger.Debug("starting",
		logging.Backend(cfg.Backend),
		"model", cfg.Model,
		"task_key", logging.SanitizeToken(creds.TaskAPIKey),
		"llm_key", logging.SanitizeToken(creds.LLMAPIKey),
	)

	backend, err := provider.NewTaskBackend(ctx, cfg, creds)
	if err != nil {
		return fmt.Errorf("failed to set up %s backend: %w", cfg.Backend, err)
	}

	r := runner.New(provider.NewAnthropicClient(creds.LLMAPIKey, llmOpts...), tools.Registry(tasks.NewClient(backend)))
	r.Model = anthropic.Model(cfg.Model)
	r.MaxTokens = cfg.MaxTokens
	r.Temperature = cfg.Temperature
	r.MaxSteps = cfg.MaxSteps
	r.HistoryBudget = cfg.HistoryBudget
	r.Logger = logger

	fmt.Fprintln(out, "Chat with your to-do assistant (Ctrl-C or Ctrl-D to quit)")
	loop := &repl.Loop{
		Agent:   r,
		History: &memory.History{},
		In:      in,
		Out:     out,
		Logger:  logger,
	}
	return loop.Run(ctx)
}
