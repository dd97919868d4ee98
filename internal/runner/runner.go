package runner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/petasbytes/taskchat/internal/logging"
	"github.com/petasbytes/taskchat/internal/telemetry"
	"github.com/petasbytes/taskchat/internal/windowing"
	"github.com/petasbytes/taskchat/memory"
	"github.com/petasbytes/taskchat/tools"
)

const (
	DefaultMaxTokens   = 1024
	DefaultTemperature = 0.3
	DefaultMaxSteps    = 15
)

var (
	// ErrStepLimit is returned when a turn needs more model calls than MaxSteps.
	ErrStepLimit = errors.New("step limit reached")
	// ErrUnknownTool is returned when the model calls a tool that is not registered.
	ErrUnknownTool = errors.New("unknown tool")
)

type Runner struct {
	Client      *anthropic.Client
	Tools       []tools.ToolDefinition
	Model       anthropic.Model
	MaxTokens   int64
	Temperature float64
	MaxSteps    int

	// HistoryBudget caps the estimated size of history sent per request;
	// <= 0 sends all of it.
	HistoryBudget int
	Counter       windowing.TokenCounter

	// Now is the clock used for the date in the system prompt.
	Now    func() time.Time
	Logger *slog.Logger
}

func New(client *anthropic.Client, toolDefs []tools.ToolDefinition) *Runner {
	return &Runner{
		Client:      client,
		Tools:       toolDefs,
		Model:       anthropic.ModelClaude3_7SonnetLatest,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
		MaxSteps:    DefaultMaxSteps,
		Counter:     windowing.HeuristicCounter{},
		Now:         time.Now,
		Logger:      logging.Discard(),
	}
}

func (r *Runner) anthropicTools() []anthropic.ToolUnionParam {
	if len(r.Tools) == 0 {
		return nil
	}
	out := make([]anthropic.ToolUnionParam, 0, len(r.Tools))
	for _, t := range r.Tools {
		out = append(out, anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
			Name:        t.Name,
			Description: anthropic.String(t.Description),
			InputSchema: t.InputSchema,
		}})
	}
	return out
}

// Respond answers input given the prior history. Tool calls requested by the
// model are executed in order until the model replies without one. Any model,
// lookup or tool failure aborts the turn.
func (r *Runner) Respond(ctx context.Context, history *memory.History, input string) (string, error) {
	ctx, turnID := telemetry.EnsureTurnID(ctx)
	logger := r.logger().With(logging.TurnID(turnID))
	start := time.Now()

	window, stats := windowing.Window(history.Turns(), r.HistoryBudget, r.counter())
	telemetry.Emit("turn_started", map[string]any{
		"turn_id":            turnID,
		"model":              string(r.Model),
		"history_turns":      history.Len(),
		"budget":             stats.Budget,
		"total_estimated":    stats.Total,
		"included_exchanges": stats.IncludedExchanges,
		"skipped_exchanges":  stats.SkippedExchanges,
	})
	if stats.OverBudgetNewest {
		logger.Debug("history budget too small for newest exchange; sending input only", "budget", stats.Budget)
	}

	conv := memory.ToMessageParams(window)
	conv = append(conv, anthropic.NewUserMessage(anthropic.NewTextBlock(input)))
	system := SystemPrompt(r.now())

	answer, steps, err := r.loop(ctx, logger, system, conv)

	fields := map[string]any{
		"turn_id":     turnID,
		"steps":       steps,
		"duration_ms": time.Since(start).Milliseconds(),
		"error":       nil,
	}
	if err != nil {
		fields["error"] = "turn failed"
	}
	telemetry.Emit("turn_completed", fields)
	return answer, err
}

func (r *Runner) loop(ctx context.Context, logger *slog.Logger, system string, conv []anthropic.MessageParam) (string, int, error) {
	maxSteps := r.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	for step := 1; step <= maxSteps; step++ {
		msg, results, err := r.runOneStep(ctx, logger, step, system, conv)
		if err != nil {
			return "", step, err
		}
		if len(results) == 0 {
			return messageText(msg), step, nil
		}
		conv = append(conv, msg.ToParam(), anthropic.NewUserMessage(results...))
	}
	return "", maxSteps, fmt.Errorf("%w: %d model calls without a final answer", ErrStepLimit, maxSteps)
}

// runOneStep sends the conversation once and executes any requested tools.
func (r *Runner) runOneStep(ctx context.Context, logger *slog.Logger, step int, system string, conv []anthropic.MessageParam) (*anthropic.Message, []anthropic.ContentBlockParamUnion, error) {
	params := anthropic.MessageNewParams{
		Model:       r.Model,
		MaxTokens:   r.MaxTokens,
		Messages:    conv,
		System:      []anthropic.TextBlockParam{{Text: system}},
		Temperature: anthropic.Float(r.Temperature),
		Tools:       r.anthropicTools(),
	}

	start := time.Now()
	msg, err := r.Client.Messages.New(ctx, params)
	if err != nil {
		return nil, nil, fmt.Errorf("model call failed: %w", err)
	}
	turnID, _ := telemetry.TurnIDFromContext(ctx)
	telemetry.Emit("model_step", map[string]any{
		"turn_id":       turnID,
		"step":          step,
		"stop_reason":   string(msg.StopReason),
		"input_tokens":  msg.Usage.InputTokens,
		"output_tokens": msg.Usage.OutputTokens,
		"duration_ms":   time.Since(start).Milliseconds(),
	})
	logger.Debug("model step", "step", step, "stop_reason", string(msg.StopReason), logging.Duration(time.Since(start)))

	var toolResults []anthropic.ContentBlockParamUnion
	for _, block := range msg.Content {
		if v, ok := block.AsAny().(anthropic.ToolUseBlock); ok {
			input := json.RawMessage(v.JSON.Input.Raw())
			res, err := r.execTool(ctx, logger, v.ID, v.Name, input)
			if err != nil {
				return nil, nil, err
			}
			toolResults = append(toolResults, res)
		}
	}
	return msg, toolResults, nil
}

func (r *Runner) execTool(ctx context.Context, logger *slog.Logger, id, name string, input json.RawMessage) (anthropic.ContentBlockParamUnion, error) {
	var def *tools.ToolDefinition
	for i := range r.Tools {
		if r.Tools[i].Name == name {
			def = &r.Tools[i]
			break
		}
	}

	turnID, _ := telemetry.TurnIDFromContext(ctx)

	emit := func(durationMs int64, inputSize int, outputSize int, errStr string) {
		fields := map[string]any{
			"tool_name":   name,
			"duration_ms": durationMs,
			"input_size":  inputSize,
			"output_size": outputSize,
			"turn_id":     turnID,
		}
		if errStr != "" {
			fields["error"] = errStr
		} else {
			fields["error"] = nil
		}
		telemetry.Emit("tool_exec", fields)
	}

	start := time.Now()
	inSize := len(input)

	if def == nil {
		emit(time.Since(start).Milliseconds(), inSize, 0, "tool not found")
		logger.Debug("tool not found", logging.Tool(name))
		return anthropic.ContentBlockParamUnion{}, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	resp, err := def.Function(ctx, input)
	elapsed := time.Since(start)
	if err != nil {
		// Payloads stay out of telemetry.
		emit(elapsed.Milliseconds(), inSize, 0, "tool error")
		logger.Debug("tool failed", logging.Tool(name), logging.Duration(elapsed), logging.Err(err))
		return anthropic.ContentBlockParamUnion{}, fmt.Errorf("tool %s: %w", name, err)
	}
	emit(elapsed.Milliseconds(), inSize, len(resp), "")
	logger.Debug("tool executed", logging.Tool(name), logging.Duration(elapsed))
	return anthropic.NewToolResultBlock(id, resp, false), nil
}

// messageText joins the text blocks of msg.
func messageText(msg *anthropic.Message) string {
	var parts []string
	for _, b := range msg.Content {
		if tb, ok := b.AsAny().(anthropic.TextBlock); ok && tb.Text != "" {
			parts = append(parts, tb.Text)
		}
	}
	return strings.Join(parts, "\n")
}

func (r *Runner) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

func (r *Runner) counter() windowing.TokenCounter {
	if r.Counter == nil {
		return windowing.HeuristicCounter{}
	}
	return r.Counter
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return logging.Discard()
	}
	return r.Logger
}
