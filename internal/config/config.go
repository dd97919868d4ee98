// Package config holds the command-line and environment configuration.
//
// Tunables are parsed by kong from flags and TASKCHAT_* variables. API keys
// are read from the environment only and are never validated here; a missing
// key shows up as an authentication failure on the first remote call.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	BackendTodoist = "todoist"
	BackendGoogle  = "gtasks"
)

// Environment variables holding credentials.
const (
	EnvTodoistAPIKey    = "TODOIST_API_KEY"
	EnvGoogleTasksToken = "GOOGLE_TASKS_TOKEN"
	EnvAnthropicAPIKey  = "ANTHROPIC_API_KEY"
)

// Config is the kong grammar for the taskchat command.
type Config struct {
	Backend       string  `env:"TASKCHAT_BACKEND" default:"todoist" enum:"todoist,gtasks" help:"Task service backend (todoist or gtasks)." validate:"oneof=todoist gtasks"`
	Model         string  `env:"TASKCHAT_MODEL" default:"${default_model}" help:"Model used for the conversation." validate:"required"`
	Temperature   float64 `env:"TASKCHAT_TEMPERATURE" default:"0.3" help:"Sampling temperature." validate:"gte=0,lte=1"`
	MaxTokens     int64   `env:"TASKCHAT_MAX_TOKENS" default:"1024" help:"Maximum tokens per model reply." validate:"gt=0"`
	MaxSteps      int     `env:"TASKCHAT_MAX_STEPS" default:"15" help:"Maximum model calls per user turn." validate:"gt=0"`
	HistoryBudget int     `env:"TASKCHAT_HISTORY_BUDGET" default:"0" help:"Estimated size budget for history sent to the model (0 sends all)." validate:"gte=0"`
	TaskList      string  `env:"TASKCHAT_TASK_LIST" default:"${default_task_list}" help:"Google Tasks list ID (gtasks backend)."`
	TodoistURL    string  `env:"TASKCHAT_TODOIST_URL" default:"${default_todoist_url}" help:"Todoist API root (todoist backend)." validate:"url"`
	LogLevel      string  `env:"TASKCHAT_LOG_LEVEL" default:"warn" enum:"debug,info,warn,error" help:"Log level."`
	Observe       bool    `env:"TASKCHAT_OBSERVE_JSON" help:"Write per-turn JSONL events."`
	ArtifactsDir  string  `env:"TASKCHAT_ARTIFACTS_DIR" default:".taskchat" help:"Directory for events.jsonl."`
}

// ValidationError reports the first invalid field.
type ValidationError struct {
	Field string
	Tag   string
	Value any
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: failed %q check (value %v)", e.Field, e.Tag, e.Value)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate is called by kong after parsing.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return ValidationError{Field: e.Field(), Tag: e.Tag(), Value: e.Value()}
		}
		return err
	}
	return nil
}

// Credentials are the secrets passed through to the remote services.
type Credentials struct {
	TaskAPIKey string
	LLMAPIKey  string
}

// LoadCredentials reads the keys for backend from the environment.
func LoadCredentials(backend string) Credentials {
	c := Credentials{LLMAPIKey: os.Getenv(EnvAnthropicAPIKey)}
	switch backend {
	case BackendGoogle:
		c.TaskAPIKey = os.Getenv(EnvGoogleTasksToken)
	default:
		c.TaskAPIKey = os.Getenv(EnvTodoistAPIKey)
	}
	return c
}

// LoadDotEnv loads KEY=VALUE pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}
