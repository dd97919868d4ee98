package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

// TaskService is the task client the task tools are bound to.
type TaskService interface {
	CreateTask(ctx context.Context, title, description string) error
	ListTasks(ctx context.Context) ([]string, error)
}

type CreateTaskInput struct {
	Title       string `json:"title" validate:"required" jsonschema_description:"Short title of the to-do item, e.g. 'buy milk'."`
	Description string `json:"description,omitempty" jsonschema_description:"Optional extra details or notes for the to-do item."`
}

// ListTasksInput takes no arguments.
type ListTasksInput struct{}

const (
	CreateTaskName = "create_task"
	ListTasksName  = "list_tasks"
)

// CreateTaskDefinition binds create_task to svc.
func CreateTaskDefinition(svc TaskService) ToolDefinition {
	return ToolDefinition{
		Name: CreateTaskName,
		Description: `Add a new task to the user's to-do list.
Use this when the user wants to add, create or remember a to-do.`,
		InputSchema: GenerateSchema[CreateTaskInput](),
		Function: func(ctx context.Context, input json.RawMessage) (string, error) {
			in, err := decodeInput[CreateTaskInput](CreateTaskName, input)
			if err != nil {
				return "", err
			}
			if err := svc.CreateTask(ctx, in.Title, in.Description); err != nil {
				return "", err
			}
			return fmt.Sprintf("Task %q was added to the to-do list.", in.Title), nil
		},
	}
}

// ListTasksDefinition binds list_tasks to svc. The result is a JSON array of
// task titles in service order.
func ListTasksDefinition(svc TaskService) ToolDefinition {
	return ToolDefinition{
		Name: ListTasksName,
		Description: `Return the titles of every task on the user's to-do list.
Use this when the user asks to see, show or review their to-do list.`,
		InputSchema: GenerateSchema[ListTasksInput](),
		Function: func(ctx context.Context, input json.RawMessage) (string, error) {
			if _, err := decodeInput[ListTasksInput](ListTasksName, input); err != nil {
				return "", err
			}
			titles, err := svc.ListTasks(ctx)
			if err != nil {
				return "", err
			}
			b, err := json.Marshal(titles)
			if err != nil {
				return "", err
			}
			return string(b), nil
		},
	}
}
