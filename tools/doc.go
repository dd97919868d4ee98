// Package tools defines tool contracts and implementations.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema, handler.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - Task tools: create_task, list_tasks, bound to a TaskService.
//   - Arguments are validated before the service is called; bad arguments are
//     returned as errors and end the turn.
package tools
