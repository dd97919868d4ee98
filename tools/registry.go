package tools

// Registry returns all tool definitions wired for the agent
func Registry(svc TaskService) []ToolDefinition {
	return []ToolDefinition{CreateTaskDefinition(svc), ListTasksDefinition(svc)}
}
