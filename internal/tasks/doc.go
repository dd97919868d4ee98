// Package tasks adapts a remote task-management service to the two operations
// the assistant needs: creating a task and listing task titles.
//
// A Backend speaks to one concrete service (Todoist or Google Tasks) and knows
// how to fetch a single page of a listing. Client sits on top of a Backend and
// turns paged listings into a lazy sequence of titles:
//
//	client := tasks.NewClient(tasks.NewTodoistBackend(ctx, apiKey))
//	for title, err := range client.Titles(ctx) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(title)
//	}
//
// Nothing in this package retries. Remote failures are wrapped and returned
// to the caller as-is.
package tasks
