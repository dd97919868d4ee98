package runner

import (
	"fmt"
	"time"
)

// DateLayout renders dates like "Monday, January 02, 2006".
const DateLayout = "Monday, January 02, 2006"

// SystemPrompt returns the assistant persona for a turn handled at now.
func SystemPrompt(now time.Time) string {
	return fmt.Sprintf(`You are a helpful assistant that manages the user's to-do list.
Today's date is: %s

Help the user add new to-dos and review the ones they already have.
When you show the user's tasks, render them as a bulleted list, one task per line.`, now.Format(DateLayout))
}
