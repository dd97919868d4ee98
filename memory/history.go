package memory

import (
	"slices"

	"github.com/anthropics/anthropic-sdk-go"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one user utterance or one assistant answer.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text,omitempty"`
}

// History is the ordered conversation transcript. Turns are appended as
// completed user/assistant exchanges, so they always alternate starting with
// the user. The zero value is ready to use.
type History struct {
	turns []Turn
}

// Append records one completed exchange.
func (h *History) Append(user, assistant string) {
	h.turns = append(h.turns,
		Turn{Role: RoleUser, Text: user},
		Turn{Role: RoleAssistant, Text: assistant},
	)
}

// Turns returns a copy of the transcript, oldest first. Safe on a nil History.
func (h *History) Turns() []Turn {
	if h == nil {
		return nil
	}
	return slices.Clone(h.turns)
}

// Len returns the number of turns. Safe on a nil History.
func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.turns)
}

// ToMessageParams converts turns to SDK messages. Turns with empty text are
// skipped because the API rejects empty text blocks.
func ToMessageParams(turns []Turn) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(turns))
	for _, t := range turns {
		if t.Text == "" {
			continue
		}
		if t.Role == RoleUser {
			out = append(out, anthropic.NewUserMessage(anthropic.NewTextBlock(t.Text)))
		} else {
			out = append(out, anthropic.NewAssistantMessage(anthropic.NewTextBlock(t.Text)))
		}
	}
	return out
}
