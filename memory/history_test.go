package memory_test

import (
	"fmt"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/petasbytes/taskchat/memory"
)

func TestHistory_ZeroValueEmpty(t *testing.T) {
	var h memory.History
	if h.Len() != 0 || len(h.Turns()) != 0 {
		t.Fatalf("expected empty history, got len=%d", h.Len())
	}
}

func TestHistory_NilSafe(t *testing.T) {
	var h *memory.History
	if h.Len() != 0 || h.Turns() != nil {
		t.Fatalf("nil history should read as empty")
	}
}

func TestHistory_AlternatesInChronologicalOrder(t *testing.T) {
	var h memory.History
	const n = 5
	for i := 0; i < n; i++ {
		h.Append(fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i))
	}

	turns := h.Turns()
	if len(turns) != 2*n {
		t.Fatalf("want %d turns, got %d", 2*n, len(turns))
	}
	for i, turn := range turns {
		wantRole := memory.RoleUser
		wantText := fmt.Sprintf("q%d", i/2)
		if i%2 == 1 {
			wantRole = memory.RoleAssistant
			wantText = fmt.Sprintf("a%d", i/2)
		}
		if turn.Role != wantRole || turn.Text != wantText {
			t.Fatalf("turn %d: got %+v want {%s %s}", i, turn, wantRole, wantText)
		}
	}
}

func TestHistory_TurnsIsACopy(t *testing.T) {
	var h memory.History
	h.Append("hi", "hello")

	turns := h.Turns()
	turns[0].Text = "mutated"
	_ = append(turns, memory.Turn{Role: memory.RoleUser, Text: "extra"})

	if got := h.Turns()[0].Text; got != "hi" {
		t.Fatalf("history mutated through Turns(): %q", got)
	}
	if h.Len() != 2 {
		t.Fatalf("history length changed: %d", h.Len())
	}
}

func TestToMessageParams_RolesAndEmptySkip(t *testing.T) {
	turns := []memory.Turn{
		{Role: memory.RoleUser, Text: "add milk"},
		{Role: memory.RoleAssistant, Text: "done"},
		{Role: memory.RoleUser, Text: "thanks"},
		{Role: memory.RoleAssistant, Text: ""},
	}
	msgs := memory.ToMessageParams(turns)
	if len(msgs) != 3 {
		t.Fatalf("want 3 messages, got %d", len(msgs))
	}
	wantRoles := []anthropic.MessageParamRole{
		anthropic.MessageParamRoleUser,
		anthropic.MessageParamRoleAssistant,
		anthropic.MessageParamRoleUser,
	}
	for i, m := range msgs {
		if m.Role != wantRoles[i] {
			t.Fatalf("message %d: role %s want %s", i, m.Role, wantRoles[i])
		}
		if m.Content[0].OfText == nil || m.Content[0].OfText.Text != turns[i].Text {
			t.Fatalf("message %d: unexpected content %+v", i, m.Content)
		}
	}
}
