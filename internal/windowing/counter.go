package windowing

import (
	"unicode/utf8"

	"github.com/petasbytes/taskchat/memory"
)

// TokenCounter estimates input-token cost for a history turn.
type TokenCounter interface {
	CountTurn(t memory.Turn) int
}

// HeuristicCounter is the default deterministic estimator: rune count of the
// turn text plus a fixed per-turn overhead.
type HeuristicCounter struct{}

// Fixed per-turn overhead; changing it requires updating the counter tests.
const turnOverhead = 4

func (HeuristicCounter) CountTurn(t memory.Turn) int {
	return utf8.RuneCountInString(t.Text) + turnOverhead
}
