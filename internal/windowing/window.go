// Package windowing selects the part of the conversation history that is sent
// with each model request.
package windowing

import "github.com/petasbytes/taskchat/memory"

// Stats summarizes a windowing decision.
//
// Fields:
// - Total: estimated cost of the included turns.
// - Budget: the budget used (<= 0 means unlimited).
// - IncludedExchanges / SkippedExchanges: whole user+assistant exchanges kept or dropped.
// - OverBudgetNewest: the newest exchange alone exceeds Budget.
type Stats struct {
	Total             int
	Budget            int
	IncludedExchanges int
	SkippedExchanges  int
	OverBudgetNewest  bool
}

// Window returns the newest suffix of turns (oldest→newest) whose estimated
// cost fits budget, without splitting a user turn from the assistant answer
// that follows it.
//
// Rules:
// - budget <= 0 keeps every turn.
// - Exchanges are added scanning newest→oldest; the first one that does not fit stops the scan.
// - If the newest exchange alone exceeds budget, the window is empty and OverBudgetNewest is set.
func Window(turns []memory.Turn, budget int, c TokenCounter) ([]memory.Turn, Stats) {
	exchanges := groupExchanges(turns)
	if budget <= 0 {
		total := 0
		for _, t := range turns {
			total += c.CountTurn(t)
		}
		return turns, Stats{Total: total, Budget: budget, IncludedExchanges: len(exchanges)}
	}
	if len(exchanges) == 0 {
		return nil, Stats{Budget: budget}
	}

	total, included := 0, 0
	start := len(turns)
	for i := len(exchanges) - 1; i >= 0; i-- {
		ex := exchanges[i]
		cost := 0
		for _, t := range turns[ex.start:ex.end] {
			cost += c.CountTurn(t)
		}
		if total+cost > budget {
			break
		}
		total += cost
		included++
		start = ex.start
	}

	stats := Stats{
		Total:             total,
		Budget:            budget,
		IncludedExchanges: included,
		SkippedExchanges:  len(exchanges) - included,
		OverBudgetNewest:  included == 0,
	}
	if included == 0 {
		return nil, stats
	}
	return turns[start:], stats
}

// exchange is the span [start, end) of one user turn and its answer.
type exchange struct {
	start, end int
}

// groupExchanges pairs each user turn with the assistant turn that follows
// it. A turn without a partner forms its own exchange.
func groupExchanges(turns []memory.Turn) []exchange {
	out := make([]exchange, 0, (len(turns)+1)/2)
	for i := 0; i < len(turns); {
		if turns[i].Role == memory.RoleUser && i+1 < len(turns) && turns[i+1].Role == memory.RoleAssistant {
			out = append(out, exchange{i, i + 2})
			i += 2
			continue
		}
		out = append(out, exchange{i, i + 1})
		i++
	}
	return out
}
