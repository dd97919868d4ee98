package repl_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petasbytes/taskchat/internal/repl"
	"github.com/petasbytes/taskchat/memory"
)

// echoAgent answers with the input upper-cased and records what it saw.
type echoAgent struct {
	seenLens []int
	failOn   string
	err      error
}

func (a *echoAgent) Respond(_ context.Context, h *memory.History, input string) (string, error) {
	a.seenLens = append(a.seenLens, h.Len())
	if input == a.failOn {
		return "", a.err
	}
	return strings.ToUpper(input), nil
}

func TestRun_RecordsAlternatingHistory(t *testing.T) {
	agent := &echoAgent{}
	var out bytes.Buffer
	l := &repl.Loop{Agent: agent, In: strings.NewReader("one\ntwo\nthree\n"), Out: &out}

	require.NoError(t, l.Run(context.Background()))

	turns := l.History.Turns()
	require.Len(t, turns, 6)
	for i, in := range []string{"one", "two", "three"} {
		assert.Equal(t, memory.Turn{Role: memory.RoleUser, Text: in}, turns[2*i])
		assert.Equal(t, memory.Turn{Role: memory.RoleAssistant, Text: strings.ToUpper(in)}, turns[2*i+1])
	}
	assert.Equal(t, []int{0, 2, 4}, agent.seenLens, "agent sees history of prior turns only")
	assert.Equal(t, "You: ONE\nYou: TWO\nYou: THREE\nYou: \n", out.String())
}

func TestRun_SkipsBlankLines(t *testing.T) {
	agent := &echoAgent{}
	l := &repl.Loop{Agent: agent, In: strings.NewReader("\n   \nhi\n"), Out: io.Discard}

	require.NoError(t, l.Run(context.Background()))
	assert.Equal(t, 2, l.History.Len())
	assert.Len(t, agent.seenLens, 1)
}

func TestRun_AgentErrorAbortsWithoutRecording(t *testing.T) {
	remote := errors.New("remote down")
	agent := &echoAgent{failOn: "two", err: remote}
	var out bytes.Buffer
	h := &memory.History{}
	l := &repl.Loop{Agent: agent, History: h, In: strings.NewReader("one\ntwo\nthree\n"), Out: &out}

	err := l.Run(context.Background())
	require.ErrorIs(t, err, remote)
	assert.Equal(t, 2, h.Len(), "failed turn must not be recorded")
	assert.Equal(t, []int{0, 2}, agent.seenLens, "no turn after the failure")
	assert.Equal(t, "You: ONE\nYou: ", out.String(), "nothing printed for the failed turn")
}

func TestRun_EmptyInput(t *testing.T) {
	l := &repl.Loop{Agent: &echoAgent{}, In: strings.NewReader(""), Out: io.Discard}
	require.NoError(t, l.Run(context.Background()))
	assert.Equal(t, 0, l.History.Len())
}

func TestRun_CancelledContextEndsCleanly(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := &repl.Loop{Agent: &echoAgent{}, In: pr, Out: io.Discard}
	require.NoError(t, l.Run(ctx))
}

func TestRun_CustomPrompt(t *testing.T) {
	var out bytes.Buffer
	l := &repl.Loop{Agent: &echoAgent{}, In: strings.NewReader("x\n"), Out: &out, Prompt: "> "}
	require.NoError(t, l.Run(context.Background()))
	assert.Equal(t, "> X\n> \n", out.String())
}
