package tools_test

import (
	"testing"

	"github.com/petasbytes/taskchat/tools"
)

func TestRegistry_ToolCount(t *testing.T) {
	defs := tools.Registry(&fakeTasks{})
	wantCount := 2 // create_task, list_tasks
	if len(defs) != wantCount {
		t.Fatalf("unexpected number of tools: got %d want %d", len(defs), wantCount)
	}
}

func TestRegistry_ToolNames(t *testing.T) {
	defs := tools.Registry(&fakeTasks{})
	want := map[string]struct{}{
		"create_task": {},
		"list_tasks":  {},
	}

	// Unexpected names detected
	for _, d := range defs {
		if _, ok := want[d.Name]; !ok {
			t.Fatalf("unexpected tool in registry: %q", d.Name)
		}
	}

	// Missing expected names
	got := map[string]struct{}{}
	for _, d := range defs {
		got[d.Name] = struct{}{}
	}
	for name := range want {
		if _, ok := got[name]; !ok {
			t.Errorf("missing expected tool: %q", name)
		}
	}

	if t.Failed() {
		t.FailNow()
	}
}

func TestRegistry_DescriptionsAndHandlersPresent(t *testing.T) {
	for _, d := range tools.Registry(&fakeTasks{}) {
		if d.Description == "" {
			t.Errorf("%s: empty description", d.Name)
		}
		if d.Function == nil {
			t.Errorf("%s: nil handler", d.Name)
		}
	}
}
