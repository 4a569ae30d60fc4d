package projection_test

import (
	"testing"

	"github.com/dalmcut/dalmcut/pkg/projection"
	"github.com/dalmcut/dalmcut/pkg/task"
)

// TestBuildTrivialOneOpTask exercises scenario S1: one variable, one
// operator, pattern = {v}. Expect 2 states, 1 label, 1 transition.
func TestBuildTrivialOneOpTask(t *testing.T) {
	tk := &task.Task{
		Variables: []task.Variable{{Name: "v", DomainSize: 2}},
		Operators: []task.Operator{
			{Name: "o", Eff: []task.FactPair{{Var: 0, Value: 1}}, Cost: 3},
		},
		Init: task.State{0},
		Goal: []task.FactPair{{Var: 0, Value: 1}},
	}

	a, err := projection.Build(tk, []int{0})
	if err != nil {
		t.Fatal(err)
	}
	if a.TS.NumStates != 2 {
		t.Fatalf("NumStates = %d, want 2", a.TS.NumStates)
	}
	if a.TS.NumLabels != 1 {
		t.Fatalf("NumLabels = %d, want 1", a.TS.NumLabels)
	}
	if len(a.TS.Transitions()) != 1 {
		t.Fatalf("len(Transitions()) = %d, want 1", len(a.TS.Transitions()))
	}
}

// TestBuildSequentialChain exercises scenario S3's abstraction shape: two
// variables, two operators forming a strict dependency.
func TestBuildSequentialChain(t *testing.T) {
	tk := &task.Task{
		Variables: []task.Variable{{Name: "a", DomainSize: 2}, {Name: "b", DomainSize: 2}},
		Operators: []task.Operator{
			{Name: "o_a", Eff: []task.FactPair{{Var: 0, Value: 1}}, Cost: 1},
			{Name: "o_b", Pre: []task.FactPair{{Var: 0, Value: 1}}, Eff: []task.FactPair{{Var: 1, Value: 1}}, Cost: 1},
		},
		Init: task.State{0, 0},
		Goal: []task.FactPair{{Var: 1, Value: 1}},
	}

	a, err := projection.Build(tk, []int{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(a.TS.GoalStates) == 0 {
		t.Fatal("expected at least one goal state")
	}
	initID := a.Alpha.Apply(tk.InitialState())
	if initID == -1 {
		t.Fatal("initial state must not be pruned")
	}
}

// TestBuildDomainTooLarge exercises the overflow guard on hash multipliers.
func TestBuildDomainTooLarge(t *testing.T) {
	vars := make([]task.Variable, 40)
	pattern := make([]int, 40)
	for i := range vars {
		vars[i] = task.Variable{Name: "v", DomainSize: 1 << 20}
		pattern[i] = i
	}
	tk := &task.Task{
		Variables: vars,
		Operators: []task.Operator{{Eff: []task.FactPair{{Var: 0, Value: 0}}, Cost: 1}},
		Init:      make(task.State, 40),
		Goal:      []task.FactPair{{Var: 0, Value: 0}},
	}

	_, err := projection.Build(tk, pattern)
	if err == nil {
		t.Fatal("expected a DomainTooLarge error")
	}
}

// TestBuildDeadInitialState exercises the S5 dead-end shape: a pattern that
// excludes the variable making the goal reachable prunes the initial
// abstract state to dead.
func TestBuildDeadInitialState(t *testing.T) {
	tk := &task.Task{
		Variables: []task.Variable{{Name: "a", DomainSize: 2}, {Name: "b", DomainSize: 2}},
		Operators: []task.Operator{
			{Eff: []task.FactPair{{Var: 0, Value: 1}}, Cost: 1},
		},
		Init: task.State{0, 0},
		Goal: []task.FactPair{{Var: 1, Value: 1}},
	}

	// Pattern {b}: no operator affects b, so the sole goal state (b=1) is
	// unreachable from the sole live state (b=0).
	_, err := projection.Build(tk, []int{1})
	if err == nil {
		t.Fatal("expected an UnsolvableTask error for an unreachable goal")
	}
}
