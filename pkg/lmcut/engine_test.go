package lmcut_test

import (
	"testing"

	dalmerrors "github.com/dalmcut/dalmcut/pkg/errors"
	"github.com/dalmcut/dalmcut/pkg/lmcut"
	"github.com/dalmcut/dalmcut/pkg/task"
)

func mustEngine(t *testing.T, tk task.AbstractTask) *lmcut.Engine {
	t.Helper()
	e, err := lmcut.NewEngine(tk)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

// TestSingleOperatorLandmark exercises the simplest disjunctive landmark: one
// operator directly achieves the goal, so the only cut is {that operator}
// with delta equal to its cost.
func TestSingleOperatorLandmark(t *testing.T) {
	tk := &task.Task{
		Variables: []task.Variable{{Name: "v", DomainSize: 2}},
		Operators: []task.Operator{
			{Name: "o", Eff: []task.FactPair{{Var: 0, Value: 1}}, Cost: 5},
		},
		Init: task.State{0},
		Goal: []task.FactPair{{Var: 0, Value: 1}},
	}
	e := mustEngine(t, tk)

	iterations, err := e.Iterate(tk.InitialState(), false)
	if err != nil {
		t.Fatal(err)
	}
	if len(iterations) != 1 {
		t.Fatalf("len(iterations) = %d, want 1", len(iterations))
	}
	if iterations[0].Delta != 5 {
		t.Fatalf("Delta = %d, want 5", iterations[0].Delta)
	}
	if len(iterations[0].Operators) != 1 || iterations[0].Operators[0] != 0 {
		t.Fatalf("Operators = %v, want [0]", iterations[0].Operators)
	}
}

// TestSequentialChainTwoLandmarks exercises a strict two-operator
// dependency: the second operator needs the first's effect, so lm-cut must
// discover two disjunctive landmarks (one per operator), each a singleton.
func TestSequentialChainTwoLandmarks(t *testing.T) {
	tk := &task.Task{
		Variables: []task.Variable{{Name: "a", DomainSize: 2}, {Name: "b", DomainSize: 2}},
		Operators: []task.Operator{
			{Name: "o_a", Eff: []task.FactPair{{Var: 0, Value: 1}}, Cost: 1},
			{Name: "o_b", Pre: []task.FactPair{{Var: 0, Value: 1}}, Eff: []task.FactPair{{Var: 1, Value: 1}}, Cost: 1},
		},
		Init: task.State{0, 0},
		Goal: []task.FactPair{{Var: 1, Value: 1}},
	}
	e := mustEngine(t, tk)

	iterations, err := e.Iterate(tk.InitialState(), false)
	if err != nil {
		t.Fatal(err)
	}
	if len(iterations) != 2 {
		t.Fatalf("len(iterations) = %d, want 2", len(iterations))
	}
	total := 0
	for _, it := range iterations {
		total += it.Delta
		if len(it.Operators) != 1 {
			t.Fatalf("iteration operators = %v, want exactly one", it.Operators)
		}
	}
	if total != 2 {
		t.Fatalf("total delta = %d, want 2 (h_max of the initial state)", total)
	}
}

// TestZeroCostOperatorNeverCut exercises scenario S4: a zero-cost operator
// sits on the path to the goal, but the goal plateau closure absorbs it, so
// it must never appear in a cut (the engine's own invariant would panic
// otherwise).
func TestZeroCostOperatorNeverCut(t *testing.T) {
	tk := &task.Task{
		Variables: []task.Variable{{Name: "a", DomainSize: 2}, {Name: "b", DomainSize: 2}},
		Operators: []task.Operator{
			{Name: "free", Eff: []task.FactPair{{Var: 0, Value: 1}}, Cost: 0},
			{Name: "paid", Pre: []task.FactPair{{Var: 0, Value: 1}}, Eff: []task.FactPair{{Var: 1, Value: 1}}, Cost: 3},
		},
		Init: task.State{0, 0},
		Goal: []task.FactPair{{Var: 1, Value: 1}},
	}
	e := mustEngine(t, tk)

	iterations, err := e.Iterate(tk.InitialState(), false)
	if err != nil {
		t.Fatal(err)
	}
	for _, it := range iterations {
		for _, opID := range it.Operators {
			if opID == 0 {
				t.Fatalf("zero-cost operator 0 appeared in a cut")
			}
		}
	}
	if len(iterations) != 1 || iterations[0].Delta != 3 {
		t.Fatalf("iterations = %+v, want single iteration with delta 3", iterations)
	}
}

// TestDeadEndRelaxedUnreachable exercises the DeadEnd error path: no
// operator can ever produce the goal fact, even under delete relaxation.
func TestDeadEndRelaxedUnreachable(t *testing.T) {
	tk := &task.Task{
		Variables: []task.Variable{{Name: "a", DomainSize: 2}},
		Operators: []task.Operator{
			{Name: "noop", Pre: []task.FactPair{{Var: 0, Value: 0}}, Eff: []task.FactPair{{Var: 0, Value: 0}}, Cost: 1},
		},
		Init: task.State{0},
		Goal: []task.FactPair{{Var: 0, Value: 1}},
	}
	e := mustEngine(t, tk)

	_, err := e.Iterate(tk.InitialState(), false)
	if !dalmerrors.Is(err, dalmerrors.ErrCodeDeadEnd) {
		t.Fatalf("err = %v, want ErrCodeDeadEnd", err)
	}
}

// TestJustificationGraphHasGoalState exercises C6: requesting a
// justification graph on the single-operator scenario yields one iteration
// whose transition system has exactly one goal state.
func TestJustificationGraphHasGoalState(t *testing.T) {
	tk := &task.Task{
		Variables: []task.Variable{{Name: "v", DomainSize: 2}},
		Operators: []task.Operator{
			{Name: "o", Eff: []task.FactPair{{Var: 0, Value: 1}}, Cost: 5},
		},
		Init: task.State{0},
		Goal: []task.FactPair{{Var: 0, Value: 1}},
	}
	e := mustEngine(t, tk)

	iterations, err := e.Iterate(tk.InitialState(), true)
	if err != nil {
		t.Fatal(err)
	}
	if len(iterations) != 1 || iterations[0].Justification == nil {
		t.Fatal("expected one iteration with a justification graph")
	}
	ts := iterations[0].Justification.TS
	if len(ts.GoalStates) != 1 {
		t.Fatalf("GoalStates = %v, want exactly one", ts.GoalStates)
	}
}
