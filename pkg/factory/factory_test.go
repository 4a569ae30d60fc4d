package factory_test

import (
	"testing"

	"github.com/dalmcut/dalmcut/pkg/config"
	"github.com/dalmcut/dalmcut/pkg/factory"
	"github.com/dalmcut/dalmcut/pkg/task"
)

func chainTask() *task.Task {
	return &task.Task{
		Variables: []task.Variable{{Name: "a", DomainSize: 2}, {Name: "b", DomainSize: 2}},
		Operators: []task.Operator{
			{Name: "o_a", Eff: []task.FactPair{{Var: 0, Value: 1}}, Cost: 1},
			{Name: "o_b", Pre: []task.FactPair{{Var: 0, Value: 1}}, Eff: []task.FactPair{{Var: 1, Value: 1}}, Cost: 1},
		},
		Init: task.State{0, 0},
		Goal: []task.FactPair{{Var: 1, Value: 1}},
	}
}

// TestJustificationGraphFactoryProducesLandmarksPerIteration: lm-cut runs
// twice on the chain task, and each iteration's justification graph yields
// the backward landmarks {o_b} and {o_a}, so the graph holds 4 nodes.
func TestJustificationGraphFactoryProducesLandmarksPerIteration(t *testing.T) {
	cfg := config.Config{
		Landmarks: config.LandmarksConfig{BackwardLMs: true, JustificationGraph: true},
	}
	f, err := factory.NewAbstractionCutFactory(cfg, chainTask())
	if err != nil {
		t.Fatal(err)
	}
	g, err := f.ComputeLandmarkGraph(task.State{0, 0})
	if err != nil {
		t.Fatal(err)
	}
	if g.IsDeadEnd() {
		t.Fatal("graph unexpectedly marked dead end")
	}
	if g.NumLandmarks() != 4 {
		t.Fatalf("NumLandmarks = %d, want 4", g.NumLandmarks())
	}
}

func TestPatternFactoryProducesLandmarks(t *testing.T) {
	cfg := config.Config{
		Patterns:  config.PatternsConfig{MaxSize: 2},
		Landmarks: config.LandmarksConfig{BackwardLMs: true},
	}
	f, err := factory.NewAbstractionCutFactory(cfg, chainTask())
	if err != nil {
		t.Fatal(err)
	}
	g, err := f.ComputeLandmarkGraph(task.State{0, 0})
	if err != nil {
		t.Fatal(err)
	}
	if g.IsDeadEnd() {
		t.Fatal("graph unexpectedly marked dead end")
	}
	if g.NumLandmarks() == 0 {
		t.Fatal("expected at least one landmark from a pattern-based abstraction")
	}
}

// TestJustificationGraphFactoryDeadEndAtConstruction exercises the
// dead-end-at-the-initial-state path: NewAbstractionCutFactory must not
// fail, and every subsequent query must return an empty graph, since there
// are no abstractions to add landmarks from (mirrors the original's empty
// transition_systems vector); the factory marks that graph as a dead end.
func TestJustificationGraphFactoryDeadEndAtConstruction(t *testing.T) {
	tk := &task.Task{
		Variables: []task.Variable{{Name: "a", DomainSize: 2}},
		Operators: []task.Operator{
			{Name: "noop", Pre: []task.FactPair{{Var: 0, Value: 0}}, Eff: []task.FactPair{{Var: 0, Value: 0}}, Cost: 1},
		},
		Init: task.State{0},
		Goal: []task.FactPair{{Var: 0, Value: 1}},
	}
	cfg := config.Config{
		Landmarks: config.LandmarksConfig{BackwardLMs: true, JustificationGraph: true},
	}
	f, err := factory.NewAbstractionCutFactory(cfg, tk)
	if err != nil {
		t.Fatal(err)
	}
	g, err := f.ComputeLandmarkGraph(task.State{0})
	if err != nil {
		t.Fatal(err)
	}
	if g.NumLandmarks() != 0 {
		t.Fatalf("NumLandmarks = %d, want 0", g.NumLandmarks())
	}
}
