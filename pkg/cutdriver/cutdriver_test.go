package cutdriver_test

import (
	"testing"

	"github.com/dalmcut/dalmcut/pkg/abstraction"
	"github.com/dalmcut/dalmcut/pkg/cutdriver"
	"github.com/dalmcut/dalmcut/pkg/landmark"
)

// chain builds a three-state, two-transition abstraction 0 -[label 0, cost
// 1]-> 1 -[label 1, cost 1]-> 2, goal = {2}, each label representing a
// single distinct original operator. Scenario S2: a strict sequential
// dependency, so the backward sweep must find two singleton landmarks.
func chain(t *testing.T) *abstraction.Abstraction {
	t.Helper()
	ts, err := abstraction.NewTransitionSystem(3, 2, []abstraction.Transition{
		{Src: 0, Label: 0, Dst: 1, ZeroCost: false},
		{Src: 1, Label: 1, Dst: 2, ZeroCost: false},
	}, []int{2})
	if err != nil {
		t.Fatal(err)
	}
	alpha := &abstraction.Function{InverseLabelMap: [][]int{{0}, {1}}}
	return &abstraction.Abstraction{Alpha: alpha, TS: ts}
}

func TestComputeBackwardLandmarksSequentialChain(t *testing.T) {
	a := chain(t)
	g := landmark.NewGraph()
	if err := cutdriver.ComputeBackwardLandmarks(a, 0, g); err != nil {
		t.Fatal(err)
	}
	if g.NumLandmarks() != 2 {
		t.Fatalf("NumLandmarks = %d, want 2", g.NumLandmarks())
	}
	seen := map[int]bool{}
	for id := 0; id < g.NumLandmarks(); id++ {
		actions := g.Actions(id)
		if len(actions) != 1 {
			t.Fatalf("landmark %d actions = %v, want singleton", id, actions)
		}
		for op := range actions {
			seen[op] = true
		}
	}
	if !seen[0] || !seen[1] {
		t.Fatalf("expected both operators to appear as singleton landmarks, got %v", seen)
	}
}

func TestComputeForwardLandmarksSequentialChain(t *testing.T) {
	a := chain(t)
	g := landmark.NewGraph()
	if err := cutdriver.ComputeForwardLandmarks(a, 0, g); err != nil {
		t.Fatal(err)
	}
	if g.NumLandmarks() != 2 {
		t.Fatalf("NumLandmarks = %d, want 2", g.NumLandmarks())
	}
}

// TestZeroCostClosureMergesIntoOneLandmark exercises scenario S6: a
// zero-cost operator sits between the query state and the one paid
// operator, so the backward sweep must close over it and yield a single
// landmark containing only the paid operator's id.
func TestZeroCostClosureMergesIntoOneLandmark(t *testing.T) {
	ts, err := abstraction.NewTransitionSystem(3, 2, []abstraction.Transition{
		{Src: 0, Label: 0, Dst: 1, ZeroCost: true},
		{Src: 1, Label: 1, Dst: 2, ZeroCost: false},
	}, []int{2})
	if err != nil {
		t.Fatal(err)
	}
	alpha := &abstraction.Function{InverseLabelMap: [][]int{{0}, {1}}}
	a := &abstraction.Abstraction{Alpha: alpha, TS: ts}

	g := landmark.NewGraph()
	if err := cutdriver.ComputeBackwardLandmarks(a, 0, g); err != nil {
		t.Fatal(err)
	}
	if g.NumLandmarks() != 1 {
		t.Fatalf("NumLandmarks = %d, want 1 (zero-cost closure should merge state 0 and 1)", g.NumLandmarks())
	}
	actions := g.Actions(0)
	if len(actions) != 1 {
		t.Fatalf("actions = %v, want singleton {1}", actions)
	}
	if _, ok := actions[1]; !ok {
		t.Fatalf("actions = %v, want {1}; the zero-cost operator must never appear", actions)
	}
}

func TestComputeBackwardLandmarksNoOpWhenQueryStateIsGoal(t *testing.T) {
	a := chain(t)
	g := landmark.NewGraph()
	if err := cutdriver.ComputeBackwardLandmarks(a, 2, g); err != nil {
		t.Fatal(err)
	}
	if g.NumLandmarks() != 0 {
		t.Fatalf("NumLandmarks = %d, want 0 when the query state is already a goal state", g.NumLandmarks())
	}
}
