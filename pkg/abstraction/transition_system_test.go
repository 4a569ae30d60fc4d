package abstraction_test

import (
	"testing"

	"github.com/dalmcut/dalmcut/pkg/abstraction"
)

func TestTransitionSystemCSRConsistency(t *testing.T) {
	// 0 --(label0,cost)--> 1, 0 --(label1,zero)--> 2, 2 --(label2,zero)--> 1
	ts, err := abstraction.NewTransitionSystem(3, 3, []abstraction.Transition{
		{Src: 0, Label: 0, Dst: 1, ZeroCost: false},
		{Src: 0, Label: 1, Dst: 2, ZeroCost: true},
		{Src: 2, Label: 2, Dst: 1, ZeroCost: true},
	}, []int{1})
	if err != nil {
		t.Fatal(err)
	}

	for s := 0; s < ts.NumStates; s++ {
		seenNonZero := false
		for _, tr := range ts.Incoming(s) {
			if tr.Dst != s {
				t.Fatalf("incoming(%d) contains transition with dst=%d", s, tr.Dst)
			}
			if tr.ZeroCost && seenNonZero {
				t.Fatalf("incoming(%d): zero-cost transition found after a non-zero-cost one", s)
			}
			if !tr.ZeroCost {
				seenNonZero = true
			}
		}
		seenNonZero = false
		for _, tr := range ts.Outgoing(s) {
			if tr.Src != s {
				t.Fatalf("outgoing(%d) contains transition with src=%d", s, tr.Src)
			}
			if tr.ZeroCost && seenNonZero {
				t.Fatalf("outgoing(%d): zero-cost transition found after a non-zero-cost one", s)
			}
			if !tr.ZeroCost {
				seenNonZero = true
			}
		}
	}
}

func TestTransitionSystemRequiresGoalStates(t *testing.T) {
	_, err := abstraction.NewTransitionSystem(1, 1, nil, nil)
	if err == nil {
		t.Fatal("expected an error when no goal states are supplied")
	}
}

func TestPrune(t *testing.T) {
	ts, err := abstraction.NewTransitionSystem(3, 2, []abstraction.Transition{
		{Src: 0, Label: 0, Dst: 1, ZeroCost: false},
		{Src: 1, Label: 1, Dst: 2, ZeroCost: false},
	}, []int{2})
	if err != nil {
		t.Fatal(err)
	}

	// Drop state 0 (the dead one), keep 1->0, 2->1.
	pruned, err := ts.Prune([]int{-1, 0, 1}, []int{-1, 0})
	if err != nil {
		t.Fatal(err)
	}
	if pruned.NumStates != 2 {
		t.Fatalf("NumStates = %d, want 2", pruned.NumStates)
	}
	if len(pruned.Transitions()) != 1 {
		t.Fatalf("len(Transitions()) = %d, want 1", len(pruned.Transitions()))
	}
}

func TestFunctionApplyIdentity(t *testing.T) {
	f := abstraction.NewProjectionFunction([]int{0, 1}, []int{2, 3}, nil)
	// pattern var 0 has multiplier 1, var 1 has multiplier 2.
	if got := f.Apply([]int{1, 2}); got != 1+2*2 {
		t.Fatalf("Apply = %d, want %d", got, 1+2*2)
	}
}

func TestCoarsenedFunctionComposesStateMapping(t *testing.T) {
	f := abstraction.NewProjectionFunction([]int{0}, []int{3}, [][]int{{10}, {11}})
	// rank space is 3 (domain size of variable 0); prune rank 1 away.
	coarse := abstraction.NewCoarsenedFunction(f, []int{0, -1, 1}, []int{0, 1})
	if got := coarse.Apply([]int{0}); got != 0 {
		t.Fatalf("Apply(rank 0) = %d, want 0", got)
	}
	if got := coarse.Apply([]int{2}); got != 1 {
		t.Fatalf("Apply(rank 2) = %d, want 1", got)
	}
	if got := coarse.Apply([]int{1}); got != -1 {
		t.Fatalf("Apply(rank 1) = %d, want -1 (pruned)", got)
	}
}
