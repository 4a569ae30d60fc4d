// Package abstraction implements the abstraction data model shared by every
// abstraction family: the transition system (C1) and the abstraction
// function (C2).
//
// Grounded on original_source/src/search/abstraction_cut/transition_system.h
// (struct layout, sort keys, prune_transition_system) and on projections.cc
// (AbstractionFunction, both constructors).
package abstraction

import (
	"sort"

	dalmerrors "github.com/dalmcut/dalmcut/pkg/errors"
)

// Transition is one labelled edge of a transition system.
type Transition struct {
	ID        int
	Src       int
	Label     int
	Dst       int
	ZeroCost  bool
}

// TransitionSystem is an immutable CSR-style graph: one canonical transition
// array plus two sorted adjacency views (forward by src, backward by dst),
// each with zero-cost edges sorted first within their bucket so plateau
// walks (cutdriver) can stop scanning at the first non-zero-cost edge.
//
// Rebuilt as slices with offset arrays rather than the teacher's map-based
// dag.DAG adjacency, because the hot paths here (zero-cost closure walks
// inside the cut driver and the lm-cut loop) run many times per query and
// cannot afford map iteration.
type TransitionSystem struct {
	NumStates int
	NumLabels int

	transitions []Transition // canonical, in construction order with assigned ids

	GoalStates []int

	forward        []Transition
	forwardOffsets []int // length NumStates+1

	backward        []Transition
	backwardOffsets []int // length NumStates+1
}

// Transitions returns the canonical transition array (construction order).
func (ts *TransitionSystem) Transitions() []Transition { return ts.transitions }

// NewTransitionSystem builds a transition system from a flat transition
// list, assigning sequential ids and building both CSR views.
func NewTransitionSystem(numStates, numLabels int, transitions []Transition, goalStates []int) (*TransitionSystem, error) {
	if len(goalStates) == 0 {
		return nil, dalmerrors.New(dalmerrors.ErrCodeUnsolvableTask, "transition system has no goal states")
	}

	canonical := make([]Transition, len(transitions))
	for i, t := range transitions {
		t.ID = i
		canonical[i] = t
	}

	forward := append([]Transition(nil), canonical...)
	sort.SliceStable(forward, func(i, j int) bool {
		a, b := forward[i], forward[j]
		if a.Src != b.Src {
			return a.Src < b.Src
		}
		if a.ZeroCost != b.ZeroCost {
			return a.ZeroCost // zero-cost first
		}
		return a.Dst < b.Dst
	})
	forwardOffsets := buildOffsets(forward, numStates, func(t Transition) int { return t.Src })

	backward := append([]Transition(nil), canonical...)
	sort.SliceStable(backward, func(i, j int) bool {
		a, b := backward[i], backward[j]
		if a.Dst != b.Dst {
			return a.Dst < b.Dst
		}
		if a.ZeroCost != b.ZeroCost {
			return a.ZeroCost // zero-cost first
		}
		return a.Src < b.Src
	})
	backwardOffsets := buildOffsets(backward, numStates, func(t Transition) int { return t.Dst })

	return &TransitionSystem{
		NumStates:       numStates,
		NumLabels:       numLabels,
		transitions:     canonical,
		GoalStates:      append([]int(nil), goalStates...),
		forward:         forward,
		forwardOffsets:  forwardOffsets,
		backward:        backward,
		backwardOffsets: backwardOffsets,
	}, nil
}

func buildOffsets(sorted []Transition, numStates int, key func(Transition) int) []int {
	offsets := make([]int, numStates+1)
	i := 0
	for s := 0; s < numStates; s++ {
		offsets[s] = i
		for i < len(sorted) && key(sorted[i]) == s {
			i++
		}
	}
	offsets[numStates] = len(sorted)
	return offsets
}

// Outgoing returns the forward-sorted transitions leaving s (zero-cost
// first).
func (ts *TransitionSystem) Outgoing(s int) []Transition {
	return ts.forward[ts.forwardOffsets[s]:ts.forwardOffsets[s+1]]
}

// Incoming returns the backward-sorted transitions entering s (zero-cost
// first).
func (ts *TransitionSystem) Incoming(s int) []Transition {
	return ts.backward[ts.backwardOffsets[s]:ts.backwardOffsets[s+1]]
}

// IsGoal reports whether s is a goal state.
func (ts *TransitionSystem) IsGoal(s int) bool {
	for _, g := range ts.GoalStates {
		if g == s {
			return true
		}
	}
	return false
}

// Prune drops transitions whose endpoints or label map to -1 under
// newStateIDs/newLabelIDs, renumbers the survivors, and requires at least
// one surviving goal state.
func (ts *TransitionSystem) Prune(newStateIDs, newLabelIDs []int) (*TransitionSystem, error) {
	numStates := 0
	for _, id := range newStateIDs {
		if id+1 > numStates {
			numStates = id + 1
		}
	}
	numLabels := 0
	for _, id := range newLabelIDs {
		if id+1 > numLabels {
			numLabels = id + 1
		}
	}

	var survivors []Transition
	for _, t := range ts.transitions {
		src, dst, label := newStateIDs[t.Src], newStateIDs[t.Dst], newLabelIDs[t.Label]
		if src == -1 || dst == -1 || label == -1 {
			continue
		}
		survivors = append(survivors, Transition{Src: src, Label: label, Dst: dst, ZeroCost: t.ZeroCost})
	}

	var goalStates []int
	for _, g := range ts.GoalStates {
		if ng := newStateIDs[g]; ng != -1 {
			goalStates = append(goalStates, ng)
		}
	}

	return NewTransitionSystem(numStates, numLabels, survivors, goalStates)
}
