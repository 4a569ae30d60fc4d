// Package cutdriver implements the cut-to-landmark driver (C8): backward and
// forward frontier sweeps over an abstraction's transition system that turn
// zero-cost/non-zero-cost cost structure into a sequence of disjunctive
// action landmarks.
//
// Ported in algorithm from original_source/src/search/abstraction_cut/
// abstraction_cut_factory.cc's unexported helpers (get_forward_unreachable_
// states, process_backward_frontier/process_forward_frontier,
// compute_backward_landmarks/compute_forward_landmarks) and
// projections.cc's get_nonzero_cost_predecessors_and_operators/successors_
// and_operators, transition_system.cc's get_zero_cost_predecessors/
// successors.
package cutdriver

import (
	"github.com/dalmcut/dalmcut/pkg/abstraction"
	dalmerrors "github.com/dalmcut/dalmcut/pkg/errors"
	"github.com/dalmcut/dalmcut/pkg/landmark"
)

// ComputeBackwardLandmarks walks backward from the goal frontier toward
// stateID, alternating a zero-cost closure step with a non-zero-cost
// frontier expansion, adding one landmark node per non-zero-cost step
// (with a weak ordering edge from it to the previous one found) until
// stateID enters the closure.
func ComputeBackwardLandmarks(a *abstraction.Abstraction, stateID int, g *landmark.Graph) error {
	ts := a.TS
	zone := getForwardUnreachableStates(ts, stateID)

	var frontier []int
	for _, goalState := range ts.GoalStates {
		if !zone[goalState] {
			frontier = append(frontier, goalState)
		}
	}
	frontier = closeZeroCostBackward(ts, frontier, zone)

	previousLM := -1
	for !zone[stateID] {
		actions := map[int]struct{}{}
		var next []int
		seen := map[int]bool{}
		for _, s := range frontier {
			preds, ops := nonZeroCostPredecessorsAndOperators(a, s, zone)
			for op := range ops {
				actions[op] = struct{}{}
			}
			for p := range preds {
				if !seen[p] {
					seen[p] = true
					next = append(next, p)
				}
			}
		}
		dalmerrors.Invariant(len(actions) > 0, "cutdriver: empty backward landmark while the queried state is still outside the closure")

		next = closeZeroCostBackward(ts, next, zone)

		currentLM, err := g.AddNode(actions, false)
		if err != nil {
			return err
		}
		if previousLM != -1 {
			g.AddEdge(currentLM, previousLM, false)
		}
		previousLM = currentLM
		frontier = next
	}
	return nil
}

// ComputeForwardLandmarks walks forward from stateID toward the goal
// frontier, the dual of ComputeBackwardLandmarks.
func ComputeForwardLandmarks(a *abstraction.Abstraction, stateID int, g *landmark.Graph) error {
	ts := a.TS
	zone := make([]bool, ts.NumStates)
	frontier := closeZeroCostForward(ts, []int{stateID}, zone)

	previousLM := -1
	for !allGoalsInZone(ts, zone) {
		actions := map[int]struct{}{}
		var next []int
		seen := map[int]bool{}
		for _, s := range frontier {
			succs, ops := nonZeroCostSuccessorsAndOperators(a, s, zone)
			for op := range ops {
				actions[op] = struct{}{}
			}
			for succ := range succs {
				if !seen[succ] {
					seen[succ] = true
					next = append(next, succ)
				}
			}
		}
		dalmerrors.Invariant(len(actions) > 0, "cutdriver: empty forward landmark while a goal state is still outside the closure")

		next = closeZeroCostForward(ts, next, zone)

		currentLM, err := g.AddNode(actions, false)
		if err != nil {
			return err
		}
		if previousLM != -1 {
			g.AddEdge(previousLM, currentLM, false)
		}
		previousLM = currentLM
		frontier = next
	}
	return nil
}

func allGoalsInZone(ts *abstraction.TransitionSystem, zone []bool) bool {
	for _, g := range ts.GoalStates {
		if !zone[g] {
			return false
		}
	}
	return true
}

// getForwardUnreachableStates returns, for every state, whether it cannot be
// reached from stateID by forward transitions without passing through a
// goal state (goal states act as sinks: the search never expands past one).
func getForwardUnreachableStates(ts *abstraction.TransitionSystem, stateID int) []bool {
	isGoal := make([]bool, ts.NumStates)
	for _, g := range ts.GoalStates {
		isGoal[g] = true
	}
	unreachable := make([]bool, ts.NumStates)
	for i := range unreachable {
		unreachable[i] = true
	}
	unreachable[stateID] = false

	var queue []int
	if !isGoal[stateID] {
		queue = append(queue, stateID)
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, t := range ts.Outgoing(s) {
			if unreachable[t.Dst] {
				unreachable[t.Dst] = false
				if !isGoal[t.Dst] {
					queue = append(queue, t.Dst)
				}
			}
		}
	}
	return unreachable
}

// closeZeroCostBackward marks every state in frontier as inside zone and
// repeatedly extends it through zero-cost predecessors until no new state is
// found, returning the whole accumulated closure (not just the outermost
// layer), matching process_backward_frontier's by-reference frontier growth.
func closeZeroCostBackward(ts *abstraction.TransitionSystem, frontier []int, zone []bool) []int {
	full := append([]int(nil), frontier...)
	current := frontier
	for len(current) > 0 {
		for _, s := range current {
			zone[s] = true
		}
		var expanded []int
		seen := map[int]bool{}
		for _, s := range current {
			for _, t := range ts.Incoming(s) {
				if !t.ZeroCost {
					break // zero-cost transitions sort first
				}
				if !zone[t.Src] && !seen[t.Src] {
					seen[t.Src] = true
					expanded = append(expanded, t.Src)
				}
			}
		}
		full = append(full, expanded...)
		current = expanded
	}
	return full
}

func closeZeroCostForward(ts *abstraction.TransitionSystem, frontier []int, zone []bool) []int {
	full := append([]int(nil), frontier...)
	current := frontier
	for len(current) > 0 {
		for _, s := range current {
			zone[s] = true
		}
		var expanded []int
		seen := map[int]bool{}
		for _, s := range current {
			for _, t := range ts.Outgoing(s) {
				if !t.ZeroCost {
					break
				}
				if !zone[t.Dst] && !seen[t.Dst] {
					seen[t.Dst] = true
					expanded = append(expanded, t.Dst)
				}
			}
		}
		full = append(full, expanded...)
		current = expanded
	}
	return full
}

func nonZeroCostPredecessorsAndOperators(a *abstraction.Abstraction, stateID int, exclude []bool) (map[int]struct{}, map[int]struct{}) {
	preds := map[int]struct{}{}
	ops := map[int]struct{}{}
	for _, t := range a.TS.Incoming(stateID) {
		if t.ZeroCost || exclude[t.Src] {
			continue
		}
		preds[t.Src] = struct{}{}
		for _, opID := range a.Alpha.RepresentedOperators(t.Label) {
			ops[opID] = struct{}{}
		}
	}
	return preds, ops
}

func nonZeroCostSuccessorsAndOperators(a *abstraction.Abstraction, stateID int, exclude []bool) (map[int]struct{}, map[int]struct{}) {
	succs := map[int]struct{}{}
	ops := map[int]struct{}{}
	for _, t := range a.TS.Outgoing(stateID) {
		if t.ZeroCost || exclude[t.Dst] {
			continue
		}
		succs[t.Dst] = struct{}{}
		for _, opID := range a.Alpha.RepresentedOperators(t.Label) {
			ops[opID] = struct{}{}
		}
	}
	return succs, ops
}
