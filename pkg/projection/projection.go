// Package projection builds projection abstractions (C3): given a task and
// a pattern (subset of task variables), it enumerates the induced abstract
// state space, groups operators into labels, emits a transition system and
// abstraction function, and prunes dead states and useless labels.
//
// Grounded on original_source/src/search/abstraction_cut/projections.cc
// (group_equivalent_operators, rank_transitions, project_task,
// prune_dead_parts) and on the teacher's pkg/core/dag/transform/cycles.go
// for the colored-DFS reachability idiom, here adapted to a two-directional
// liveness scan instead of cycle detection.
package projection

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dalmcut/dalmcut/pkg/abstraction"
	dalmerrors "github.com/dalmcut/dalmcut/pkg/errors"
	"github.com/dalmcut/dalmcut/pkg/task"
)

// Build constructs a projection abstraction from t restricted to pattern.
func Build(t task.AbstractTask, pattern []int) (*abstraction.Abstraction, error) {
	domainSizes := make([]int, t.NumVariables())
	for v := 0; v < t.NumVariables(); v++ {
		domainSizes[v] = t.VariableDomainSize(v)
	}

	multipliers, numStates, err := hashMultipliers(pattern, domainSizes)
	if err != nil {
		return nil, err
	}

	goalStates := rankGoalStates(t.GoalFacts(), pattern, domainSizes, multipliers, numStates)

	groups := groupEquivalentOperators(t, pattern)
	transitions, inverseLabelMap := rankTransitions(groups, pattern, domainSizes, multipliers)

	ts, err := abstraction.NewTransitionSystem(numStates, len(inverseLabelMap), transitions, goalStates)
	if err != nil {
		return nil, err
	}

	alpha := abstraction.NewProjectionFunction(pattern, domainSizes, inverseLabelMap)

	initRank := alpha.Rank(t.InitialState())
	return pruneDeadParts(&abstraction.Abstraction{Alpha: alpha, TS: ts}, initRank)
}

// hashMultipliers computes the perfect-hash multipliers for pattern and the
// total abstract state count, detecting overflow.
func hashMultipliers(pattern []int, domainSizes []int) ([]int, int, error) {
	multipliers := make([]int, len(pattern))
	n := 1
	for i, v := range pattern {
		multipliers[i] = n
		d := domainSizes[v]
		if d != 0 && n > (1<<62)/d {
			return nil, 0, dalmerrors.New(dalmerrors.ErrCodeDomainTooLarge, "pattern %v overflows the abstract state count", pattern)
		}
		n *= d
	}
	return multipliers, n, nil
}

// rankGoalStates enumerates every concrete assignment consistent with the
// task's goal restricted to pattern variables and returns their ranks. If no
// goal fact constrains a pattern variable, every abstract state is a goal
// state (the empty-goal special case from spec.md §2/§4.3).
func rankGoalStates(goal []task.FactPair, pattern []int, domainSizes []int, multipliers []int, numStates int) []int {
	fixed := map[int]int{}
	for _, f := range goal {
		if idx := indexOf(pattern, f.Var); idx != -1 {
			fixed[idx] = f.Value
		}
	}
	if len(fixed) == 0 {
		states := make([]int, numStates)
		for i := range states {
			states[i] = i
		}
		return states
	}

	var states []int
	multiplyOut(pattern, domainSizes, fixed, 0, 0, multipliers, func(rank int) {
		states = append(states, rank)
	})
	return states
}

// multiplyOut recursively enumerates every assignment of the pattern
// variables consistent with fixed (index in pattern -> required value),
// invoking emit with the rank of each resulting assignment.
func multiplyOut(pattern []int, domainSizes []int, fixed map[int]int, i, rankSoFar int, multipliers []int, emit func(int)) {
	if i == len(pattern) {
		emit(rankSoFar)
		return
	}
	if v, ok := fixed[i]; ok {
		multiplyOut(pattern, domainSizes, fixed, i+1, rankSoFar+multipliers[i]*v, multipliers, emit)
		return
	}
	d := domainSizes[pattern[i]]
	for val := 0; val < d; val++ {
		multiplyOut(pattern, domainSizes, fixed, i+1, rankSoFar+multipliers[i]*val, multipliers, emit)
	}
}

func indexOf(xs []int, v int) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}
	return -1
}

// operatorGroup is one label's worth of original operators: every operator
// sharing the same (pre on pattern, eff on pattern, zero-cost) key.
type operatorGroup struct {
	preOnPattern []task.FactPair
	effOnPattern []task.FactPair
	zeroCost     bool
	operators    []int
}

// groupEquivalentOperators groups original operators by the key
// (sort(pre∩pattern), sort(eff∩pattern), cost==0); operators whose effect on
// pattern is empty are discarded (they self-loop on every abstract state).
//
// The key must be a totally ordered tuple of sorted fact lists plus the
// zero-cost bit (spec.md §9's "label grouping invariant"); Go has no native
// tuple-as-map-key for slices, so the key is the joined string encoding of
// the two sorted FactPair slices plus the zero-cost bit, grounded on the
// teacher's pkg/cache/hash.go pattern of collapsing composite keys into one
// comparable value.
func groupEquivalentOperators(t task.AbstractTask, pattern []int) []operatorGroup {
	index := map[string]int{}
	var groups []operatorGroup

	for op := 0; op < t.NumOperators(); op++ {
		pre := restrictSorted(t.OperatorPreconditions(op), pattern)
		eff := restrictSorted(t.OperatorEffects(op), pattern)
		if len(eff) == 0 {
			continue
		}
		zeroCost := t.OperatorCost(op) == 0
		key := groupKey(pre, eff, zeroCost)

		if slot, ok := index[key]; ok {
			groups[slot].operators = append(groups[slot].operators, op)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, operatorGroup{
			preOnPattern: pre,
			effOnPattern: eff,
			zeroCost:     zeroCost,
			operators:    []int{op},
		})
	}
	return groups
}

func restrictSorted(facts []task.FactPair, pattern []int) []task.FactPair {
	var out []task.FactPair
	for _, f := range facts {
		if indexOf(pattern, f.Var) != -1 {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Var != out[j].Var {
			return out[i].Var < out[j].Var
		}
		return out[i].Value < out[j].Value
	})
	return out
}

func groupKey(pre, eff []task.FactPair, zeroCost bool) string {
	var b strings.Builder
	for _, f := range pre {
		fmt.Fprintf(&b, "p%d=%d;", f.Var, f.Value)
	}
	b.WriteByte('|')
	for _, f := range eff {
		fmt.Fprintf(&b, "e%d=%d;", f.Var, f.Value)
	}
	b.WriteByte('|')
	if zeroCost {
		b.WriteByte('0')
	} else {
		b.WriteByte('1')
	}
	return b.String()
}

// rankTransitions assigns one label per group, enumerates every assignment
// of the non-precondition pattern variables, and emits a transition for
// every non-self-loop successor.
func rankTransitions(groups []operatorGroup, pattern []int, domainSizes []int, multipliers []int) ([]abstraction.Transition, [][]int) {
	var transitions []abstraction.Transition
	inverseLabelMap := make([][]int, 0, len(groups))

	for _, g := range groups {
		label := len(inverseLabelMap)
		inverseLabelMap = append(inverseLabelMap, append([]int(nil), g.operators...))

		fixed := map[int]int{}
		for _, f := range g.preOnPattern {
			fixed[indexOf(pattern, f.Var)] = f.Value
		}
		effByIdx := map[int]int{}
		for _, f := range g.effOnPattern {
			effByIdx[indexOf(pattern, f.Var)] = f.Value
		}

		multiplyOut(pattern, domainSizes, fixed, 0, 0, multipliers, func(src int) {
			dst := src
			for idx, val := range effByIdx {
				dst += multipliers[idx] * (val - valueAt(src, idx, multipliers, pattern, domainSizes))
			}
			if dst == src {
				return
			}
			transitions = append(transitions, abstraction.Transition{
				Src:      src,
				Label:    label,
				Dst:      dst,
				ZeroCost: g.zeroCost,
			})
		})
	}
	return transitions, inverseLabelMap
}

// valueAt extracts the value of pattern[idx] from a perfect-hash rank.
func valueAt(rank, idx int, multipliers, pattern, domainSizes []int) int {
	return (rank / multipliers[idx]) % domainSizes[pattern[idx]]
}

// pruneDeadParts computes alive_state := forward-reachable-from-init AND
// backward-reachable-from-goals, compacts surviving states, computes
// alive_label := exists surviving transition with that label, and produces
// a coarsened TransitionSystem and Function.
func pruneDeadParts(a *abstraction.Abstraction, initRank int) (*abstraction.Abstraction, error) {
	ts := a.TS
	initID := initRank
	if initID < 0 || initID >= ts.NumStates {
		return nil, dalmerrors.New(dalmerrors.ErrCodeUnsolvableTask, "initial state rank %d out of range", initRank)
	}

	forwardReachable := bfs(ts.NumStates, initID, func(s int) []int {
		var out []int
		for _, t := range ts.Outgoing(s) {
			out = append(out, t.Dst)
		}
		return out
	})

	backwardReachable := make([]bool, ts.NumStates)
	for _, g := range ts.GoalStates {
		for s, ok := range bfs(ts.NumStates, g, func(s int) []int {
			var out []int
			for _, t := range ts.Incoming(s) {
				out = append(out, t.Src)
			}
			return out
		}) {
			if ok {
				backwardReachable[s] = true
			}
		}
	}

	if !backwardReachable[initID] {
		return nil, dalmerrors.New(dalmerrors.ErrCodeUnsolvableTask, "initial abstract state %d is dead after pruning", initID)
	}

	newStateIDs := make([]int, ts.NumStates)
	next := 0
	for s := 0; s < ts.NumStates; s++ {
		if forwardReachable[s] && backwardReachable[s] {
			newStateIDs[s] = next
			next++
		} else {
			newStateIDs[s] = -1
		}
	}

	aliveLabel := make([]bool, ts.NumLabels)
	for _, t := range ts.Transitions() {
		if newStateIDs[t.Src] != -1 && newStateIDs[t.Dst] != -1 {
			aliveLabel[t.Label] = true
		}
	}
	newLabelIDs := make([]int, ts.NumLabels)
	nextLabel := 0
	for l := 0; l < ts.NumLabels; l++ {
		if aliveLabel[l] {
			newLabelIDs[l] = nextLabel
			nextLabel++
		} else {
			newLabelIDs[l] = -1
		}
	}

	prunedTS, err := ts.Prune(newStateIDs, newLabelIDs)
	if err != nil {
		return nil, err
	}
	prunedAlpha := abstraction.NewCoarsenedFunction(a.Alpha, newStateIDs, newLabelIDs)

	return &abstraction.Abstraction{Alpha: prunedAlpha, TS: prunedTS}, nil
}

// bfs returns a boolean reachability vector from start using neighbors(s) to
// expand the frontier.
func bfs(numStates, start int, neighbors func(int) []int) []bool {
	reached := make([]bool, numStates)
	reached[start] = true
	queue := []int{start}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, n := range neighbors(s) {
			if !reached[n] {
				reached[n] = true
				queue = append(queue, n)
			}
		}
	}
	return reached
}
