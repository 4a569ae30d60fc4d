// Package lmcut implements the delete-relaxation exploration engine and the
// lm-cut landmark extraction loop (C4/C5) plus the justification-graph
// extractor (C6).
//
// Grounded on original_source/src/search/abstraction_cut/justification_graph_factory.cc
// (RelaxedProposition/RelaxedOperator layout, first_exploration,
// first_exploration_incremental, second_exploration, mark_goal_plateau,
// build_justification_graph) and, for the arena-of-indices style, the
// teacher's pkg/core/dag package (no pointers between nodes, integer indices
// into a owning slice).
package lmcut

import (
	"math"

	dalmerrors "github.com/dalmcut/dalmcut/pkg/errors"
	"github.com/dalmcut/dalmcut/pkg/task"
)

const infCost = math.MaxInt32

type propStatus int

const (
	statusUnreached propStatus = iota
	statusReached
	statusGoalZone
	statusBeforeGoalZone
)

// artificialPreconditionVar/artificialGoalVar are sentinel fact variables that never
// collide with a real task variable (which are always >= 0).
const (
	artificialPreconditionVar = -1
	artificialGoalVar         = -2
)

type relaxedProposition struct {
	fact           task.FactPair
	status         propStatus
	hMaxCost       int
	preconditionOf []int // indices into Engine.ops
	effectOf       []int // indices into Engine.ops
}

// RelaxedOperator is one delete-relaxed operator: either a projection of a
// real task operator (OriginalOpID >= 0) or the single synthetic operator
// achieving the artificial goal proposition from the task's real goal facts
// (OriginalOpID == -1). CutIteration.Operators filters the -1 sentinel out;
// outside this package it appears only as label 0's InverseLabelMap entry
// of a justification graph, whose transitions are all zero-cost.
type RelaxedOperator struct {
	OriginalOpID      int
	Pre               []int // proposition indices
	Eff               []int // proposition indices
	BaseCost          int
	Cost              int // BaseCost minus every cut delta subtracted so far
	UnsatisfiedPre    int
	HMaxSupporter     int // proposition index, -1 until first_exploration sets it
	HMaxSupporterCost int
}

// Engine holds the arena of relaxed propositions and operators derived from
// a task, reused across every lm-cut iteration and every call site so the
// arena is built exactly once per task.
type Engine struct {
	t    task.AbstractTask
	prop []relaxedProposition
	op   []RelaxedOperator

	factIndex map[task.FactPair]int

	artificialPreconditionID int
	artificialGoalPropID     int
	artificialGoalOpID       int

	lastState task.State
}

// NewEngine builds the relaxed-operator arena for t: one RelaxedOperator per
// real operator (empty preconditions fall back to the artificial
// precondition) plus the synthetic goal operator.
func NewEngine(t task.AbstractTask) (*Engine, error) {
	e := &Engine{
		t:         t,
		factIndex: map[task.FactPair]int{},
	}
	e.artificialPreconditionID = e.getProp(task.FactPair{Var: artificialPreconditionVar, Value: 0})

	for op := 0; op < t.NumOperators(); op++ {
		e.buildOperator(t.OperatorPreconditions(op), t.OperatorEffects(op), t.OperatorCost(op), op)
	}

	e.artificialGoalPropID = e.getProp(task.FactPair{Var: artificialGoalVar, Value: 0})
	e.artificialGoalOpID = e.buildOperator(t.GoalFacts(), []task.FactPair{{Var: artificialGoalVar, Value: 0}}, 0, -1)

	return e, nil
}

func (e *Engine) getProp(f task.FactPair) int {
	if id, ok := e.factIndex[f]; ok {
		return id
	}
	id := len(e.prop)
	e.prop = append(e.prop, relaxedProposition{fact: f, hMaxCost: infCost})
	e.factIndex[f] = id
	return id
}

func (e *Engine) buildOperator(pre, eff []task.FactPair, baseCost, originalOpID int) int {
	var preIdx []int
	for _, f := range pre {
		preIdx = append(preIdx, e.getProp(f))
	}
	if len(preIdx) == 0 {
		preIdx = []int{e.artificialPreconditionID}
	}
	var effIdx []int
	for _, f := range eff {
		effIdx = append(effIdx, e.getProp(f))
	}

	opID := len(e.op)
	e.op = append(e.op, RelaxedOperator{
		OriginalOpID:   originalOpID,
		Pre:            preIdx,
		Eff:            effIdx,
		BaseCost:       baseCost,
		Cost:           baseCost,
		UnsatisfiedPre: len(preIdx),
		HMaxSupporter:  -1,
	})
	for _, p := range preIdx {
		e.prop[p].preconditionOf = append(e.prop[p].preconditionOf, opID)
	}
	for _, p := range effIdx {
		e.prop[p].effectOf = append(e.prop[p].effectOf, opID)
	}
	return opID
}

// HMaxGoal returns h_max of the artificial goal proposition, or
// math.MaxInt32 if it is unreached (the relaxed task is unsolvable from the
// last explored state).
func (e *Engine) HMaxGoal() int {
	return e.prop[e.artificialGoalPropID].hMaxCost
}

func (e *Engine) goalReached() bool {
	return e.prop[e.artificialGoalPropID].status != statusUnreached
}

// FirstExploration resets every operator's cost and runs a full h_max
// Dijkstra from state, settling every proposition's hMaxCost and every
// operator's h_max supporter (the last-arriving precondition, which is the
// max-cost one by the Dijkstra non-decreasing-pop invariant).
func (e *Engine) FirstExploration(state task.State) {
	e.lastState = state.Clone()

	for i := range e.prop {
		e.prop[i].status = statusUnreached
		e.prop[i].hMaxCost = infCost
	}
	for i := range e.op {
		e.op[i].Cost = e.op[i].BaseCost
		e.op[i].UnsatisfiedPre = len(e.op[i].Pre)
		e.op[i].HMaxSupporter = -1
		e.op[i].HMaxSupporterCost = 0
	}

	q := newBucketQueue()
	for v, val := range state {
		p := e.getProp(task.FactPair{Var: v, Value: val})
		e.prop[p].hMaxCost = 0
		q.push(0, p)
	}
	e.prop[e.artificialPreconditionID].hMaxCost = 0
	q.push(0, e.artificialPreconditionID)

	e.dijkstra(q)
}

func (e *Engine) dijkstra(q *bucketQueue) {
	for {
		cost, propID, ok := q.popMin()
		if !ok {
			break
		}
		p := &e.prop[propID]
		if p.status != statusUnreached {
			continue // stale duplicate entry, already settled
		}
		p.status = statusReached
		p.hMaxCost = cost

		for _, opID := range p.preconditionOf {
			op := &e.op[opID]
			op.UnsatisfiedPre--
			if op.UnsatisfiedPre > 0 {
				continue
			}
			op.HMaxSupporter = propID
			op.HMaxSupporterCost = cost
			newCost := cost + op.Cost
			for _, effID := range op.Eff {
				if e.prop[effID].status == statusUnreached {
					q.push(newCost, effID)
				}
			}
		}
	}
}

// FirstExplorationIncremental re-relaxes the queue after the operators in
// cut have had their Cost reduced by the caller: their effects are
// re-enqueued at HMaxSupporterCost+Cost, and every operator whose
// h_max-supporting proposition improves has its supporter recomputed by a
// linear scan of its (typically few) preconditions.
func (e *Engine) FirstExplorationIncremental(cut []*RelaxedOperator) {
	q := newBucketQueue()
	for _, op := range cut {
		newCost := op.HMaxSupporterCost + op.Cost
		for _, effID := range op.Eff {
			eff := &e.prop[effID]
			if newCost < eff.hMaxCost {
				eff.hMaxCost = newCost
				q.push(newCost, effID)
			} else {
				q.pushVirtual()
			}
		}
	}

	for {
		cost, propID, ok := q.popMin()
		if !ok {
			break
		}
		p := &e.prop[propID]
		if cost > p.hMaxCost {
			continue // superseded by a better push already processed
		}

		for _, opID := range p.preconditionOf {
			op := &e.op[opID]
			supporter, supporterCost := -1, -1
			for _, preID := range op.Pre {
				c := e.prop[preID].hMaxCost
				if c > supporterCost {
					supporterCost = c
					supporter = preID
				}
			}
			if supporterCost >= op.HMaxSupporterCost {
				continue
			}
			op.HMaxSupporter = supporter
			op.HMaxSupporterCost = supporterCost
			newCost := supporterCost + op.Cost
			for _, effID := range op.Eff {
				eff := &e.prop[effID]
				if newCost < eff.hMaxCost {
					eff.hMaxCost = newCost
					q.push(newCost, effID)
				}
			}
		}
	}
}

// MarkGoalPlateau marks the artificial goal proposition and every
// proposition reachable from it through zero-cost achievers' h_max
// supporters as statusGoalZone.
func (e *Engine) MarkGoalPlateau() {
	e.markGoalPlateau(e.artificialGoalPropID)
}

func (e *Engine) markGoalPlateau(propID int) {
	p := &e.prop[propID]
	if p.status == statusGoalZone {
		return
	}
	dalmerrors.Invariant(p.status == statusReached, "goal plateau walk hit an unreached proposition")
	p.status = statusGoalZone
	for _, opID := range p.effectOf {
		op := &e.op[opID]
		if op.Cost != 0 || op.HMaxSupporter == -1 {
			continue
		}
		e.markGoalPlateau(op.HMaxSupporter)
	}
}

// SecondExploration walks forward from the artificial precondition and the
// current state's facts (all marked statusBeforeGoalZone) along operators
// whose h_max supporter is the popped proposition; any such operator with a
// goal-zone effect enters the cut (its cost is guaranteed > 0 since the
// whole goal plateau is zero-cost-closed), otherwise its effects are marked
// statusBeforeGoalZone and pushed.
func (e *Engine) SecondExploration(state task.State) []*RelaxedOperator {
	var cut []*RelaxedOperator
	var stack []int

	mark := func(propID int) {
		if e.prop[propID].status == statusReached {
			e.prop[propID].status = statusBeforeGoalZone
			stack = append(stack, propID)
		}
	}

	mark(e.artificialPreconditionID)
	for v, val := range state {
		mark(e.getProp(task.FactPair{Var: v, Value: val}))
	}

	for len(stack) > 0 {
		propID := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, opID := range e.prop[propID].preconditionOf {
			op := &e.op[opID]
			if op.HMaxSupporter != propID {
				continue
			}
			goalZone := false
			for _, effID := range op.Eff {
				if e.prop[effID].status == statusGoalZone {
					goalZone = true
					break
				}
			}
			if goalZone {
				dalmerrors.Invariant(op.Cost > 0, "lm-cut: a zero-cost operator crossed into the cut")
				cut = append(cut, op)
				continue
			}
			for _, effID := range op.Eff {
				mark(effID)
			}
		}
	}
	return cut
}

// resetGoalZoneStatuses restores every goal-zone/before-goal-zone
// proposition to statusReached, ready for the next iteration's plateau
// walk.
func (e *Engine) resetGoalZoneStatuses() {
	for i := range e.prop {
		if e.prop[i].status == statusGoalZone || e.prop[i].status == statusBeforeGoalZone {
			e.prop[i].status = statusReached
		}
	}
}

// minCost returns the minimum Cost among the operators in cut.
func minCost(cut []*RelaxedOperator) int {
	m := infCost
	for _, op := range cut {
		if op.Cost < m {
			m = op.Cost
		}
	}
	return m
}

// Operator exposes a RelaxedOperator by engine-internal index, for callers
// that want to inspect cut membership (e.g. rendering or debugging).
func (e *Engine) Operator(id int) RelaxedOperator {
	return e.op[id]
}
