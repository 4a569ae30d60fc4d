// Package landmark implements the disjunctive action landmark graph (C7)
// and its fact-landmark translator (C7a).
//
// No dalm_graph.{h,cc} was retrieved in the reference pack; the graph's
// public surface below is reconstructed from its callers —
// original_source/src/search/abstraction_cut/abstraction_cut_factory.cc
// (add_node, add_edge, mark_as_dead_end), original_source/src/search/
// landmarks/fact_landmark_graph_translator_factory.cc (landmarks_overlap),
// and original_source/src/search/landmarks/dalm_status_manager.cc (get_
// actions, get_goal_achiever_lms, get_precondition_achiever_lms, get_
// dependencies, has_uaa_landmarks, get_uaa_landmark_for_operator,
// is_true_in_initial).
package landmark

import (
	dalmerrors "github.com/dalmcut/dalmcut/pkg/errors"
)

// OrderingType is the strength of an ordering edge between two landmarks.
type OrderingType int

const (
	// Weak orderings must hold in some, but not necessarily every, plan.
	Weak OrderingType = iota
	// Strong orderings must hold in every plan.
	Strong
)

type edge struct {
	to   int
	kind OrderingType
}

// PreconditionAchieverEntry pairs a precondition-achieving landmark with the
// landmark it greedy-necessarily orders before, and the facts whose absence
// from a state signals the achiever has not yet fired.
type PreconditionAchieverEntry struct {
	PreconditionedLM int
	AchieverLM       int
	Facts            []Fact
}

// Fact is a (variable, value) pair with the same layout as task.FactPair,
// used as the goal-achiever index key and in precondition-achiever entries.
// translate.go is the only file in this package that imports pkg/task.
type Fact struct {
	Var   int
	Value int
}

// Graph is the disjunctive action landmark graph: each node is a non-empty
// set of operator ids (any one of which every plan must use), edges are
// typed STRONG/WEAK orderings between them.
type Graph struct {
	actions       []map[int]struct{}
	initiallyPast []bool
	deadEnd       bool

	dependencies [][]edge // dependencies[to] = list of (from, kind) edges into "to"

	goalAchieverLMs        map[Fact]int
	preconditionAchieverLMs []PreconditionAchieverEntry
	uaaLandmarks            map[int]int // operator id -> landmark id
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		goalAchieverLMs: map[Fact]int{},
		uaaLandmarks:    map[int]int{},
	}
}

// AddNode adds a landmark for the given non-empty action set and returns its
// id. initiallyPast records whether the landmark's disjunctive condition
// already holds in the initial state (IsTrueInInitial).
func (g *Graph) AddNode(actions map[int]struct{}, initiallyPast bool) (int, error) {
	if len(actions) == 0 {
		return -1, dalmerrors.New(dalmerrors.ErrCodeInvariantViolation, "landmark node must have a non-empty action set")
	}
	id := len(g.actions)
	g.actions = append(g.actions, actions)
	g.initiallyPast = append(g.initiallyPast, initiallyPast)
	g.dependencies = append(g.dependencies, nil)
	return id, nil
}

// AddEdge records an ordering from -> to of the given strength.
func (g *Graph) AddEdge(from, to int, strong bool) {
	kind := Weak
	if strong {
		kind = Strong
	}
	g.dependencies[to] = append(g.dependencies[to], edge{to: from, kind: kind})
}

// LandmarksOverlap reports whether the two landmarks share at least one
// action, the case the fact-landmark translator must skip an edge for
// (applying the shared action would resolve both landmarks and their
// ordering in a single step).
func (g *Graph) LandmarksOverlap(a, b int) bool {
	small, large := g.actions[a], g.actions[b]
	if len(g.actions[b]) < len(small) {
		small, large = large, small
	}
	for op := range small {
		if _, ok := large[op]; ok {
			return true
		}
	}
	return false
}

// MarkDeadEnd flags the graph as built for a dead-end query state: one that
// an abstraction maps to a pruned abstract state, or one queried against a
// factory whose relaxed exploration found the goal unreachable.
func (g *Graph) MarkDeadEnd() { g.deadEnd = true }

// IsDeadEnd reports whether MarkDeadEnd was called.
func (g *Graph) IsDeadEnd() bool { return g.deadEnd }

// NumLandmarks returns the number of landmark nodes.
func (g *Graph) NumLandmarks() int { return len(g.actions) }

// Actions returns the action set of landmark id.
func (g *Graph) Actions(id int) map[int]struct{} { return g.actions[id] }

// IsTrueInInitial reports whether landmark id's disjunctive condition
// already held in the initial state.
func (g *Graph) IsTrueInInitial(id int) bool { return g.initiallyPast[id] }

// Dependency is one ordering edge into a landmark.
type Dependency struct {
	From int
	Kind OrderingType
}

// Dependencies returns the ordering edges into landmark id, consumed by
// pkg/status's progress_weak.
func (g *Graph) Dependencies(id int) []Dependency {
	out := make([]Dependency, len(g.dependencies[id]))
	for i, e := range g.dependencies[id] {
		out[i] = Dependency{From: e.to, Kind: e.kind}
	}
	return out
}

// SetGoalAchieverLM records that landmark id achieves goal fact fact
// (progress_goal's get_goal_achiever_lms map, which marks id future in any
// state where fact does not hold).
func (g *Graph) SetGoalAchieverLM(fact Fact, id int) {
	g.goalAchieverLMs[fact] = id
}

// GoalAchieverLMs returns the goal-achiever index.
func (g *Graph) GoalAchieverLMs() map[Fact]int { return g.goalAchieverLMs }

// AddPreconditionAchieverEntry records a greedy-necessary ordering entry
// (progress_greedy_necessary's get_precondition_achiever_lms list).
func (g *Graph) AddPreconditionAchieverEntry(entry PreconditionAchieverEntry) {
	g.preconditionAchieverLMs = append(g.preconditionAchieverLMs, entry)
}

// PreconditionAchieverLMs returns the greedy-necessary index.
func (g *Graph) PreconditionAchieverLMs() []PreconditionAchieverEntry {
	return g.preconditionAchieverLMs
}

// SetUAALandmark records that operator opID is the unique achiever of
// landmark id.
func (g *Graph) SetUAALandmark(opID, id int) {
	g.uaaLandmarks[opID] = id
}

// HasUAALandmarks reports whether any UAA entries were recorded.
func (g *Graph) HasUAALandmarks() bool { return len(g.uaaLandmarks) > 0 }

// UAALandmarkForOperator returns the landmark uniquely achieved by opID, or
// -1 if none is recorded.
func (g *Graph) UAALandmarkForOperator(opID int) int {
	if id, ok := g.uaaLandmarks[opID]; ok {
		return id
	}
	return -1
}
