// Package status implements the per-state disjunctive action landmark
// status manager (C9): past/future bitsets progressed along a search
// trajectory by five rules, in a fixed order.
//
// Ported from original_source/src/search/landmarks/dalm_status_manager.cc
// (read in full; every method below is a direct translation of
// progress_basic, progress_goal, progress_greedy_necessary, progress_weak,
// the UAA branch of process_state_transition, and get_landmark_status's
// PAST/FUTURE/PAST_AND_FUTURE derivation).
package status

import (
	"github.com/dalmcut/dalmcut/pkg/landmark"
	"github.com/dalmcut/dalmcut/pkg/task"
)

// Status is a landmark's relationship to a state's trajectory.
type Status int

const (
	StatusPast Status = iota
	StatusFuture
	StatusPastAndFuture
)

// Manager tracks, for every state a caller visits, which landmarks lie
// entirely in its past, entirely in its future, or both.
//
// The original keys its per-state bitsets by the search's StateID, an
// integer the state registry assigns — a collaborator out of scope here.
// Manager instead keys by a uint64 hash the caller supplies for each state
// (e.g. a perfect-hash rank, or any other content hash that is stable and
// collision-free for the caller's purposes).
type Manager struct {
	graph *landmark.Graph

	progressGoals           bool
	progressGreedyNecessary bool
	progressWeak            bool
	progressUAA             bool

	past   map[uint64]*bitset
	future map[uint64]*bitset
}

// NewManager builds a status manager over graph. progressUAA is ANDed with
// graph.HasUAALandmarks(), since the rule has nothing to do when the graph
// carries no unique-achiever-of-action entries.
func NewManager(graph *landmark.Graph, progressGoals, progressGreedyNecessary, progressWeak, progressUAA bool) *Manager {
	return &Manager{
		graph:                   graph,
		progressGoals:           progressGoals,
		progressGreedyNecessary: progressGreedyNecessary,
		progressWeak:            progressWeak,
		progressUAA:             progressUAA && graph.HasUAALandmarks(),
		past:                    map[uint64]*bitset{},
		future:                  map[uint64]*bitset{},
	}
}

// pastOf and futureOf lazily allocate a state's bitsets to the default a
// freshly-registered state would get: every landmark past, none future
// (process_initial_state and progress_basic both rely on this default so
// that progressing an unseen landmark amounts to intersecting it down from
// "assumed past" rather than starting from nothing known).
func (m *Manager) pastOf(hash uint64) *bitset {
	b, ok := m.past[hash]
	if !ok {
		b = newBitset(m.graph.NumLandmarks(), true)
		m.past[hash] = b
	}
	return b
}

func (m *Manager) futureOf(hash uint64) *bitset {
	b, ok := m.future[hash]
	if !ok {
		b = newBitset(m.graph.NumLandmarks(), false)
		m.future[hash] = b
	}
	return b
}

// ProcessInitialState seeds the initial state's bitsets: every landmark
// starts past except those not yet true in the initial state, which move to
// future; a weak-ordering progression pass then follows immediately.
func (m *Manager) ProcessInitialState(hash uint64) {
	past := m.pastOf(hash)
	future := m.futureOf(hash)
	past.resetAll()
	future.setAll()
	for id := 0; id < m.graph.NumLandmarks(); id++ {
		if m.graph.IsTrueInInitial(id) {
			past.set(id)
			future.reset(id)
		}
	}
	if m.progressWeak {
		m.progressWeakRule(past, future)
	}
}

// ProcessStateTransition progresses parentHash's landmark status across
// opID into hash's, in the fixed rule order: basic, goal, greedy-necessary,
// weak, then (if enabled) the unique-achiever-of-action branch.
func (m *Manager) ProcessStateTransition(parentHash uint64, opID int, hash uint64, state task.State) {
	parentPast := m.pastOf(parentHash)
	parentFuture := m.futureOf(parentHash)
	past := m.pastOf(hash)
	future := m.futureOf(hash)

	m.progressBasic(parentPast, parentFuture, past, future, opID)
	if m.progressGoals {
		m.progressGoal(state, future)
	}
	if m.progressGreedyNecessary {
		m.progressGreedyNecessaryRule(state, past, future)
	}
	if m.progressWeak {
		m.progressWeakRule(past, future)
	}
	if m.progressUAA {
		if lmID := m.graph.UAALandmarkForOperator(opID); lmID >= 0 {
			future.set(lmID)
		}
	}
}

// progressBasic carries landmark status down from the parent state: a
// landmark the parent had not yet satisfied only stays past for the child
// when the operator just applied is one of its disjunctive achievers.
func (m *Manager) progressBasic(parentPast, parentFuture, past, future *bitset, opID int) {
	_ = parentFuture
	for id := 0; id < m.graph.NumLandmarks(); id++ {
		if parentPast.test(id) {
			continue
		}
		if past.test(id) {
			if _, achieves := m.graph.Actions(id)[opID]; !achieves {
				past.reset(id)
				future.set(id)
			}
		}
	}
}

// progressGoal marks future every landmark whose goal-achiever fact does
// not yet hold in state (the landmark must still be pursued to reach the
// goal).
func (m *Manager) progressGoal(state task.State, future *bitset) {
	for fact, lmID := range m.graph.GoalAchieverLMs() {
		if !state.Satisfies(task.FactPair{Var: fact.Var, Value: fact.Value}) {
			future.set(lmID)
		}
	}
}

// progressGreedyNecessaryRule marks future every precondition-achiever
// landmark whose preconditioned landmark is not yet past and whose trigger
// facts are all still absent from state.
func (m *Manager) progressGreedyNecessaryRule(state task.State, past, future *bitset) {
	for _, entry := range m.graph.PreconditionAchieverLMs() {
		if past.test(entry.PreconditionedLM) {
			continue
		}
		anyHolds := false
		for _, fact := range entry.Facts {
			if state.Satisfies(task.FactPair{Var: fact.Var, Value: fact.Value}) {
				anyHolds = true
				break
			}
		}
		if !anyHolds {
			future.set(entry.AchieverLM)
		}
	}
}

// progressWeakRule marks future every landmark with a weak-ordered
// predecessor that is not yet past.
func (m *Manager) progressWeakRule(past, future *bitset) {
	for id := 0; id < m.graph.NumLandmarks(); id++ {
		for _, dep := range m.graph.Dependencies(id) {
			if dep.Kind == landmark.Weak && !past.test(dep.From) {
				future.set(id)
			}
		}
	}
}

// LandmarkStatus reports id's relationship to hash's trajectory.
func (m *Manager) LandmarkStatus(hash uint64, id int) Status {
	past := m.pastOf(hash)
	future := m.futureOf(hash)
	if !past.test(id) {
		return StatusFuture
	}
	if !future.test(id) {
		return StatusPast
	}
	return StatusPastAndFuture
}
