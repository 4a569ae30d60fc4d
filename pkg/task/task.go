// Package task defines the minimal external contract dalmcut needs from a
// planning task, plus a concrete, TOML-loadable implementation used by the
// CLI, the HTTP API, and the tests.
//
// The hard core (pkg/abstraction, pkg/projection, pkg/lmcut, pkg/cutdriver,
// pkg/landmark, pkg/status) depends only on the AbstractTask interface below;
// task.Task exists purely to make the surrounding packages runnable end to
// end without requiring a real planner front-end, which is out of scope.
package task

// FactPair is a (variable, value) pair.
type FactPair struct {
	Var   int
	Value int
}

// State is a full assignment of values to every task variable, indexed by
// variable id.
type State []int

// Satisfies reports whether the state assigns f.Value to f's variable.
func (s State) Satisfies(f FactPair) bool {
	return s[f.Var] == f.Value
}

// SatisfiesAll reports whether the state satisfies every fact in facts.
func (s State) SatisfiesAll(facts []FactPair) bool {
	for _, f := range facts {
		if !s.Satisfies(f) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the state.
func (s State) Clone() State {
	out := make(State, len(s))
	copy(out, s)
	return out
}

// Apply returns a new state with eff applied on top of s.
func (s State) Apply(eff []FactPair) State {
	out := s.Clone()
	for _, f := range eff {
		out[f.Var] = f.Value
	}
	return out
}

// AbstractTask is the minimal contract the abstraction-cut landmark core
// requires from a planning task. Axioms and conditional effects are out of
// scope: a task exposing either must fail at construction with
// errors.ErrCodeUnsupportedTaskShape (see task.Validate).
type AbstractTask interface {
	NumVariables() int
	VariableDomainSize(v int) int
	NumOperators() int
	OperatorPreconditions(op int) []FactPair
	OperatorEffects(op int) []FactPair // one unconditional effect per target variable
	OperatorCost(op int) int           // >= 0
	GoalFacts() []FactPair
	InitialState() State
	NumAxioms() int // must be 0
}
