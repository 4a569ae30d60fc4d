package task

import (
	"os"

	"github.com/BurntSushi/toml"

	dalmerrors "github.com/dalmcut/dalmcut/pkg/errors"
)

// Variable describes one task variable: a name (for diagnostics) and a
// finite domain size.
type Variable struct {
	Name       string `toml:"name"`
	DomainSize int    `toml:"domain_size"`
}

// Operator is a concrete, unconditional-effect operator.
type Operator struct {
	Name string     `toml:"name"`
	Pre  []FactPair `toml:"pre"`
	Eff  []FactPair `toml:"eff"`
	Cost int        `toml:"cost"`
}

// Task is a concrete, serializable AbstractTask implementation loaded from
// TOML. It exists to make the CLI, the HTTP API, and the tests runnable; the
// hard core never imports this type directly, only the AbstractTask
// interface it satisfies.
type Task struct {
	Variables []Variable `toml:"variables"`
	Operators []Operator `toml:"operators"`
	Init      State      `toml:"init"`
	Goal      []FactPair `toml:"goal"`
	Axioms    int        `toml:"axioms"`
}

var _ AbstractTask = (*Task)(nil)

// NumVariables implements AbstractTask.
func (t *Task) NumVariables() int { return len(t.Variables) }

// VariableDomainSize implements AbstractTask.
func (t *Task) VariableDomainSize(v int) int { return t.Variables[v].DomainSize }

// NumOperators implements AbstractTask.
func (t *Task) NumOperators() int { return len(t.Operators) }

// OperatorPreconditions implements AbstractTask.
func (t *Task) OperatorPreconditions(op int) []FactPair { return t.Operators[op].Pre }

// OperatorEffects implements AbstractTask.
func (t *Task) OperatorEffects(op int) []FactPair { return t.Operators[op].Eff }

// OperatorCost implements AbstractTask.
func (t *Task) OperatorCost(op int) int { return t.Operators[op].Cost }

// GoalFacts implements AbstractTask.
func (t *Task) GoalFacts() []FactPair { return t.Goal }

// InitialState implements AbstractTask.
func (t *Task) InitialState() State { return t.Init }

// NumAxioms implements AbstractTask.
func (t *Task) NumAxioms() int { return t.Axioms }

// Load reads a Task from a TOML file and validates its shape.
func Load(path string) (*Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, dalmerrors.Wrap(dalmerrors.ErrCodeUnsupportedTaskShape, err, "read task file %s", path)
	}
	var t Task
	if _, err := toml.Decode(string(data), &t); err != nil {
		return nil, dalmerrors.Wrap(dalmerrors.ErrCodeUnsupportedTaskShape, err, "decode task file %s", path)
	}
	if err := Validate(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks that a task satisfies the AbstractTask contract: no
// axioms, and at most one effect fact per variable per operator (the
// "unconditional effect" shape — dalmcut's loader has no syntax for
// conditional effects, so this reduces to a per-variable uniqueness check).
func Validate(t AbstractTask) error {
	if t.NumAxioms() != 0 {
		return dalmerrors.New(dalmerrors.ErrCodeUnsupportedTaskShape, "task has %d axioms, axioms are unsupported", t.NumAxioms())
	}
	for op := 0; op < t.NumOperators(); op++ {
		seen := map[int]bool{}
		for _, f := range t.OperatorEffects(op) {
			if seen[f.Var] {
				return dalmerrors.New(dalmerrors.ErrCodeUnsupportedTaskShape,
					"operator %d has more than one effect on variable %d (conditional effects are unsupported)", op, f.Var)
			}
			seen[f.Var] = true
		}
		if t.OperatorCost(op) < 0 {
			return dalmerrors.New(dalmerrors.ErrCodeUnsupportedTaskShape, "operator %d has negative cost %d", op, t.OperatorCost(op))
		}
	}
	return nil
}
