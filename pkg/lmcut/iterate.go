package lmcut

import (
	"github.com/dalmcut/dalmcut/pkg/abstraction"
	dalmerrors "github.com/dalmcut/dalmcut/pkg/errors"
	"github.com/dalmcut/dalmcut/pkg/task"
)

// CutIteration is one round of the lm-cut loop: the disjunctive action
// landmark it discovered (Operators, the original task operator ids any one
// of which every plan must use), the cost it subtracted from the relaxed
// heuristic, and the justification graph materialized just before the cut
// was taken.
type CutIteration struct {
	Operators     []int
	Delta         int
	Justification *abstraction.Abstraction
}

// Iterate runs the lm-cut loop from state: repeatedly computing h_max,
// marking the zero-cost goal plateau, extracting a cut via the second
// exploration, and reducing the cut operators' cost by the cut's minimum
// cost, until h_max(goal) reaches zero. singleOnly stops after the first
// iteration, implementing the supplemented single_justification_graph
// toggle (one abstraction per call instead of one per iteration).
func (e *Engine) Iterate(state task.State, singleOnly bool) ([]CutIteration, error) {
	e.FirstExploration(state)
	if !e.goalReached() {
		return nil, dalmerrors.New(dalmerrors.ErrCodeDeadEnd, "relaxed goal is unreachable from the given state")
	}

	var iterations []CutIteration
	for e.HMaxGoal() > 0 {
		ts, labels := e.buildJustificationGraph()
		just := &abstraction.Abstraction{
			Alpha: &abstraction.Function{InverseLabelMap: labels},
			TS:    ts,
		}

		e.MarkGoalPlateau()
		cut := e.SecondExploration(state)
		dalmerrors.Invariant(len(cut) > 0, "lm-cut: second exploration produced an empty cut while h_max(goal) > 0")

		delta := minCost(cut)
		for _, op := range cut {
			op.Cost -= delta
		}
		e.FirstExplorationIncremental(cut)
		e.resetGoalZoneStatuses()

		seen := map[int]bool{}
		var originalOps []int
		for _, op := range cut {
			id := op.OriginalOpID
			if id == -1 || seen[id] {
				continue
			}
			seen[id] = true
			originalOps = append(originalOps, id)
		}

		iterations = append(iterations, CutIteration{
			Operators:     originalOps,
			Delta:         delta,
			Justification: just,
		})

		if singleOnly {
			break
		}
	}
	return iterations, nil
}
