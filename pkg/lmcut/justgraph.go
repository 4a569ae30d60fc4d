package lmcut

import (
	"github.com/dalmcut/dalmcut/pkg/abstraction"
	"github.com/dalmcut/dalmcut/pkg/task"
)

// buildJustificationGraph materializes the current h_max supporter chain as
// a transition system: one synthetic zero-cost transition per fact of the
// last-explored state (label 0, dense state id 0 -> that fact's id), then
// one transition per (proposition -> operator's effect) edge where the
// proposition is that operator's h_max supporter, labelled by a dense id
// assigned the first time each original operator id is encountered.
//
// Label 0 is reserved for both the synthetic init transitions and the
// synthetic goal-achieving operator (OriginalOpID == -1): the -1 sentinel
// operator id must never be exposed as its own label, so both synthetic
// sources collapse onto label 0's InverseLabelMap entry of {-1}.
func (e *Engine) buildJustificationGraph() (*abstraction.TransitionSystem, [][]int) {
	denseID := map[int]int{}
	var transitions []abstraction.Transition
	labelMapping := [][]int{{-1}}
	opIDToLabel := map[int]int{}

	assignDense := func(propID int) (int, bool) {
		if id, ok := denseID[propID]; ok {
			return id, false
		}
		id := len(denseID)
		denseID[propID] = id
		return id, true
	}

	rootID, _ := assignDense(e.artificialPreconditionID)
	var queue []int
	queue = append(queue, e.artificialPreconditionID)

	for v, val := range e.lastState {
		propID := e.getProp(task.FactPair{Var: v, Value: val})
		id, isNew := assignDense(propID)
		if isNew {
			queue = append(queue, propID)
		}
		transitions = append(transitions, abstraction.Transition{Src: rootID, Label: 0, Dst: id, ZeroCost: true})
	}

	goalStateID := -1
	for i := 0; i < len(queue); i++ {
		propID := queue[i]
		curID := denseID[propID]

		for _, opID := range e.prop[propID].preconditionOf {
			op := &e.op[opID]
			if op.HMaxSupporter != propID {
				continue
			}
			for _, effID := range op.Eff {
				dstID, isNew := assignDense(effID)
				if isNew {
					queue = append(queue, effID)
				}

				label := 0
				if op.OriginalOpID != -1 {
					l, ok := opIDToLabel[op.OriginalOpID]
					if !ok {
						l = len(labelMapping)
						opIDToLabel[op.OriginalOpID] = l
						labelMapping = append(labelMapping, []int{op.OriginalOpID})
					}
					label = l
				}

				transitions = append(transitions, abstraction.Transition{
					Src:      curID,
					Label:    label,
					Dst:      dstID,
					ZeroCost: op.BaseCost == 0,
				})
				if effID == e.artificialGoalPropID {
					goalStateID = dstID
				}
			}
		}
	}

	if goalStateID == -1 {
		// The goal proposition was reached by first_exploration but never
		// visited by this BFS (can only happen if h_max(goal) == 0 and the
		// caller still asked for a graph); fall back to its dense id.
		goalStateID, _ = assignDense(e.artificialGoalPropID)
	}

	ts, err := abstraction.NewTransitionSystem(len(denseID), len(labelMapping), transitions, []int{goalStateID})
	if err != nil {
		// Unreachable in practice: goalStateID is always assigned above, so
		// NewTransitionSystem's only failure mode (no goal states) cannot
		// trigger. Panic rather than thread an error through a graph-shape
		// invariant that construction already guarantees.
		panic(err)
	}
	return ts, labelMapping
}
