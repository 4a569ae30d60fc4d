package landmark

import (
	"bytes"
	"encoding/gob"
)

// serializedEdge and serializedGraph mirror edge/Graph's unexported layout
// so gob can encode it without reaching into private fields directly.
type serializedEdge struct {
	To   int
	Kind OrderingType
}

type serializedGraph struct {
	Actions       []map[int]struct{}
	InitiallyPast []bool
	DeadEnd       bool
	Dependencies  [][]serializedEdge
}

// Serialize encodes the graph for storage in an external cache (pkg/cache's
// landmark-graph memoization). Only the fields
// AbstractionCutFactory.ComputeLandmarkGraph ever populates are carried
// across; the goal-achiever, precondition-achiever, and UAA indices are set
// only through SetGoalAchieverLM/AddPreconditionAchieverEntry/
// SetUAALandmark, which neither ComputeLandmarkGraph nor the fact-landmark
// translator (translate.go) calls, so they are omitted rather than
// round-tripped empty.
func (g *Graph) Serialize() ([]byte, error) {
	sg := serializedGraph{
		Actions:       g.actions,
		InitiallyPast: g.initiallyPast,
		DeadEnd:       g.deadEnd,
		Dependencies:  make([][]serializedEdge, len(g.dependencies)),
	}
	for i, deps := range g.dependencies {
		for _, d := range deps {
			sg.Dependencies[i] = append(sg.Dependencies[i], serializedEdge{To: d.to, Kind: d.kind})
		}
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(sg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DeserializeGraph decodes a graph previously produced by Serialize.
func DeserializeGraph(data []byte) (*Graph, error) {
	var sg serializedGraph
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&sg); err != nil {
		return nil, err
	}

	g := &Graph{
		actions:         sg.Actions,
		initiallyPast:   sg.InitiallyPast,
		deadEnd:         sg.DeadEnd,
		dependencies:    make([][]edge, len(sg.Dependencies)),
		goalAchieverLMs: map[Fact]int{},
		uaaLandmarks:    map[int]int{},
	}
	for i, deps := range sg.Dependencies {
		for _, d := range deps {
			g.dependencies[i] = append(g.dependencies[i], edge{to: d.To, kind: d.Kind})
		}
	}
	return g, nil
}
