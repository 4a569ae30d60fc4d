package landmark

import (
	"github.com/dalmcut/dalmcut/pkg/task"
)

// FactLandmarkGraph is the minimal contract TranslateFactLandmarks needs
// from a conjunctive fact-landmark graph producer (spec.md §4.8 describes
// the translation but not a concrete fact-landmark-generator type — none is
// in scope, so this interface is the boundary a future generator satisfies).
//
// Grounded on original_source/src/search/landmarks/fact_landmark_graph_
// translator_factory.cc's use of LandmarkGraph/LandmarkNode: one node per
// fact landmark, a possible-achievers action set per node, parent/child
// edges typed by EdgeType, and "is this landmark true in the given state".
type FactLandmarkGraph interface {
	NumFactLandmarks() int
	PossibleAchievers(factLandmarkID int) map[int]struct{}
	IsTrueInState(factLandmarkID int, state task.State) bool
	HasParents(factLandmarkID int) bool
	Children(factLandmarkID int) []FactLandmarkEdge
}

// FactLandmarkEdge is one ordering edge of the source fact-landmark graph.
type FactLandmarkEdge struct {
	To     int
	Strong bool // true if the edge's EdgeType is at least NATURAL
}

// TranslateFactLandmarks builds a Graph from a conjunctive fact-landmark
// graph: one action-landmark node per fact landmark that is not already
// true in the initial state or has parents (nodes trivially satisfied with
// no incoming ordering are dropped, since they can never be violated), and
// one edge per fact-landmark ordering whose source is not true in the
// initial state and whose endpoints' action sets do not overlap.
//
// Ported from fact_landmark_graph_translator_factory.cc's add_nodes/
// add_edges/compute_landmark_graph.
func TranslateFactLandmarks(factGraph FactLandmarkGraph, t task.AbstractTask) (*Graph, error) {
	initState := t.InitialState()
	n := factGraph.NumFactLandmarks()

	factToNode := make([]int, n)
	for i := range factToNode {
		factToNode[i] = -1
	}

	g := NewGraph()
	for id := 0; id < n; id++ {
		if factGraph.IsTrueInState(id, initState) && !factGraph.HasParents(id) {
			continue
		}
		nodeID, err := g.AddNode(factGraph.PossibleAchievers(id), factGraph.IsTrueInState(id, initState))
		if err != nil {
			return nil, err
		}
		factToNode[id] = nodeID
	}

	for id := 0; id < n; id++ {
		if factGraph.IsTrueInState(id, initState) {
			// Edges starting in initially-true facts can't induce a cycle
			// worth resolving: they're already satisfied.
			continue
		}
		fromID := factToNode[id]
		if fromID == -1 {
			continue
		}
		for _, child := range factGraph.Children(id) {
			toID := factToNode[child.To]
			if toID == -1 {
				continue
			}
			if !g.LandmarksOverlap(fromID, toID) {
				g.AddEdge(fromID, toID, child.Strong)
			}
		}
	}

	return g, nil
}
