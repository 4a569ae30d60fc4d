package landmark

import "testing"

func buildSampleGraph(t *testing.T) *Graph {
	t.Helper()
	g := NewGraph()
	a, err := g.AddNode(map[int]struct{}{0: {}}, true)
	if err != nil {
		t.Fatal(err)
	}
	b, err := g.AddNode(map[int]struct{}{1: {}, 2: {}}, false)
	if err != nil {
		t.Fatal(err)
	}
	g.AddEdge(a, b, true)
	return g
}

func TestSerializeRoundTripsGraphShape(t *testing.T) {
	g := buildSampleGraph(t)

	data, err := g.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	got, err := DeserializeGraph(data)
	if err != nil {
		t.Fatalf("DeserializeGraph: %v", err)
	}

	if got.NumLandmarks() != g.NumLandmarks() {
		t.Fatalf("NumLandmarks = %d, want %d", got.NumLandmarks(), g.NumLandmarks())
	}
	for id := 0; id < g.NumLandmarks(); id++ {
		if len(got.Actions(id)) != len(g.Actions(id)) {
			t.Errorf("landmark %d: Actions length = %d, want %d", id, len(got.Actions(id)), len(g.Actions(id)))
		}
		if got.IsTrueInInitial(id) != g.IsTrueInInitial(id) {
			t.Errorf("landmark %d: IsTrueInInitial = %v, want %v", id, got.IsTrueInInitial(id), g.IsTrueInInitial(id))
		}
	}

	deps := got.Dependencies(1)
	if len(deps) != 1 || deps[0].From != 0 || deps[0].Kind != Strong {
		t.Errorf("Dependencies(1) = %+v, want one strong edge from 0", deps)
	}
}

func TestSerializeRoundTripsDeadEnd(t *testing.T) {
	g := NewGraph()
	g.MarkDeadEnd()

	data, err := g.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	got, err := DeserializeGraph(data)
	if err != nil {
		t.Fatalf("DeserializeGraph: %v", err)
	}
	if !got.IsDeadEnd() {
		t.Error("expected deserialized graph to remain a dead end")
	}
}
