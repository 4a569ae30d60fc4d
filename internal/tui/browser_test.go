package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dalmcut/dalmcut/pkg/landmark"
)

func twoLandmarkGraph(t *testing.T) *landmark.Graph {
	t.Helper()
	g := landmark.NewGraph()
	if _, err := g.AddNode(map[int]struct{}{0: {}}, true); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddNode(map[int]struct{}{1: {}}, false); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestBrowserModelNavigatesWithArrowKeys(t *testing.T) {
	m := NewBrowserModel(twoLandmarkGraph(t))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(BrowserModel)
	if m.Cursor != 1 {
		t.Fatalf("Cursor = %d, want 1", m.Cursor)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(BrowserModel)
	if m.Cursor != 0 {
		t.Fatalf("Cursor = %d, want 0", m.Cursor)
	}
}

func TestBrowserModelEnterSelectsLandmark(t *testing.T) {
	m := NewBrowserModel(twoLandmarkGraph(t))
	m.Cursor = 1

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(BrowserModel)
	if m.Selected == nil || m.Selected.LandmarkID != 1 {
		t.Fatalf("Selected = %+v, want LandmarkID 1", m.Selected)
	}
	if cmd == nil {
		t.Fatal("expected tea.Quit command after selection")
	}
}

func TestBrowserModelViewRendersEmptyGraph(t *testing.T) {
	m := NewBrowserModel(landmark.NewGraph())
	view := m.View()
	if !strings.Contains(view, "no landmarks") {
		t.Errorf("expected an empty-graph message, got:\n%s", view)
	}
}

func TestBrowserModelViewRendersDeadEnd(t *testing.T) {
	g := landmark.NewGraph()
	g.MarkDeadEnd()
	m := NewBrowserModel(g)
	view := m.View()
	if !strings.Contains(view, "dead end") {
		t.Errorf("expected a dead-end message, got:\n%s", view)
	}
}
