// Package tui implements an interactive landmark-graph browser, adapted
// from the teacher's internal/cli/tui.go RepoListModel: the same
// cursor-driven bubbletea Model/Update/View shape and lipgloss table
// rendering, walking landmark nodes and their orderings instead of GitHub
// repositories and their manifests.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dalmcut/dalmcut/pkg/landmark"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorWhite = lipgloss.Color("255")
	colorDim   = lipgloss.Color("240")
	colorGray  = lipgloss.Color("245")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	dimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	normalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
)

// Selection holds the result of browsing: the landmark id the user picked,
// if any.
type Selection struct {
	LandmarkID int
}

// BrowserModel is the bubbletea model for interactively exploring a DALM
// graph's landmarks.
type BrowserModel struct {
	Graph    *landmark.Graph
	Cursor   int
	Selected *Selection
	Height   int
	Offset   int
}

// NewBrowserModel creates a browser over g's landmarks.
func NewBrowserModel(g *landmark.Graph) BrowserModel {
	return BrowserModel{Graph: g, Height: 15}
}

func (m BrowserModel) Init() tea.Cmd { return nil }

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		n := m.Graph.NumLandmarks()
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < n-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if n > 0 {
				m.Selected = &Selection{LandmarkID: m.Cursor}
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m BrowserModel) View() string {
	var b strings.Builder

	n := m.Graph.NumLandmarks()
	b.WriteString(titleStyle.Render("Disjunctive Action Landmarks"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	if n == 0 {
		b.WriteString(dimStyle.Render(m.emptyMessage()))
		return b.String()
	}

	end := m.Offset + m.Height
	if end > n {
		end = n
	}

	rows := [][]string{}
	for id := m.Offset; id < end; id++ {
		cursor := "  "
		if id == m.Cursor {
			cursor = "▸ "
		}
		past := ""
		if m.Graph.IsTrueInInitial(id) {
			past = "✓"
		}
		deps := len(m.Graph.Dependencies(id))
		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("lm%d", id),
			fmt.Sprintf("%d", len(m.Graph.Actions(id))),
			past,
			fmt.Sprintf("%d", deps),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Landmark", "Actions", "Past", "Orderings").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			actualIdx := m.Offset + row
			if actualIdx == m.Cursor {
				return selectedStyle
			}
			return normalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, n)))
	if m.Graph.IsDeadEnd() {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("167")).Render("  query state is a relaxed dead end"))
	}

	return b.String()
}

func (m BrowserModel) emptyMessage() string {
	if m.Graph.IsDeadEnd() {
		return "query state is a relaxed dead end, no landmarks to show"
	}
	return "no landmarks in this graph"
}
