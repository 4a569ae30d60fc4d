// Package render converts a disjunctive action landmark graph into Graphviz
// DOT and SVG, adapted from the teacher's pkg/render/nodelink package (same
// ToDOT-then-RenderSVG shape, same goccy/go-graphviz calls) with the node
// and edge model replaced: nodes are landmarks (an action-set id and its
// size) instead of dependency-graph packages, and edges are STRONG (solid)
// or WEAK (dashed) orderings instead of plain import edges.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/dalmcut/dalmcut/pkg/landmark"
)

// Options configures DALM graph rendering.
type Options struct {
	// Detailed includes the action-set size and initially-past marker in
	// node labels. When false, only the landmark id is shown.
	Detailed bool
}

// ToDOT converts a DALM graph to Graphviz DOT format. The resulting DOT
// string can be rendered with RenderSVG.
func ToDOT(g *landmark.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n\n")

	for id := 0; id < g.NumLandmarks(); id++ {
		label := fmtLabel(g, id, opts.Detailed)
		attrs := fmtAttrs(g, id, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeName(id), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for id := 0; id < g.NumLandmarks(); id++ {
		for _, dep := range g.Dependencies(id) {
			style := "style=solid"
			if dep.Kind == landmark.Weak {
				style = "style=dashed"
			}
			fmt.Fprintf(&buf, "  %q -> %q [%s];\n", nodeName(dep.From), nodeName(id), style)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeName(id int) string {
	return fmt.Sprintf("lm%d", id)
}

func fmtLabel(g *landmark.Graph, id int, detailed bool) string {
	name := nodeName(id)
	if !detailed {
		return name
	}
	parts := []string{fmt.Sprintf("actions: %d", len(g.Actions(id)))}
	if g.IsTrueInInitial(id) {
		parts = append(parts, "initially past")
	}
	return name + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(g *landmark.Graph, id int, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if g.IsTrueInInitial(id) {
		attrs = append(attrs, "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
