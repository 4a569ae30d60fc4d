// Package pkg provides the core libraries for disjunctive action landmark
// computation via abstraction cuts.
//
// # Overview
//
// dalmcut takes a STRIPS planning task, builds one or more abstractions of
// it, and cuts each abstraction's goal-distance layering into disjunctive
// action landmarks: sets of operators at least one of which must be applied
// on every plan from a given state. The pkg directory is organized around
// the stages of that pipeline:
//
//	STRIPS task (pkg/task)
//	         ↓
//	Abstraction construction (pkg/abstraction, pkg/projection, pkg/lmcut)
//	         ↓
//	Cut-to-landmark translation (pkg/cutdriver, pkg/landmark)
//	         ↓
//	Per-state status tracking (pkg/status)
//
// # Quick Start
//
// Load a task, build a factory from configuration, and compute the
// disjunctive action landmark graph for the initial state:
//
//	import (
//	    "github.com/dalmcut/dalmcut/pkg/config"
//	    "github.com/dalmcut/dalmcut/pkg/factory"
//	    "github.com/dalmcut/dalmcut/pkg/task"
//	)
//
//	t, _ := task.Load("task.toml")
//	cfg, _ := config.Load("config.toml")
//	f, _ := factory.NewAbstractionCutFactory(cfg, t)
//	g, _ := f.ComputeLandmarkGraph(t.InitialState())
//
// # Main Packages
//
// ## Task Representation
//
// [task] - Finite-domain STRIPS tasks: variables, operators, initial state,
// and goal. Loaded from TOML and validated against the supported task shape.
//
// ## Abstractions
//
// [abstraction] - The transition system (CSR adjacency with zero-cost edges
// first) and the perfect-hash abstraction function that every abstraction,
// projection or justification graph, is built from.
//
// [projection] - Pattern database abstractions: projecting a task onto a
// subset of its variables.
//
// [pattern] - Pattern collection generation, including systematic
// recursive-backtracking enumeration of variable subsets up to a size
// budget.
//
// [lmcut] - Justification-graph abstractions in the style of the lm-cut
// heuristic: an engine that iteratively extracts a disjunctive action
// landmark from the current justification graph and refines the cost
// function.
//
// ## Landmark Extraction
//
// [cutdriver] - Backward and forward sweeps over an abstraction's goal
// distance layering that turn a cut into a disjunctive action landmark
// (the set of operators crossing from one side of the cut to the other).
//
// [landmark] - The disjunctive action landmark graph itself: landmarks,
// strong/weak ordering edges between them, and the translation of a
// fact-landmark graph into action landmarks.
// Also the query-result bundle ([landmark.QueryResult]) used by the
// persistence and HTTP layers.
//
// [factory] - Ties the pieces together: builds the configured set of
// abstractions (projection or justification-graph, depending on
// configuration) and resolves a concrete state into its landmark graph.
//
// ## Per-State Tracking
//
// [status] - Bitset-backed tracking of which landmarks in a graph are
// already past, future, or both for a given search state, with
// incremental progression as operators are applied.
//
// ## Ambient Infrastructure
//
// [config] - TOML configuration for pattern selection, landmark
// construction mode, caching, and persistence.
//
// [cache] - Cache and Keyer abstractions with in-memory and Redis-backed
// implementations, used to avoid recomputing landmark graphs for
// previously-seen (task, config, state) triples.
//
// [store] - Durable persistence of landmark query summaries via MongoDB.
//
// [render] - Graphviz-based rendering of landmark graphs to DOT and SVG.
//
// [httpapi] - An HTTP surface (chi-routed) for querying landmark graphs.
//
// [observability] - Hook registries for instrumenting abstraction
// construction, lm-cut iteration, landmark graph computation, and cache
// access.
//
// [errors] - Structured error codes shared across all of the above.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                     # All tests
//	go test ./pkg/lmcut/...               # Specific package
package pkg
