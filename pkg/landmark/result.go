package landmark

import "time"

// QueryResult bundles a DALM graph built for one caller query with the
// metadata pkg/store persists and pkg/httpapi reports back: the query that
// produced it, how many abstractions contributed to it, and how long the
// build took. The graph itself is a *Graph rather than its own serialized
// form; pkg/store and pkg/httpapi each decide how to flatten it for their
// wire or storage format.
type QueryResult struct {
	QueryID         string
	TaskHash        string
	ConfigHash      string
	StateHash       uint64
	NumAbstractions int
	BuildDuration   time.Duration
	Graph           *Graph
}

// NewQueryResult bundles a built graph with the query identity and timing
// metadata that produced it.
func NewQueryResult(queryID, taskHash, configHash string, stateHash uint64, numAbstractions int, buildDuration time.Duration, graph *Graph) QueryResult {
	return QueryResult{
		QueryID:         queryID,
		TaskHash:        taskHash,
		ConfigHash:      configHash,
		StateHash:       stateHash,
		NumAbstractions: numAbstractions,
		BuildDuration:   buildDuration,
		Graph:           graph,
	}
}
