package store

import (
	"context"
	"testing"
	"time"

	dalmerrors "github.com/dalmcut/dalmcut/pkg/errors"
	"github.com/dalmcut/dalmcut/pkg/landmark"
)

func TestOpenRejectsMalformedURI(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	_, err := Open(ctx, "not-a-mongo-uri", "dalmcut", "queries")
	if err == nil {
		t.Fatal("expected an error for a malformed URI")
	}
	if dalmerrors.GetCode(err) != dalmerrors.ErrCodeInvariantViolation {
		t.Errorf("GetCode(err) = %v, want ErrCodeInvariantViolation", dalmerrors.GetCode(err))
	}
}

func TestDocumentRoundTripsQueryResultFields(t *testing.T) {
	g := landmark.NewGraph()
	if _, err := g.AddNode(map[int]struct{}{0: {}}, false); err != nil {
		t.Fatal(err)
	}

	result := landmark.NewQueryResult("q1", "taskhash", "cfghash", 42, 3, 2*time.Second, g)

	doc := document{
		QueryID:         result.QueryID,
		TaskHash:        result.TaskHash,
		ConfigHash:      result.ConfigHash,
		StateHash:       result.StateHash,
		NumAbstractions: result.NumAbstractions,
		BuildDurationNs: result.BuildDuration.Nanoseconds(),
	}
	if result.Graph != nil {
		doc.NumLandmarks = result.Graph.NumLandmarks()
		doc.IsDeadEnd = result.Graph.IsDeadEnd()
	}

	if doc.QueryID != "q1" || doc.NumLandmarks != 1 || doc.IsDeadEnd {
		t.Errorf("document = %+v, unexpected field values", doc)
	}
	if time.Duration(doc.BuildDurationNs) != 2*time.Second {
		t.Errorf("BuildDurationNs round-trip mismatch: %v", time.Duration(doc.BuildDurationNs))
	}
}
