// Package store persists landmark.QueryResult documents to MongoDB, the
// durable counterpart to pkg/cache's ephemeral abstraction/graph cache.
//
// No store package was retrieved in the reference pack, but go.mongodb.org/
// mongo-driver is a declared dependency with no other consumer in the
// retrieved snapshot; dalmcut wires it here in the same client-lifecycle
// style as pkg/cache's constructors (a URI in, a *Store out, Close releases
// the connection, every call takes a context.Context).
package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	dalmerrors "github.com/dalmcut/dalmcut/pkg/errors"
	"github.com/dalmcut/dalmcut/pkg/landmark"
)

// Store persists landmark query results to a MongoDB collection.
type Store struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// document is the Mongo-stored projection of a landmark.QueryResult: the
// graph's full node/edge structure is not persisted, only the counts and
// timing a caller needs to audit a past query (the graph itself is rebuilt
// on demand, since it is a pure function of the task + config + state).
type document struct {
	QueryID         string    `bson:"query_id"`
	TaskHash        string    `bson:"task_hash"`
	ConfigHash      string    `bson:"config_hash"`
	StateHash       uint64    `bson:"state_hash"`
	NumAbstractions int       `bson:"num_abstractions"`
	NumLandmarks    int       `bson:"num_landmarks"`
	BuildDurationNs int64     `bson:"build_duration_ns"`
	IsDeadEnd       bool      `bson:"is_dead_end"`
	StoredAt        time.Time `bson:"stored_at"`
}

// Open dials uri and returns a Store backed by the given database/collection.
func Open(ctx context.Context, uri, database, collection string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, dalmerrors.Wrap(dalmerrors.ErrCodeInvariantViolation, err, "store: connecting to %s", uri)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, dalmerrors.Wrap(dalmerrors.ErrCodeInvariantViolation, err, "store: pinging %s", uri)
	}
	return &Store{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

// Close disconnects the underlying Mongo client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Save upserts result keyed by its QueryID.
func (s *Store) Save(ctx context.Context, result landmark.QueryResult) error {
	doc := document{
		QueryID:         result.QueryID,
		TaskHash:        result.TaskHash,
		ConfigHash:      result.ConfigHash,
		StateHash:       result.StateHash,
		NumAbstractions: result.NumAbstractions,
		BuildDurationNs: result.BuildDuration.Nanoseconds(),
		StoredAt:        time.Now(),
	}
	if result.Graph != nil {
		doc.NumLandmarks = result.Graph.NumLandmarks()
		doc.IsDeadEnd = result.Graph.IsDeadEnd()
	}

	_, err := s.collection.UpdateOne(ctx,
		bson.M{"query_id": result.QueryID},
		bson.M{"$set": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return dalmerrors.Wrap(dalmerrors.ErrCodeInvariantViolation, err, "store: saving query %s", result.QueryID)
	}
	return nil
}

// Summary is what FindByQueryID returns: the persisted metadata without the
// rebuilt graph, since the graph is not stored.
type Summary struct {
	QueryID         string
	TaskHash        string
	ConfigHash      string
	StateHash       uint64
	NumAbstractions int
	NumLandmarks    int
	BuildDuration   time.Duration
	IsDeadEnd       bool
	StoredAt        time.Time
}

// FindByQueryID returns the persisted summary for queryID, or (Summary{},
// false, nil) if no document matches.
func (s *Store) FindByQueryID(ctx context.Context, queryID string) (Summary, bool, error) {
	var doc document
	err := s.collection.FindOne(ctx, bson.M{"query_id": queryID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return Summary{}, false, nil
	}
	if err != nil {
		return Summary{}, false, dalmerrors.Wrap(dalmerrors.ErrCodeInvariantViolation, err, "store: finding query %s", queryID)
	}
	return Summary{
		QueryID:         doc.QueryID,
		TaskHash:        doc.TaskHash,
		ConfigHash:      doc.ConfigHash,
		StateHash:       doc.StateHash,
		NumAbstractions: doc.NumAbstractions,
		NumLandmarks:    doc.NumLandmarks,
		BuildDuration:   time.Duration(doc.BuildDurationNs),
		IsDeadEnd:       doc.IsDeadEnd,
		StoredAt:        doc.StoredAt,
	}, true, nil
}
