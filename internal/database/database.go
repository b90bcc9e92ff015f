package database

import (
	"context"
	"fmt"
	"time"

	"github.com/mindhaven/core/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	collUsers    = "users"
	collDiaries  = "diaries"
	collJournals = "journals"
	collMoods    = "moods"

	connectTimeout = 10 * time.Second
)

// Database bundles the Mongo client and the typed collection repositories.
// Consistency across concurrent requests is delegated to MongoDB document
// semantics; there are no transactions and no optimistic-concurrency checks.
type Database struct {
	client *mongo.Client
	db     *mongo.Database

	Users    *UserRepo
	Diaries  *DiaryRepo
	Journals *JournalRepo
	Moods    *MoodRepo
}

// Connect opens a MongoDB connection and verifies it with a ping.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	db := client.Database(cfg.Name)
	return &Database{
		client:   client,
		db:       db,
		Users:    &UserRepo{coll: db.Collection(collUsers)},
		Diaries:  &DiaryRepo{coll: db.Collection(collDiaries)},
		Journals: &JournalRepo{coll: db.Collection(collJournals)},
		Moods:    &MoodRepo{coll: db.Collection(collMoods)},
	}, nil
}

// Close disconnects the underlying client.
func (d *Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// EnsureIndexes creates the unique email index and the per-owner sort indexes.
func (d *Database) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	specs := []struct {
		coll   string
		models []mongo.IndexModel
	}{
		{collUsers, []mongo.IndexModel{
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		}},
		{collDiaries, []mongo.IndexModel{
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		}},
		{collJournals, []mongo.IndexModel{
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		}},
		{collMoods, []mongo.IndexModel{
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}}},
		}},
	}

	for _, spec := range specs {
		if _, err := d.db.Collection(spec.coll).Indexes().CreateMany(ctx, spec.models); err != nil {
			return fmt.Errorf("create indexes for %s: %w", spec.coll, err)
		}
	}
	return nil
}

// IsDuplicateKey reports whether err is a unique-index violation.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
