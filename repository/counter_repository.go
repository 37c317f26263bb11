package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"qr-attendance/config"
)

// Counter namespaces.
const (
	EmployeeSequence = "userId"
	StaffSequence    = "staffId"
)

// CounterRepository issues strictly increasing, never reused sequence values per namespace.
type CounterRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}

type counterRepository struct {
	collection *mongo.Collection
}

func NewCounterRepository(db *mongo.Database) CounterRepository {
	return &counterRepository{collection: db.Collection(config.CounterCollection)}
}

// Next atomically increments the named counter and returns the new value (first call returns 1).
func (r *counterRepository) Next(ctx context.Context, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": name}, bson.M{"$inc": bson.M{"seq": 1}}, opts).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("increment counter %s: %w", name, err)
	}
	return doc.Seq, nil
}
