package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"scarlet/database"
	"scarlet/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo creates a new instance of AvailabilityRepository using MongoDB.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	coll := database.MongoClient.Database(database.DBName).Collection("availability")
	repo := &MongoAvailabilityRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create availability indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "end", Value: 1}}},
		{Keys: bson.D{{Key: "profileId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new availability window.
func (r *MongoAvailabilityRepo) Create(window *models.AvailabilityWindow) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, window)
	if err != nil {
		return fmt.Errorf("failed to create availability window: %w", err)
	}
	return nil
}

// Delete removes a window by its ID.
func (r *MongoAvailabilityRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete availability window %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("availability window %s not found", id)
	}
	return nil
}

// GetByProfile retrieves all windows of a profile, earliest first.
func (r *MongoAvailabilityRepo) GetByProfile(profileID string) ([]models.AvailabilityWindow, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"profileId": profileID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability for profile %s: %w", profileID, err)
	}
	defer cursor.Close(ctx)

	var windows []models.AvailabilityWindow
	for cursor.Next(ctx) {
		var w models.AvailabilityWindow
		if err := cursor.Decode(&w); err != nil {
			return nil, fmt.Errorf("failed to decode availability window: %w", err)
		}
		windows = append(windows, w)
	}
	return windows, nil
}

// AvailableProfileIDs returns the distinct profile IDs holding a window on
// the given date whose end is still in the future.
func (r *MongoAvailabilityRepo) AvailableProfileIDs(date string, now time.Time) ([]string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"date": date,
		"end":  bson.M{"$gt": now},
	}
	values, err := r.coll.Distinct(ctx, "profileId", filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch available profile ids: %w", err)
	}

	ids := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			ids = append(ids, s)
		}
	}
	return ids, nil
}
