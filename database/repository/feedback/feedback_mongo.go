package feedbackRepo

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

// MongoFeedbackRepo implements FeedbackRepository using MongoDB.
type MongoFeedbackRepo struct {
	coll *mongo.Collection
}

// NewMongoFeedbackRepo creates a new instance of FeedbackRepository using MongoDB.
func NewMongoFeedbackRepo() FeedbackRepository {
	coll := database.MongoClient.Database(database.DBName).Collection("feedback")
	repo := &MongoFeedbackRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create feedback indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates the unique (bookingId, authorId) index that makes
// one-feedback-per-participant atomic at the store.
func (r *MongoFeedbackRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "bookingId", Value: 1}, {Key: "authorId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a feedback document, mapping a duplicate-key rejection to
// ErrDuplicateFeedback.
func (r *MongoFeedbackRepo) Create(feedback *models.Feedback) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	feedback.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, feedback)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateFeedback
		}
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

// GetByBooking retrieves all feedback left on a booking.
func (r *MongoFeedbackRepo) GetByBooking(bookingID string) ([]models.Feedback, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"bookingId": bookingID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feedback for booking %s: %w", bookingID, err)
	}
	defer cursor.Close(ctx)

	var items []models.Feedback
	for cursor.Next(ctx) {
		var f models.Feedback
		if err := cursor.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to decode feedback: %w", err)
		}
		items = append(items, f)
	}
	return items, nil
}

// ExistsForAuthor reports whether the author already left feedback on the
// booking.
func (r *MongoFeedbackRepo) ExistsForAuthor(bookingID, authorID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"bookingId": bookingID, "authorId": authorID})
	if err != nil {
		return false, fmt.Errorf("failed to check feedback existence: %w", err)
	}
	return count > 0, nil
}
