package profileRepo

import (
	"fmt"
	"time"

	"scarlet/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new profile document.
func (r *MongoProfileRepo) Create(profile *models.Profile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// UpdateSetDocument patches a profile document with the specified fields.
func (r *MongoProfileRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	update := bson.M{"$set": updateDoc}

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update profile with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("profile with id %s not found", id)
	}
	return nil
}

// SoftDelete flags a profile deleted. The document stays in place so the flag
// can be honoured by every read path.
func (r *MongoProfileRepo) SoftDelete(id string) error {
	return r.UpdateSetDocument(id, bson.M{"isDeleted": true})
}
