package profileRepo

import (
	"fmt"
	"regexp"
	"time"

	"scarlet/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves a profile by its unique ID.
func (r *MongoProfileRepo) GetByID(id string) (*models.Profile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.Profile
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to fetch profile with id %s: %w", id, err)
	}
	return &profile, nil
}

// GetByEmail retrieves a profile by its email address, or nil when absent.
func (r *MongoProfileRepo) GetByEmail(email string) (*models.Profile, error) {
	return r.findOne(bson.M{"email": email})
}

// GetByFullName retrieves a profile by its display name, or nil when absent.
// Lookup is case-insensitive so duplicate display names differing only in
// case are caught at registration.
func (r *MongoProfileRepo) GetByFullName(fullName string) (*models.Profile, error) {
	return r.findOne(bson.M{"fullName": caseInsensitiveEquals(fullName)})
}

// GetByTokenHash retrieves the profile whose tokenHash matches.
func (r *MongoProfileRepo) GetByTokenHash(tokenHash string) (*models.Profile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.Profile
	if err := r.coll.FindOne(ctx, bson.M{"security.tokenHash": tokenHash}).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to fetch profile by token hash: %w", err)
	}
	return &profile, nil
}

// Search retrieves non-deleted profiles matching the criteria, sorted by
// creation time (newest first).
func (r *MongoProfileRepo) Search(criteria SearchCriteria) ([]models.Profile, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"isDeleted": bson.M{"$ne": true}}
	if criteria.MemberType != "" {
		filter["memberType"] = criteria.MemberType
	}
	if criteria.Region != "" {
		filter["location.region"] = caseInsensitiveEquals(criteria.Region)
	}
	if criteria.County != "" {
		filter["location.county"] = caseInsensitiveEquals(criteria.County)
	}
	if criteria.Town != "" {
		filter["location.town"] = caseInsensitiveEquals(criteria.Town)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.Profile
	for cursor.Next(ctx) {
		var p models.Profile
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (r *MongoProfileRepo) findOne(filter bson.M) (*models.Profile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.Profile
	if err := r.coll.FindOne(ctx, filter).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &profile, nil
}

// caseInsensitiveEquals builds an anchored case-insensitive equality match.
func caseInsensitiveEquals(value string) bson.M {
	return bson.M{"$regex": "^" + regexp.QuoteMeta(value) + "$", "$options": "i"}
}
