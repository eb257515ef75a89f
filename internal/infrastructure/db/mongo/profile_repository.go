package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fuelquote/fuel-quote-api/internal/core/domain"
)

type ProfileRepository struct {
	col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{col: db.Collection(collectionProfiles)}
}

// profileDoc shares its _id with the owning account document, which is what
// makes the account/profile relation 1:1 by identity.
type profileDoc struct {
	ID       primitive.ObjectID `bson:"_id"`
	FullName string             `bson:"full_name"`
	Address1 string             `bson:"address1"`
	Address2 string             `bson:"address2"`
	City     string             `bson:"city"`
	State    string             `bson:"state"`
	Zipcode  string             `bson:"zipcode"`
}

func (r *ProfileRepository) Get(ctx context.Context, accountID string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}

	var doc profileDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}

	return &domain.Profile{
		AccountID: doc.ID.Hex(),
		FullName:  doc.FullName,
		Address1:  doc.Address1,
		Address2:  doc.Address2,
		City:      doc.City,
		State:     doc.State,
		Zipcode:   doc.Zipcode,
	}, nil
}

// Update replaces the whole profile document. No upsert: the row is created
// at registration time, so a missing match means the account does not exist.
func (r *ProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(profile.AccountID)
	if err != nil {
		return domain.ErrProfileNotFound
	}

	doc := profileDoc{
		ID:       id,
		FullName: profile.FullName,
		Address1: profile.Address1,
		Address2: profile.Address2,
		City:     profile.City,
		State:    profile.State,
		Zipcode:  profile.Zipcode,
	}

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
