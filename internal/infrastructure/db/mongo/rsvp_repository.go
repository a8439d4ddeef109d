package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matchfit/matchfit-api/internal/core/domain"
)

const rsvpsCollection = "rsvps"

type RSVPRepository struct {
	coll *mongo.Collection
}

func NewRSVPRepository(db *mongo.Database) *RSVPRepository {
	return &RSVPRepository{coll: db.Collection(rsvpsCollection)}
}

func (r *RSVPRepository) Insert(ctx context.Context, rsvp *domain.RSVP) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, rsvp); err != nil {
		return fmt.Errorf("insert rsvp: %w", err)
	}
	return nil
}

func (r *RSVPRepository) ListByInvitation(ctx context.Context, invitationID string) ([]*domain.RSVP, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"invitation_id": invitationID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}
	defer cur.Close(ctx)

	var rsvps []*domain.RSVP
	if err := cur.All(ctx, &rsvps); err != nil {
		return nil, fmt.Errorf("decode rsvps: %w", err)
	}
	return rsvps, nil
}

// DeleteByInvitation removes every RSVP of one invitation. Used by the
// invitation cascade delete.
func (r *RSVPRepository) DeleteByInvitation(ctx context.Context, invitationID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"invitation_id": invitationID}); err != nil {
		return fmt.Errorf("delete rsvps: %w", err)
	}
	return nil
}

// EnsureIndexes creates the invitation index on the rsvps collection.
func (r *RSVPRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "invitation_id", Value: 1}},
	})
	return err
}
