package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matchfit/matchfit-api/internal/core/domain"
	"github.com/matchfit/matchfit-api/internal/core/ports"
)

const activityCollection = "rsvp_activity"

// ActivityRepository implements ports.ActivityRepository using MongoDB.
type ActivityRepository struct {
	coll *mongo.Collection
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(db *mongo.Database) ports.ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

func (r *ActivityRepository) Insert(ctx context.Context, entry *domain.RSVPActivity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"invitation_id": entry.InvitationID,
		"guest_name":    entry.GuestName,
		"status":        string(entry.Status),
		"timestamp":     entry.Timestamp.UTC(),
		"recorded_at":   time.Now().UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) ListByInvitation(ctx context.Context, invitationID string) ([]*domain.RSVPActivity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"invitation_id": invitationID},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer cur.Close(ctx)

	var entries []*domain.RSVPActivity
	for cur.Next(ctx) {
		var doc struct {
			InvitationID string    `bson:"invitation_id"`
			GuestName    string    `bson:"guest_name"`
			Status       string    `bson:"status"`
			Timestamp    time.Time `bson:"timestamp"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		entries = append(entries, &domain.RSVPActivity{
			InvitationID: doc.InvitationID,
			GuestName:    doc.GuestName,
			Status:       domain.RSVPStatus(doc.Status),
			Timestamp:    doc.Timestamp,
		})
	}
	return entries, cur.Err()
}
