// internal/app/store/registrations/registrationstore.go
package registrationstore

import (
	"context"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("registrations")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Registration, error) {
	var reg models.Registration
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&reg); err != nil {
		return models.Registration{}, err
	}
	return reg, nil
}

func (s *Store) Create(ctx context.Context, reg models.Registration) (models.Registration, error) {
	now := time.Now().UTC()
	reg.ID = primitive.NewObjectID()
	reg.NameCI = text.Fold(reg.Name)
	if reg.PaymentStatus == "" {
		reg.PaymentStatus = models.PaymentPending
	}
	reg.CreatedAt = now
	reg.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, reg); err != nil {
		return models.Registration{}, err
	}
	return reg, nil
}

func (s *Store) SetPaymentStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"payment_status": status,
		"updated_at":     time.Now().UTC(),
	}})
	return err
}

// CheckIn marks the registration as arrived. Idempotent: a second scan
// keeps the original check-in time.
func (s *Store) CheckIn(ctx context.Context, id primitive.ObjectID) error {
	now := time.Now().UTC()
	_, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "checked_in": bson.M{"$ne": true}},
		bson.M{"$set": bson.M{
			"checked_in":    true,
			"checked_in_at": now,
			"updated_at":    now,
		}})
	return err
}

// Delete removes a registration by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// All returns every registration, sorted by folded name.
func (s *Store) All(ctx context.Context) ([]models.Registration, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Registration
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
