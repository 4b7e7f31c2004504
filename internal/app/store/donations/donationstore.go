// internal/app/store/donations/donationstore.go
package donationstore

import (
	"context"
	"time"

	"github.com/google/uuid"
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
	return &Store{c: db.Collection("donations")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Donation, error) {
	var d models.Donation
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		return models.Donation{}, err
	}
	return d, nil
}

// Insert stores one interactively submitted donation. Status defaults
// to pending; an admin approves it later.
func (s *Store) Insert(ctx context.Context, d models.Donation) (models.Donation, error) {
	now := time.Now().UTC()
	d.ID = primitive.NewObjectID()
	if d.Status == "" {
		d.Status = models.DonationPending
	}
	d.CreatedAt = now
	d.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, d); err != nil {
		return models.Donation{}, err
	}
	return d, nil
}

// InsertMany stores a bulk import. Status defaults to approved (bulk
// rows come from already-settled ledgers) and every row is stamped
// with one batch ID so an import can be audited or backed out.
func (s *Store) InsertMany(ctx context.Context, ds []models.Donation) (string, int, error) {
	if len(ds) == 0 {
		return "", 0, nil
	}
	batchID := uuid.New().String()
	now := time.Now().UTC()

	docs := make([]interface{}, 0, len(ds))
	for _, d := range ds {
		d.ID = primitive.NewObjectID()
		if d.Status == "" {
			d.Status = models.DonationApproved
		}
		d.BatchID = batchID
		d.CreatedAt = now
		d.UpdatedAt = now
		docs = append(docs, d)
	}

	res, err := s.c.InsertMany(ctx, docs)
	if err != nil {
		return "", 0, err
	}
	return batchID, len(res.InsertedIDs), nil
}

// Approve transitions a donation to approved. The transition is
// one-way and idempotent: approving an approved donation is a no-op.
func (s *Store) Approve(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"status":     models.DonationApproved,
		"updated_at": time.Now().UTC(),
	}})
	return err
}

// UpdateParams holds the correctable fields of a donation. Nil fields
// are left untouched.
type UpdateParams struct {
	Amount    any
	Month     *string
	Status    *string
	MemberRef *string
	GroupRef  *string
	Note      *string
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p UpdateParams) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if p.Amount != nil {
		set["amount"] = p.Amount
	}
	if p.Month != nil {
		set["month"] = *p.Month
	}
	if p.Status != nil {
		set["status"] = *p.Status
	}
	if p.MemberRef != nil {
		set["member_id"] = *p.MemberRef
	}
	if p.GroupRef != nil {
		set["group_id"] = *p.GroupRef
	}
	if p.Note != nil {
		set["note"] = *p.Note
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Delete removes a donation by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// All returns the full donation collection, newest first. Reports take
// their snapshot through this; status filtering happens in the report
// package, not here.
func (s *Store) All(ctx context.Context) ([]models.Donation, error) {
	return s.find(ctx, bson.M{})
}

// ByMemberRefs returns donations recorded under any of the given
// identifier variants, checking both the member_id and
// member_display_id slots. An empty variant list yields no documents.
func (s *Store) ByMemberRefs(ctx context.Context, refs []string) ([]models.Donation, error) {
	if len(refs) == 0 {
		return nil, nil
	}
	filter := bson.M{"$or": bson.A{
		bson.M{"member_id": bson.M{"$in": refs}},
		bson.M{"member_display_id": bson.M{"$in": refs}},
	}}
	return s.find(ctx, filter)
}

// ByMonth returns donations recorded under the exact month label.
func (s *Store) ByMonth(ctx context.Context, label string) ([]models.Donation, error) {
	return s.find(ctx, bson.M{"month": label})
}

// ByBatch returns the donations created by one bulk import.
func (s *Store) ByBatch(ctx context.Context, batchID string) ([]models.Donation, error) {
	return s.find(ctx, bson.M{"batch_id": batchID})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Donation, error) {
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Donation
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
