// internal/app/store/members/memberstore.go
package memberstore

import (
	"context"
	"errors"
	"strings"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/identifier"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/paging"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateUniqueID = errors.New("a member with this unique ID already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("members")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Member, error) {
	var m models.Member
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		return models.Member{}, err
	}
	return m, nil
}

func (s *Store) GetByUniqueID(ctx context.Context, uniqueID string) (models.Member, error) {
	var m models.Member
	if err := s.c.FindOne(ctx, bson.M{"unique_id": uniqueID}).Decode(&m); err != nil {
		return models.Member{}, err
	}
	return m, nil
}

// Create inserts a member, minting the unique and display IDs when the
// caller didn't supply them. Unique-ID collisions (the ID space is six
// random digits) are retried a few times before surfacing.
func (s *Store) Create(ctx context.Context, m models.Member) (models.Member, error) {
	now := time.Now().UTC()
	m.ID = primitive.NewObjectID()
	m.NameCI = text.Fold(m.Name)
	if m.Generation < 1 {
		m.Generation = 1
	}
	if m.DisplayID == "" {
		m.DisplayID = identifier.NewDisplayID(m.Generation)
	}
	m.CreatedAt = now
	m.UpdatedAt = now

	mint := m.UniqueID == ""
	for attempt := 0; ; attempt++ {
		if mint {
			m.UniqueID = identifier.NewUniqueID()
		}
		_, err := s.c.InsertOne(ctx, m)
		if err == nil {
			return m, nil
		}
		if wafflemongo.IsDup(err) {
			if mint && attempt < 3 {
				continue
			}
			return models.Member{}, ErrDuplicateUniqueID
		}
		return models.Member{}, err
	}
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, name, groupRef string, generation int) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if strings.TrimSpace(name) != "" {
		set["name"] = name
		set["name_ci"] = text.Fold(name)
	}
	// Group reference can be cleared (member leaves their group)
	set["group_id"] = groupRef
	if generation >= 1 {
		set["generation"] = generation
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// RegenerateDisplayID mints a new display ID for the member. The
// display ID is a derived presentation form; donations recorded under
// the old one still resolve through the report match set, which also
// tries the unique ID and document ID.
func (s *Store) RegenerateDisplayID(ctx context.Context, id primitive.ObjectID) (models.Member, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Member{}, err
	}
	m.DisplayID = identifier.NewDisplayID(m.Generation)
	m.UpdatedAt = time.Now().UTC()
	_, err = s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"display_id": m.DisplayID,
		"updated_at": m.UpdatedAt,
	}})
	if err != nil {
		return models.Member{}, err
	}
	return m, nil
}

// Delete removes a member by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// All returns every member, sorted by folded name.
func (s *Store) All(ctx context.Context) ([]models.Member, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Member
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Page returns one keyset page of members sorted by folded name.
// before/after are opaque cursors from a previous page's response.
func (s *Store) Page(ctx context.Context, before, after string) ([]models.Member, paging.Result, error) {
	cfg := paging.ConfigureKeyset(before, after)

	filter := bson.M{}
	if window := cfg.KeysetWindow("name_ci"); window != nil {
		filter = window
	}

	find := options.Find()
	cfg.ApplyToFind(find, "name_ci")

	cur, err := s.c.Find(ctx, filter, find)
	if err != nil {
		return nil, paging.Result{}, err
	}
	defer cur.Close(ctx)

	var out []models.Member
	if err := cur.All(ctx, &out); err != nil {
		return nil, paging.Result{}, err
	}

	res := paging.TrimPage(&out, before, after)
	if cfg.Direction == paging.Backward {
		paging.Reverse(out)
	}
	return out, res, nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
