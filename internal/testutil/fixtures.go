package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateGroup inserts a group with the given name and returns it.
func (f *Fixtures) CreateGroup(ctx context.Context, name string) models.Group {
	f.t.Helper()

	now := time.Now().UTC()
	g := models.Group{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("groups").InsertOne(ctx, g); err != nil {
		f.t.Fatalf("fixture group insert: %v", err)
	}
	return g
}

// CreateMember inserts a member with explicit IDs and returns it.
func (f *Fixtures) CreateMember(ctx context.Context, name, uniqueID, displayID, groupRef string) models.Member {
	f.t.Helper()

	now := time.Now().UTC()
	m := models.Member{
		ID:         primitive.NewObjectID(),
		UniqueID:   uniqueID,
		DisplayID:  displayID,
		Name:       name,
		NameCI:     text.Fold(name),
		GroupRef:   groupRef,
		Generation: 1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := f.db.Collection("members").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("fixture member insert: %v", err)
	}
	return m
}

// CreateDonation inserts a donation and returns it.
func (f *Fixtures) CreateDonation(ctx context.Context, memberRef, groupRef string, amount any, month, status string) models.Donation {
	f.t.Helper()

	now := time.Now().UTC()
	d := models.Donation{
		ID:        primitive.NewObjectID(),
		MemberRef: memberRef,
		GroupRef:  groupRef,
		Amount:    amount,
		Month:     month,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("donations").InsertOne(ctx, d); err != nil {
		f.t.Fatalf("fixture donation insert: %v", err)
	}
	return d
}

// CreateRegistration inserts a registration and returns it.
func (f *Fixtures) CreateRegistration(ctx context.Context, name, groupRef, paymentStatus string, amount int64) models.Registration {
	f.t.Helper()

	now := time.Now().UTC()
	reg := models.Registration{
		ID:               primitive.NewObjectID(),
		Name:             name,
		NameCI:           text.Fold(name),
		GroupRef:         groupRef,
		PaymentStatus:    paymentStatus,
		ContributeAmount: amount,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if _, err := f.db.Collection("registrations").InsertOne(ctx, reg); err != nil {
		f.t.Fatalf("fixture registration insert: %v", err)
	}
	return reg
}
