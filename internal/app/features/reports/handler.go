// internal/app/features/reports/handler.go
package reports

import (
	"context"
	"time"

	donationstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/donations"
	groupstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/groups"
	memberstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/members"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the reports feature.
// StartYear and StartMonth anchor the gap-filled period timeline;
// Now is swappable so tests can pin the clock.
type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	StartYear  int
	StartMonth time.Month
	Now        func() time.Time
}

func NewHandler(db *mongo.Database, logger *zap.Logger, startYear int, startMonth time.Month) *Handler {
	return &Handler{
		DB:         db,
		Log:        logger,
		StartYear:  startYear,
		StartMonth: startMonth,
		Now:        time.Now,
	}
}

// snapshot is everything the reporting engine needs, loaded in one
// pass so all sections of a response describe the same data.
type snapshot struct {
	Groups    []models.Group
	Members   []models.Member
	Donations []models.Donation
}

func (h *Handler) loadSnapshot(ctx context.Context) (snapshot, error) {
	groups, err := groupstore.New(h.DB).All(ctx)
	if err != nil {
		return snapshot{}, err
	}
	members, err := memberstore.New(h.DB).All(ctx)
	if err != nil {
		return snapshot{}, err
	}
	donations, err := donationstore.New(h.DB).All(ctx)
	if err != nil {
		return snapshot{}, err
	}
	return snapshot{Groups: groups, Members: members, Donations: donations}, nil
}
