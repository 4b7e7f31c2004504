// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureGroups(ctx, db); err != nil {
		problems = append(problems, "groups: "+err.Error())
	}
	if err := ensureMembers(ctx, db); err != nil {
		problems = append(problems, "members: "+err.Error())
	}
	if err := ensureDonations(ctx, db); err != nil {
		problems = append(problems, "donations: "+err.Error())
	}
	if err := ensureRegistrations(ctx, db); err != nil {
		problems = append(problems, "registrations: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// Mongo/DocDB sometimes returns IndexOptionsConflict when an index with
// the same keys already exists under a different name.
func isOptionsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict")
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	for _, m := range models {
		name := ""
		if m.Options != nil && m.Options.Name != nil {
			name = *m.Options.Name
		}
		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			// Same keys under another name is fine; everything else is not.
			if isOptionsConflictErr(err) {
				continue
			}
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), name, err))
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func ensureGroups(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("groups")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Uniqueness: no duplicate group names (case-folded via name_ci).
		{
			Keys:    bson.D{{Key: "name_ci", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_group_nameci"),
		},
	})
}

func ensureMembers(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("members")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Both identifier formats resolve members, so both are unique.
		{
			Keys:    bson.D{{Key: "unique_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_member_unique_id"),
		},
		{
			Keys:    bson.D{{Key: "display_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_member_display_id"),
		},

		// Group rosters.
		{
			Keys:    bson.D{{Key: "group_id", Value: 1}},
			Options: options.Index().SetName("idx_members_group"),
		},

		// List pages: folded name + stable tiebreak.
		{
			Keys: bson.D{
				{Key: "name_ci", Value: 1},
				{Key: "_id", Value: 1},
			},
			Options: options.Index().SetName("idx_members_nameci__id"),
		},
	})
}

func ensureDonations(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("donations")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Reports filter on status first.
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("idx_donations_status"),
		},

		// Month drill-down.
		{
			Keys:    bson.D{{Key: "month", Value: 1}},
			Options: options.Index().SetName("idx_donations_month"),
		},

		// The bot and the trend report look donations up by either
		// member reference slot.
		{
			Keys:    bson.D{{Key: "member_id", Value: 1}},
			Options: options.Index().SetName("idx_donations_member"),
		},
		{
			Keys:    bson.D{{Key: "member_display_id", Value: 1}},
			Options: options.Index().SetName("idx_donations_member_display"),
		},

		// Bulk imports are found and corrected by batch.
		{
			Keys:    bson.D{{Key: "batch_id", Value: 1}},
			Options: options.Index().SetName("idx_donations_batch"),
		},
	})
}

func ensureRegistrations(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("registrations")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "group_id", Value: 1}},
			Options: options.Index().SetName("idx_registrations_group"),
		},
		{
			Keys:    bson.D{{Key: "payment_status", Value: 1}},
			Options: options.Index().SetName("idx_registrations_payment"),
		},
	})
}
