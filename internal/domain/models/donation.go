// internal/domain/models/donation.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation statuses. Comparisons are case-insensitive everywhere; these
// constants are the canonical stored forms.
const (
	DonationPending  = "pending"
	DonationApproved = "approved"
)

// Donation is one financial contribution.
//
// NOTE:
//   - MemberRef may hold a member's unique ID (M-######), display ID
//     (G<gen>-######), or the member document's hex _id, depending on
//     which entry path recorded it. MemberDisplayRef is a second slot
//     some import paths fill instead. Both must be tried when matching.
//   - GroupRef may hold a group's hex _id or the group's literal name.
//     Resolution happens once, in the report package, not here.
//   - Amount is deliberately untyped: manually entered data contains
//     strings, floats, and missing values. The report package coerces
//     junk to zero rather than failing a whole report.
type Donation struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MemberRef        string             `bson:"member_id" json:"member_id"`
	MemberDisplayRef string             `bson:"member_display_id,omitempty" json:"member_display_id,omitempty"`
	GroupRef         string             `bson:"group_id" json:"group_id"`
	Amount           any                `bson:"amount" json:"amount"`
	Month            string             `bson:"month" json:"month"` // "<MonthName> <Year>", e.g. "August 2025"
	Status           string             `bson:"status" json:"status"`
	Note             string             `bson:"note,omitempty" json:"note,omitempty"`

	// BatchID groups donations created by one bulk import.
	BatchID string `bson:"batch_id,omitempty" json:"batch_id,omitempty"`

	// Date is the contribution date when one was recorded; reporting
	// falls back to CreatedAt when Date is absent.
	Date      *time.Time `bson:"date,omitempty" json:"date,omitempty"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}
