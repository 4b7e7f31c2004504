// internal/domain/models/member.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member is a person who may donate.
//
// NOTE:
//   - UniqueID (M-######) is the stable internal identifier; a member
//     is uniquely identified by it.
//   - DisplayID (G<generation>-######) is the human-facing form. It is
//     derived and regenerable; donations recorded against an old
//     display ID still resolve through the report package's match set.
//   - GroupRef carries the same ID-or-name ambiguity as
//     Donation.GroupRef.
type Member struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UniqueID   string             `bson:"unique_id" json:"unique_id"`
	DisplayID  string             `bson:"display_id" json:"display_id"`
	Name       string             `bson:"name" json:"name"`
	NameCI     string             `bson:"name_ci" json:"name_ci"` // lowercase, diacritics-stripped
	GroupRef   string             `bson:"group_id" json:"group_id"`
	Generation int                `bson:"generation" json:"generation"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
