// internal/domain/models/registration.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Registration payment statuses.
const (
	PaymentPaid    = "Paid"
	PaymentPending = "Pending"
	PaymentWaived  = "Waived"
)

// Registration is an event sign-up. It is distinct from a Member: a
// registration may exist for someone who never becomes a tracked donor.
type Registration struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	NameCI           string             `bson:"name_ci" json:"name_ci"`
	GroupRef         string             `bson:"group_id" json:"group_id"`
	PaymentStatus    string             `bson:"payment_status" json:"payment_status"`
	ContributeAmount int64              `bson:"contribute_amount" json:"contribute_amount"`

	// Check-in state set when the attendee's entry card is scanned.
	CheckedIn   bool       `bson:"checked_in" json:"checked_in"`
	CheckedInAt *time.Time `bson:"checked_in_at,omitempty" json:"checked_in_at,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
