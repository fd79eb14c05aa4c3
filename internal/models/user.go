package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Gender values accepted for a user record.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOthers = "others"
)

// UserDB represents a user document in the database
type UserDB struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`         // Document id, assigned by the store
	FirstName string        `json:"firstName" bson:"firstName"`      // Required
	LastName  string        `json:"lastName" bson:"lastName"`        // Required
	Email     string        `json:"email" bson:"email"`              // Unique across the collection
	JobTitle  string        `json:"jobTitle" bson:"jobTitle"`        // Optional
	Gender    string        `json:"gender" bson:"gender"`            // male | female | others
	Password  string        `json:"password" bson:"password"`        // Bcrypt hash, never plaintext
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`      // Set on insert, immutable
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`      // Refreshed on every update
}

// NewUser is the payload for creating a user. Password is plaintext here
// and must be hashed before it reaches the store.
type NewUser struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	JobTitle  string `json:"jobTitle"`
	Gender    string `json:"gender"`
	Password  string `json:"password"`
}

// UserUpdate is a partial update payload. A nil field means the field was
// absent from the request and must stay untouched in the stored document.
type UserUpdate struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	JobTitle  *string `json:"jobTitle,omitempty"`
	Gender    *string `json:"gender,omitempty"`
	Password  *string `json:"password,omitempty"`
}
