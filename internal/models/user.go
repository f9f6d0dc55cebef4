package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role is the per-user classification controlling access to admin routes.
// Only two values exist in the data: unset (regular user) and "admin".
type Role string

const (
	RoleUnset Role = ""
	RoleAdmin Role = "admin"
)

func (r Role) IsAdmin() bool { return r == RoleAdmin }

// User is the typed view of a user document. Registration payloads may carry
// extra free-form fields (name, photo, ...); those are stored as-is and only
// the fields below are interpreted by the API.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  Role               `bson:"role,omitempty" json:"role,omitempty"`
}
