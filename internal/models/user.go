package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleNone       UserRole = ""
	RoleInstructor UserRole = "instructor"
	RoleAdmin      UserRole = "admin"
)

// User is created on first sign-in; the email is the natural key and the
// role is empty until an admin promotes the account.
type User struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Name      string             `json:"name" bson:"name"`
	PhotoURL  string             `json:"photoURL" bson:"photoURL"`
	Role      UserRole           `json:"role,omitempty" bson:"role,omitempty"`
	Password  string             `json:"-" bson:"password,omitempty"`
	CreatedAt time.Time          `json:"created_at,omitempty" bson:"created_at,omitempty"`
}
