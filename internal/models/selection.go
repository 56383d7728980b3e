package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Selection is a pending enrollment intent. It snapshots the course display
// fields at add-to-cart time and is consumed exactly once when the matching
// payment commits (or when the user removes it directly).
type Selection struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email          string             `json:"email" bson:"email"`
	ClassID        string             `json:"classId" bson:"classId"`
	ClassName      string             `json:"className" bson:"className"`
	ClassImage     string             `json:"classImage" bson:"classImage"`
	InstructorName string             `json:"instructorName" bson:"instructorName"`
	Price          float64            `json:"price" bson:"price"`
	CreatedAt      time.Time          `json:"created_at,omitempty" bson:"created_at,omitempty"`
}
