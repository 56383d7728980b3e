package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CourseStatus string

const (
	StatusPending  CourseStatus = "pending"
	StatusApproved CourseStatus = "approve"
	StatusDenied   CourseStatus = "denied"
)

// Course seats count remaining capacity and enrolled counts completed
// payments. Both counters are only ever moved by the enrollment commit,
// via an atomic increment.
type Course struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ClassName       string             `json:"className" bson:"className"`
	ClassImage      string             `json:"classImage" bson:"classImage"`
	InstructorName  string             `json:"instructorName" bson:"instructorName"`
	InstructorEmail string             `json:"instructorEmail" bson:"instructorEmail"`
	Status          CourseStatus       `json:"status" bson:"status"`
	Price           float64            `json:"price" bson:"price"`
	Seats           int                `json:"seats" bson:"seats"`
	Enrolled        int                `json:"enrolled" bson:"enrolled"`
	Feedback        string             `json:"feedback,omitempty" bson:"feedback,omitempty"`
	CreatedAt       time.Time          `json:"created_at,omitempty" bson:"created_at,omitempty"`
}
