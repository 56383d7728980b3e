package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is the immutable record of a committed enrollment. SelectItems and
// ClassItems carry the hex ids of the selection that was consumed and the
// course whose counters were adjusted.
type Payment struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email         string             `json:"email" bson:"email"`
	TransactionID string             `json:"transactionId" bson:"transactionId"`
	Price         float64            `json:"price" bson:"price"`
	Date          time.Time          `json:"date" bson:"date"`
	SelectItems   string             `json:"selectItems" bson:"selectItems"`
	ClassItems    string             `json:"classItems" bson:"classItems"`
	ClassName     string             `json:"className" bson:"className"`
	Status        string             `json:"status,omitempty" bson:"status,omitempty"`
}
