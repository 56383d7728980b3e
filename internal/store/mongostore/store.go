// Package mongostore implements the store interfaces on top of the MongoDB
// driver. Collection names match the original deployment: users, classes,
// select, payments.
package mongostore

import (
	"go.mongodb.org/mongo-driver/mongo"
)

type Stores struct {
	Users      *UserStore
	Courses    *CourseStore
	Selections *SelectionStore
	Payments   *PaymentStore
}

func New(client *mongo.Client, dbName string) *Stores {
	db := client.Database(dbName)
	users := db.Collection("users")
	courses := db.Collection("classes")
	selections := db.Collection("select")
	payments := db.Collection("payments")

	return &Stores{
		Users:      &UserStore{collection: users},
		Courses:    &CourseStore{collection: courses},
		Selections: &SelectionStore{collection: selections},
		Payments: &PaymentStore{
			client:     client,
			payments:   payments,
			selections: selections,
			courses:    courses,
		},
	}
}
