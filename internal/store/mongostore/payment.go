package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RitaM5/Learn-Lingo-server/internal/models"
	"github.com/RitaM5/Learn-Lingo-server/internal/store"
)

type PaymentStore struct {
	client     *mongo.Client
	payments   *mongo.Collection
	selections *mongo.Collection
	courses    *mongo.Collection
}

func (s *PaymentStore) FindAll(ctx context.Context) ([]models.Payment, error) {
	return withRetry(ctx, func(ctx context.Context) ([]models.Payment, error) {
		return s.find(ctx, nil)
	})
}

func (s *PaymentStore) FindAllByDateDesc(ctx context.Context) ([]models.Payment, error) {
	return withRetry(ctx, func(ctx context.Context) ([]models.Payment, error) {
		return s.find(ctx, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	})
}

// CommitEnrollment runs the three enrollment steps in a single
// multi-document transaction: the payment insert, the selection delete and
// the course counter update either all commit or all roll back. The counter
// update is an atomic $inc; seats and enrolled are never read-modify-written.
func (s *PaymentStore) CommitEnrollment(ctx context.Context, payment models.Payment) (*store.EnrollmentResult, error) {
	selectionID, err := primitive.ObjectIDFromHex(payment.SelectItems)
	if err != nil {
		return nil, store.ErrSelectionNotFound
	}
	courseID, err := primitive.ObjectIDFromHex(payment.ClassItems)
	if err != nil {
		return nil, store.ErrCourseNotFound
	}
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}

	session, err := s.client.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := s.payments.InsertOne(sc, payment); err != nil {
			return nil, err
		}

		deleted, err := s.selections.DeleteOne(sc, bson.M{"_id": selectionID})
		if err != nil {
			return nil, err
		}
		// DeletedCount 0 means the selection was already consumed; abort
		// so the same selection can never decrement seats twice.
		if deleted.DeletedCount == 0 {
			return nil, store.ErrSelectionNotFound
		}

		updated, err := s.courses.UpdateOne(sc,
			bson.M{"_id": courseID},
			bson.M{"$inc": bson.M{"seats": -1, "enrolled": 1}},
		)
		if err != nil {
			return nil, err
		}
		if updated.MatchedCount == 0 {
			return nil, store.ErrCourseNotFound
		}

		return &store.EnrollmentResult{
			PaymentID:    payment.ID,
			DeletedCount: deleted.DeletedCount,
			Acknowledged: true,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*store.EnrollmentResult), nil
}

func (s *PaymentStore) find(ctx context.Context, opts *options.FindOptions) ([]models.Payment, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = s.payments.Find(ctx, bson.M{}, opts)
	} else {
		cursor, err = s.payments.Find(ctx, bson.M{})
	}
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
