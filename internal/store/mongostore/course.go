package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/RitaM5/Learn-Lingo-server/internal/models"
	"github.com/RitaM5/Learn-Lingo-server/internal/store"
)

type CourseStore struct {
	collection *mongo.Collection
}

func (s *CourseStore) FindAll(ctx context.Context) ([]models.Course, error) {
	return withRetry(ctx, func(ctx context.Context) ([]models.Course, error) {
		return s.find(ctx, bson.M{})
	})
}

func (s *CourseStore) FindApproved(ctx context.Context) ([]models.Course, error) {
	return withRetry(ctx, func(ctx context.Context) ([]models.Course, error) {
		return s.find(ctx, bson.M{"status": models.StatusApproved})
	})
}

func (s *CourseStore) FindByInstructor(ctx context.Context, email string) ([]models.Course, error) {
	return withRetry(ctx, func(ctx context.Context) ([]models.Course, error) {
		return s.find(ctx, bson.M{"instructorEmail": email})
	})
}

func (s *CourseStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	return withRetry(ctx, func(ctx context.Context) (*models.Course, error) {
		var course models.Course
		err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		if err != nil {
			return nil, err
		}
		return &course, nil
	})
}

func (s *CourseStore) Insert(ctx context.Context, course models.Course) (primitive.ObjectID, error) {
	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, course); err != nil {
		return primitive.NilObjectID, err
	}
	return course.ID, nil
}

// SetStatus is idempotent: re-applying the current status matches the
// document and modifies nothing.
func (s *CourseStore) SetStatus(ctx context.Context, id primitive.ObjectID, status models.CourseStatus) (int64, error) {
	return s.set(ctx, id, bson.M{"status": status})
}

// SetFeedback replaces feedback unconditionally, last write wins.
func (s *CourseStore) SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (int64, error) {
	return s.set(ctx, id, bson.M{"feedback": feedback})
}

func (s *CourseStore) set(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	if result.MatchedCount == 0 {
		return 0, store.ErrNotFound
	}
	return result.ModifiedCount, nil
}

func (s *CourseStore) find(ctx context.Context, filter bson.M) ([]models.Course, error) {
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	courses := []models.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}
