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

type UserStore struct {
	collection *mongo.Collection
}

func (s *UserStore) FindAll(ctx context.Context) ([]models.User, error) {
	return withRetry(ctx, func(ctx context.Context) ([]models.User, error) {
		return s.find(ctx, bson.M{})
	})
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return withRetry(ctx, func(ctx context.Context) (*models.User, error) {
		var user models.User
		err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		if err != nil {
			return nil, err
		}
		return &user, nil
	})
}

func (s *UserStore) FindByRole(ctx context.Context, role models.UserRole) ([]models.User, error) {
	return withRetry(ctx, func(ctx context.Context) ([]models.User, error) {
		return s.find(ctx, bson.M{"role": role})
	})
}

func (s *UserStore) Insert(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, user); err != nil {
		return primitive.NilObjectID, err
	}
	return user.ID, nil
}

func (s *UserStore) UpdateRole(ctx context.Context, id primitive.ObjectID, role models.UserRole) (int64, error) {
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return 0, err
	}
	if result.MatchedCount == 0 {
		return 0, store.ErrNotFound
	}
	return result.ModifiedCount, nil
}

func (s *UserStore) find(ctx context.Context, filter bson.M) ([]models.User, error) {
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
