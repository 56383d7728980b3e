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

type SelectionStore struct {
	collection *mongo.Collection
}

func (s *SelectionStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Selection, error) {
	return withRetry(ctx, func(ctx context.Context) (*models.Selection, error) {
		var selection models.Selection
		err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&selection)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		if err != nil {
			return nil, err
		}
		return &selection, nil
	})
}

func (s *SelectionStore) FindByEmail(ctx context.Context, email string) ([]models.Selection, error) {
	return withRetry(ctx, func(ctx context.Context) ([]models.Selection, error) {
		cursor, err := s.collection.Find(ctx, bson.M{"email": email})
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)

		selections := []models.Selection{}
		if err := cursor.All(ctx, &selections); err != nil {
			return nil, err
		}
		return selections, nil
	})
}

func (s *SelectionStore) Insert(ctx context.Context, selection models.Selection) (primitive.ObjectID, error) {
	if selection.ID.IsZero() {
		selection.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, selection); err != nil {
		return primitive.NilObjectID, err
	}
	return selection.ID, nil
}

func (s *SelectionStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
