package repository

import (
	"PackShop/entity"
	"context"
	"errors"
	"fmt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid document id %q: %w", id, err)
	}
	return oid, nil
}

func (m *MongoDB) listAll(ctx context.Context, database, name string) ([]entity.Document, error) {
	cursor, err := m.collection(database, name).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongodb find error: %w", err)
	}

	docs := make([]entity.Document, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongodb cursor error: %w", err)
	}
	return docs, nil
}

// getByID returns nil without an error when no document matches.
func (m *MongoDB) getByID(ctx context.Context, database, name, id string) (entity.Document, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var doc entity.Document
	err = m.collection(database, name).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("mongodb find error: %w", err)
	}
	return doc, nil
}

func (m *MongoDB) insertOne(ctx context.Context, database, name string, doc entity.Document) (*entity.InsertResult, error) {
	result, err := m.collection(database, name).InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("mongodb insert error: %w", err)
	}
	return &entity.InsertResult{
		Acknowledged: true,
		InsertedID:   result.InsertedID,
	}, nil
}

// deleteByID reports the number of removed documents; zero means the
// identifier matched nothing, which is not an error here.
func (m *MongoDB) deleteByID(ctx context.Context, database, name, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	result, err := m.collection(database, name).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("mongodb delete error: %w", err)
	}
	return result.DeletedCount, nil
}
