package repository

import (
	"PackShop/entity"
	"context"
)

func (m *MongoDB) ListUsers(ctx context.Context) ([]entity.Document, error) {
	return m.listAll(ctx, usersDatabase, usersCollection)
}

func (m *MongoDB) GetUserByID(ctx context.Context, id string) (entity.Document, error) {
	return m.getByID(ctx, usersDatabase, usersCollection, id)
}

func (m *MongoDB) InsertUser(ctx context.Context, doc entity.Document) (*entity.InsertResult, error) {
	return m.insertOne(ctx, usersDatabase, usersCollection, doc)
}

func (m *MongoDB) DeleteUserByID(ctx context.Context, id string) (int64, error) {
	return m.deleteByID(ctx, usersDatabase, usersCollection, id)
}
