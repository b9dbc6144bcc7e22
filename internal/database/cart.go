package repository

import (
	"PackShop/entity"
	"context"
)

func (m *MongoDB) ListCartItems(ctx context.Context) ([]entity.Document, error) {
	return m.listAll(ctx, cartDatabase, cartCollection)
}

func (m *MongoDB) GetCartItemByID(ctx context.Context, id string) (entity.Document, error) {
	return m.getByID(ctx, cartDatabase, cartCollection, id)
}

func (m *MongoDB) InsertCartItem(ctx context.Context, doc entity.Document) (*entity.InsertResult, error) {
	return m.insertOne(ctx, cartDatabase, cartCollection, doc)
}

func (m *MongoDB) DeleteCartItemByID(ctx context.Context, id string) (int64, error) {
	return m.deleteByID(ctx, cartDatabase, cartCollection, id)
}
