package repository

import (
	"PackShop/entity"
	"context"
)

func (m *MongoDB) ListProducts(ctx context.Context) ([]entity.Document, error) {
	return m.listAll(ctx, productsDatabase, productsCollection)
}

func (m *MongoDB) GetProductByID(ctx context.Context, id string) (entity.Document, error) {
	return m.getByID(ctx, productsDatabase, productsCollection, id)
}

func (m *MongoDB) InsertProduct(ctx context.Context, doc entity.Document) (*entity.InsertResult, error) {
	return m.insertOne(ctx, productsDatabase, productsCollection, doc)
}
