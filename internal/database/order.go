package repository

import (
	"PackShop/entity"
	"context"
)

func (m *MongoDB) ListConfirmedOrders(ctx context.Context) ([]entity.Document, error) {
	return m.listAll(ctx, confirmOrdersDatabase, confirmOrdersCollection)
}

func (m *MongoDB) InsertConfirmedOrder(ctx context.Context, doc entity.Document) (*entity.InsertResult, error) {
	return m.insertOne(ctx, confirmOrdersDatabase, confirmOrdersCollection, doc)
}

func (m *MongoDB) ListCancelledOrders(ctx context.Context) ([]entity.Document, error) {
	return m.listAll(ctx, cancelOrdersDatabase, cancelOrdersCollection)
}

func (m *MongoDB) InsertCancelledOrder(ctx context.Context, doc entity.Document) (*entity.InsertResult, error) {
	return m.insertOne(ctx, cancelOrdersDatabase, cancelOrdersCollection, doc)
}
