package repository

import (
	"PackShop/entity"
	"context"
)

func (m *MongoDB) ListBanners(ctx context.Context) ([]entity.Document, error) {
	return m.listAll(ctx, bannerDatabase, bannerCollection)
}

func (m *MongoDB) InsertBanner(ctx context.Context, doc entity.Document) (*entity.InsertResult, error) {
	return m.insertOne(ctx, bannerDatabase, bannerCollection, doc)
}
