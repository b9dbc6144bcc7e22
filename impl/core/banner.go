package core

import (
	"PackShop/entity"
	"context"
)

func (c *Core) ListBanners(ctx context.Context) ([]entity.Document, error) {
	return c.repo.ListBanners(ctx)
}

func (c *Core) InsertBanner(ctx context.Context, doc entity.Document) (*entity.InsertResult, error) {
	return c.repo.InsertBanner(ctx, doc)
}
