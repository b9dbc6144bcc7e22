package core

import (
	"PackShop/entity"
	"context"
)

func (c *Core) ListProducts(ctx context.Context) ([]entity.Document, error) {
	return c.repo.ListProducts(ctx)
}

func (c *Core) GetProductByID(ctx context.Context, id string) (entity.Document, error) {
	return c.repo.GetProductByID(ctx, id)
}

func (c *Core) InsertProduct(ctx context.Context, doc entity.Document) (*entity.InsertResult, error) {
	return c.repo.InsertProduct(ctx, doc)
}
