package core

import (
	"PackShop/entity"
	"context"
)

func (c *Core) ListCartItems(ctx context.Context) ([]entity.Document, error) {
	return c.repo.ListCartItems(ctx)
}

func (c *Core) GetCartItemByID(ctx context.Context, id string) (entity.Document, error) {
	return c.repo.GetCartItemByID(ctx, id)
}

func (c *Core) InsertCartItem(ctx context.Context, doc entity.Document) (*entity.InsertResult, error) {
	return c.repo.InsertCartItem(ctx, doc)
}

func (c *Core) DeleteCartItemByID(ctx context.Context, id string) (int64, error) {
	return c.repo.DeleteCartItemByID(ctx, id)
}
