package cart

import (
	"PackShop/entity"
	"context"
)

type Core interface {
	ListCartItems(ctx context.Context) ([]entity.Document, error)
	GetCartItemByID(ctx context.Context, id string) (entity.Document, error)
	InsertCartItem(ctx context.Context, doc entity.Document) (*entity.InsertResult, error)
	DeleteCartItemByID(ctx context.Context, id string) (int64, error)
}
