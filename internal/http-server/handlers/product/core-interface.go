package product

import (
	"PackShop/entity"
	"context"
)

type Core interface {
	ListProducts(ctx context.Context) ([]entity.Document, error)
	GetProductByID(ctx context.Context, id string) (entity.Document, error)
	InsertProduct(ctx context.Context, doc entity.Document) (*entity.InsertResult, error)
}
