package banner

import (
	"PackShop/entity"
	"context"
)

type Core interface {
	ListBanners(ctx context.Context) ([]entity.Document, error)
	InsertBanner(ctx context.Context, doc entity.Document) (*entity.InsertResult, error)
}
