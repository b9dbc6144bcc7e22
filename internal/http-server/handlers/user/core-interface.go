package user

import (
	"PackShop/entity"
	"context"
)

type Core interface {
	ListUsers(ctx context.Context) ([]entity.Document, error)
	GetUserByID(ctx context.Context, id string) (entity.Document, error)
	InsertUser(ctx context.Context, doc entity.Document) (*entity.InsertResult, error)
	DeleteUserByID(ctx context.Context, id string) (int64, error)
	DeleteIdentityUser(ctx context.Context, uid string) error
}
