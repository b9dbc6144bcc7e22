package core

import (
	"PackShop/entity"
	"PackShop/internal/lib/sl"
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

type Repository interface {
	ListUsers(ctx context.Context) ([]entity.Document, error)
	GetUserByID(ctx context.Context, id string) (entity.Document, error)
	InsertUser(ctx context.Context, doc entity.Document) (*entity.InsertResult, error)
	DeleteUserByID(ctx context.Context, id string) (int64, error)

	ListProducts(ctx context.Context) ([]entity.Document, error)
	GetProductByID(ctx context.Context, id string) (entity.Document, error)
	InsertProduct(ctx context.Context, doc entity.Document) (*entity.InsertResult, error)

	ListBanners(ctx context.Context) ([]entity.Document, error)
	InsertBanner(ctx context.Context, doc entity.Document) (*entity.InsertResult, error)

	ListCartItems(ctx context.Context) ([]entity.Document, error)
	GetCartItemByID(ctx context.Context, id string) (entity.Document, error)
	InsertCartItem(ctx context.Context, doc entity.Document) (*entity.InsertResult, error)
	DeleteCartItemByID(ctx context.Context, id string) (int64, error)

	ListConfirmedOrders(ctx context.Context) ([]entity.Document, error)
	InsertConfirmedOrder(ctx context.Context, doc entity.Document) (*entity.InsertResult, error)
	ListCancelledOrders(ctx context.Context) ([]entity.Document, error)
	InsertCancelledOrder(ctx context.Context, doc entity.Document) (*entity.InsertResult, error)
}

type IdentityService interface {
	DeleteUser(ctx context.Context, uid string) error
}

type Core struct {
	repo     Repository
	identity IdentityService
	validate *validator.Validate
	log      *slog.Logger
}

func New(log *slog.Logger) *Core {
	return &Core{
		validate: validator.New(),
		log:      log.With(sl.Module("core")),
	}
}

func (c *Core) SetRepository(repo Repository) {
	c.repo = repo
}

func (c *Core) SetIdentityService(identity IdentityService) {
	c.identity = identity
}
