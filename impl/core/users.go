package core

import (
	"PackShop/entity"
	"context"
	"errors"
)

var ErrIdentityUnavailable = errors.New("identity service not available")

func (c *Core) ListUsers(ctx context.Context) ([]entity.Document, error) {
	return c.repo.ListUsers(ctx)
}

func (c *Core) GetUserByID(ctx context.Context, id string) (entity.Document, error) {
	return c.repo.GetUserByID(ctx, id)
}

func (c *Core) InsertUser(ctx context.Context, doc entity.Document) (*entity.InsertResult, error) {
	return c.repo.InsertUser(ctx, doc)
}

func (c *Core) DeleteUserByID(ctx context.Context, id string) (int64, error) {
	return c.repo.DeleteUserByID(ctx, id)
}

// DeleteIdentityUser removes the account at the identity provider only.
// The matching store document, if any, is left untouched.
func (c *Core) DeleteIdentityUser(ctx context.Context, uid string) error {
	if c.identity == nil {
		return ErrIdentityUnavailable
	}
	return c.identity.DeleteUser(ctx, uid)
}
