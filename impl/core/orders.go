package core

import (
	"PackShop/entity"
	"context"
	"errors"
	"log/slog"
)

// ErrInvalidOrder marks a submission missing its required id field.
var ErrInvalidOrder = errors.New("invalid order data")

var orderRules = map[string]interface{}{
	"id": "required",
}

func (c *Core) validateOrder(doc entity.Document) error {
	if doc == nil {
		return ErrInvalidOrder
	}
	if errs := c.validate.ValidateMap(doc, orderRules); len(errs) > 0 {
		return ErrInvalidOrder
	}
	return nil
}

// ConfirmOrder inserts the submitted payload into the confirmed-orders
// collection. Any client-supplied _id is dropped first so the store
// assigns a fresh identity and reinsertion cannot collide.
func (c *Core) ConfirmOrder(ctx context.Context, doc entity.Document) (*entity.InsertResult, error) {
	if err := c.validateOrder(doc); err != nil {
		return nil, err
	}
	delete(doc, "_id")

	result, err := c.repo.InsertConfirmedOrder(ctx, doc)
	if err != nil {
		return nil, err
	}

	c.log.With(slog.Any("order_id", doc["id"])).Info("order confirmed")
	return result, nil
}

// CancelOrder follows the same contract against the cancellation
// collection. The two order flows never touch each other's documents.
func (c *Core) CancelOrder(ctx context.Context, doc entity.Document) (*entity.InsertResult, error) {
	if err := c.validateOrder(doc); err != nil {
		return nil, err
	}
	delete(doc, "_id")

	result, err := c.repo.InsertCancelledOrder(ctx, doc)
	if err != nil {
		return nil, err
	}

	c.log.With(slog.Any("order_id", doc["id"])).Info("order cancelled")
	return result, nil
}

func (c *Core) ListConfirmedOrders(ctx context.Context) ([]entity.Document, error) {
	return c.repo.ListConfirmedOrders(ctx)
}

func (c *Core) ListCancelledOrders(ctx context.Context) ([]entity.Document, error) {
	return c.repo.ListCancelledOrders(ctx)
}
