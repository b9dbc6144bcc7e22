package orders

import (
	"PackShop/entity"
	"context"
)

type Core interface {
	ListConfirmedOrders(ctx context.Context) ([]entity.Document, error)
	ConfirmOrder(ctx context.Context, doc entity.Document) (*entity.InsertResult, error)
	ListCancelledOrders(ctx context.Context) ([]entity.Document, error)
	CancelOrder(ctx context.Context, doc entity.Document) (*entity.InsertResult, error)
}

// SubmitResponse carries the outcome message together with the raw
// insert acknowledgement.
type SubmitResponse struct {
	Message string               `json:"message"`
	Result  *entity.InsertResult `json:"result"`
}
