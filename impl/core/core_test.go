package core

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"PackShop/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) docs(args mock.Arguments) ([]entity.Document, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Document), args.Error(1)
}

func (m *MockRepository) doc(args mock.Arguments) (entity.Document, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(entity.Document), args.Error(1)
}

func (m *MockRepository) result(args mock.Arguments) (*entity.InsertResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.InsertResult), args.Error(1)
}

func (m *MockRepository) ListUsers(ctx context.Context) ([]entity.Document, error) {
	return m.docs(m.Called(ctx))
}

func (m *MockRepository) GetUserByID(ctx context.Context, id string) (entity.Document, error) {
	return m.doc(m.Called(ctx, id))
}

func (m *MockRepository) InsertUser(ctx context.Context, doc entity.Document) (*entity.InsertResult, error) {
	return m.result(m.Called(ctx, doc))
}

func (m *MockRepository) DeleteUserByID(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) ListProducts(ctx context.Context) ([]entity.Document, error) {
	return m.docs(m.Called(ctx))
}

func (m *MockRepository) GetProductByID(ctx context.Context, id string) (entity.Document, error) {
	return m.doc(m.Called(ctx, id))
}

func (m *MockRepository) InsertProduct(ctx context.Context, doc entity.Document) (*entity.InsertResult, error) {
	return m.result(m.Called(ctx, doc))
}

func (m *MockRepository) ListBanners(ctx context.Context) ([]entity.Document, error) {
	return m.docs(m.Called(ctx))
}

func (m *MockRepository) InsertBanner(ctx context.Context, doc entity.Document) (*entity.InsertResult, error) {
	return m.result(m.Called(ctx, doc))
}

func (m *MockRepository) ListCartItems(ctx context.Context) ([]entity.Document, error) {
	return m.docs(m.Called(ctx))
}

func (m *MockRepository) GetCartItemByID(ctx context.Context, id string) (entity.Document, error) {
	return m.doc(m.Called(ctx, id))
}

func (m *MockRepository) InsertCartItem(ctx context.Context, doc entity.Document) (*entity.InsertResult, error) {
	return m.result(m.Called(ctx, doc))
}

func (m *MockRepository) DeleteCartItemByID(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) ListConfirmedOrders(ctx context.Context) ([]entity.Document, error) {
	return m.docs(m.Called(ctx))
}

func (m *MockRepository) InsertConfirmedOrder(ctx context.Context, doc entity.Document) (*entity.InsertResult, error) {
	return m.result(m.Called(ctx, doc))
}

func (m *MockRepository) ListCancelledOrders(ctx context.Context) ([]entity.Document, error) {
	return m.docs(m.Called(ctx))
}

func (m *MockRepository) InsertCancelledOrder(ctx context.Context, doc entity.Document) (*entity.InsertResult, error) {
	return m.result(m.Called(ctx, doc))
}

type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) DeleteUser(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

func newTestCore(repo Repository) *Core {
	c := New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.SetRepository(repo)
	return c
}

func TestConfirmOrder_StripsClientID(t *testing.T) {
	mockRepo := new(MockRepository)
	c := newTestCore(mockRepo)
	ctx := context.Background()

	expected := &entity.InsertResult{Acknowledged: true, InsertedID: "68b5b1a2e4d3c2b1a0f9e8d7"}

	mockRepo.On("InsertConfirmedOrder", mock.Anything, mock.AnythingOfType("entity.Document")).
		Return(expected, nil).
		Run(func(args mock.Arguments) {
			doc := args.Get(1).(entity.Document)
			assert.NotContains(t, doc, "_id")
			assert.Equal(t, "abc123", doc["id"])
			assert.Equal(t, "widget", doc["item"])
		})

	result, err := c.ConfirmOrder(ctx, entity.Document{
		"id":   "abc123",
		"_id":  "willBeStripped",
		"item": "widget",
	})

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
	assert.NotEqual(t, "willBeStripped", result.InsertedID)

	mockRepo.AssertExpectations(t)
}

func TestConfirmOrder_InvalidInput(t *testing.T) {
	mockRepo := new(MockRepository)
	c := newTestCore(mockRepo)
	ctx := context.Background()

	tests := []struct {
		name string
		doc  entity.Document
	}{
		{name: "nil document", doc: nil},
		{name: "missing id", doc: entity.Document{"item": "widget"}},
		{name: "empty id", doc: entity.Document{"id": "", "item": "widget"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := c.ConfirmOrder(ctx, tt.doc)
			assert.ErrorIs(t, err, ErrInvalidOrder)
			assert.Nil(t, result)
		})
	}

	mockRepo.AssertNotCalled(t, "InsertConfirmedOrder", mock.Anything, mock.Anything)
}

func TestCancelOrder_TargetsCancellationCollection(t *testing.T) {
	mockRepo := new(MockRepository)
	c := newTestCore(mockRepo)
	ctx := context.Background()

	expected := &entity.InsertResult{Acknowledged: true, InsertedID: "68b5b1a2e4d3c2b1a0f9e8d8"}

	mockRepo.On("InsertCancelledOrder", mock.Anything, mock.AnythingOfType("entity.Document")).
		Return(expected, nil).
		Run(func(args mock.Arguments) {
			doc := args.Get(1).(entity.Document)
			assert.NotContains(t, doc, "_id")
		})

	result, err := c.CancelOrder(ctx, entity.Document{"id": "abc123", "_id": "stale"})

	assert.NoError(t, err)
	assert.Equal(t, expected, result)

	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "InsertConfirmedOrder", mock.Anything, mock.Anything)
}

func TestCancelOrder_InvalidInput(t *testing.T) {
	mockRepo := new(MockRepository)
	c := newTestCore(mockRepo)

	result, err := c.CancelOrder(context.Background(), entity.Document{"item": "widget"})

	assert.ErrorIs(t, err, ErrInvalidOrder)
	assert.Nil(t, result)
	mockRepo.AssertNotCalled(t, "InsertCancelledOrder", mock.Anything, mock.Anything)
}

func TestDeleteIdentityUser(t *testing.T) {
	mockRepo := new(MockRepository)
	mockIdentity := new(MockIdentityService)
	c := newTestCore(mockRepo)
	c.SetIdentityService(mockIdentity)

	uid := uuid.NewString()
	mockIdentity.On("DeleteUser", mock.Anything, uid).Return(nil)

	err := c.DeleteIdentityUser(context.Background(), uid)

	assert.NoError(t, err)
	mockIdentity.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "DeleteUserByID", mock.Anything, mock.Anything)
}

func TestDeleteIdentityUser_Unavailable(t *testing.T) {
	c := newTestCore(new(MockRepository))

	err := c.DeleteIdentityUser(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, ErrIdentityUnavailable)
}
