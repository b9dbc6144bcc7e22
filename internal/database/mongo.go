package repository

import (
	"PackShop/internal/config"
	"PackShop/internal/lib/sl"
	"context"
	"fmt"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"log/slog"
	"net/url"
	"time"
)

// One database per collection, matching the deployed cluster layout.
const (
	usersDatabase   = "packageUsersDB"
	usersCollection = "packageUsers"

	productsDatabase   = "packageProductsDB"
	productsCollection = "packageProducts"

	bannerDatabase   = "packageBannerDB"
	bannerCollection = "packageBanner"

	cartDatabase   = "packageAddCartDB"
	cartCollection = "packageAddCart"

	confirmOrdersDatabase   = "packageConfirmOrdersDB"
	confirmOrdersCollection = "packageConfirmOrders"

	cancelOrdersDatabase   = "packageOrderCancelDB"
	cancelOrdersCollection = "packageOrderCancel"
)

const connectTimeout = 10 * time.Second

type MongoDB struct {
	client *mongo.Client
	log    *slog.Logger
}

// NewMongoClient connects once and verifies the connection with a ping.
// The client is long-lived and shared across all requests.
func NewMongoClient(conf *config.Config, logger *slog.Logger) (*MongoDB, error) {
	connectionUri := fmt.Sprintf(
		"mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=%s",
		url.QueryEscape(conf.Mongo.User),
		url.QueryEscape(conf.Mongo.Password),
		conf.Mongo.Host,
		conf.Mongo.AppName,
	)
	clientOptions := options.Client().
		ApplyURI(connectionUri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	connection, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongodb connect error: %w", err)
	}
	if err := connection.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongodb ping error: %w", err)
	}

	return &MongoDB{
		client: connection,
		log:    logger.With(sl.Module("mongodb")),
	}, nil
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *MongoDB) collection(database, name string) *mongo.Collection {
	return m.client.Database(database).Collection(name)
}
