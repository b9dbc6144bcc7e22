package main

import (
	"PackShop/impl/core"
	"PackShop/internal/config"
	repository "PackShop/internal/database"
	"PackShop/internal/http-server/api"
	"PackShop/internal/lib/logger"
	"PackShop/internal/lib/sl"
	"PackShop/internal/service/identity"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

func main() {

	_ = godotenv.Load()

	configPath := flag.String("conf", "config.yml", "path to config file")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env)

	lg.Info("starting packshop", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	handler := core.New(lg)

	// The store connection is fatal: without it there is nothing to serve.
	db, err := repository.NewMongoClient(conf, lg)
	if err != nil {
		lg.With(
			sl.Err(err),
		).Error("failed to connect to mongodb")
		os.Exit(1)
	}
	handler.SetRepository(db)
	lg.With(
		slog.String("host", conf.Mongo.Host),
		slog.String("user", conf.Mongo.User),
		sl.Secret("password", conf.Mongo.Password),
	).Info("mongodb connected")

	ids := identity.New(conf, lg)
	if ids != nil {
		handler.SetIdentityService(ids)
		lg.With(
			slog.String("credentials", conf.Firebase.CredentialsFile),
		).Info("identity service initialized")
	}

	// *** blocking start with http server ***
	err = api.New(conf, lg, handler)
	if err != nil {
		lg.Error("server start", sl.Err(err))
		os.Exit(1)
	}
	lg.Error("service stopped")
}
