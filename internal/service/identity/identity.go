package identity

import (
	"PackShop/internal/config"
	"PackShop/internal/lib/sl"
	"context"
	"fmt"
	"log/slog"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Service wraps Firebase Auth. Account identities there are unrelated
// to the store's user documents; the two are never correlated.
type Service struct {
	auth *auth.Client
	log  *slog.Logger
}

func New(conf *config.Config, logger *slog.Logger) *Service {
	log := logger.With(sl.Module("identity"))

	if _, err := os.Stat(conf.Firebase.CredentialsFile); err != nil {
		log.Warn("firebase credentials not found, identity service disabled",
			slog.String("path", conf.Firebase.CredentialsFile))
		return nil
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(conf.Firebase.CredentialsFile))
	if err != nil {
		log.Error("firebase app init", sl.Err(err))
		return nil
	}

	client, err := app.Auth(ctx)
	if err != nil {
		log.Error("firebase auth client", sl.Err(err))
		return nil
	}

	return &Service{
		auth: client,
		log:  log,
	}
}

func (s *Service) DeleteUser(ctx context.Context, uid string) error {
	if err := s.auth.DeleteUser(ctx, uid); err != nil {
		return fmt.Errorf("firebase delete user %s: %w", uid, err)
	}
	s.log.With(slog.String("uid", uid)).Info("firebase user deleted")
	return nil
}
