package user

import (
	"PackShop/internal/http-server/handlers/errors"
	"PackShop/internal/lib/api/response"
	"PackShop/internal/lib/sl"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

func DeleteFirebaseUser(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := chi.URLParam(r, "uid")
		logger := log.With(
			sl.Module("http.handlers.user"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("uid", uid),
		)

		if err := handler.DeleteIdentityUser(r.Context(), uid); err != nil {
			logger.Error("delete firebase user", sl.Err(err))
			errors.Internal(w, r, err)
			return
		}

		render.JSON(w, r, response.Message("Firebase user deleted"))
	}
}
