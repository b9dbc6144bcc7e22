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

// DeleteMongoUser removes the store document only. The Firebase account
// with the same owner, if any, is a separate delete against a separate
// identity space.
func DeleteMongoUser(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		logger := log.With(
			sl.Module("http.handlers.user"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("id", id),
		)

		count, err := handler.DeleteUserByID(r.Context(), id)
		if err != nil {
			logger.Error("delete mongo user", sl.Err(err))
			errors.Internal(w, r, err)
			return
		}

		if count == 0 {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Message("User not found"))
			return
		}

		logger.Info("mongo user deleted")
		render.JSON(w, r, response.Message("MongoDB user deleted"))
	}
}
