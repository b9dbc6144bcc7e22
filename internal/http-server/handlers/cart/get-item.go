package cart

import (
	"PackShop/internal/http-server/handlers/errors"
	"PackShop/internal/lib/sl"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

func GetItem(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		logger := log.With(
			sl.Module("http.handlers.cart"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("id", id),
		)

		doc, err := handler.GetCartItemByID(r.Context(), id)
		if err != nil {
			logger.Error("get cart item", sl.Err(err))
			errors.Internal(w, r, err)
			return
		}

		// Absent documents answer 200 with an empty body.
		if doc == nil {
			w.WriteHeader(http.StatusOK)
			return
		}

		render.JSON(w, r, doc)
	}
}
