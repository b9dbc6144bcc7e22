package product

import (
	"PackShop/internal/http-server/handlers/errors"
	"PackShop/internal/lib/sl"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

func GetProduct(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		logger := log.With(
			sl.Module("http.handlers.product"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("id", id),
		)

		doc, err := handler.GetProductByID(r.Context(), id)
		if err != nil {
			logger.Error("get product", sl.Err(err))
			errors.Internal(w, r, err)
			return
		}

		// A nil document renders as a JSON null, not a 404.
		render.JSON(w, r, doc)
	}
}
