package orders

import (
	"PackShop/internal/http-server/handlers/errors"
	"PackShop/internal/lib/sl"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

func ListCancelled(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.orders"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		docs, err := handler.ListCancelledOrders(r.Context())
		if err != nil {
			logger.Error("list cancelled orders", sl.Err(err))
			errors.Internal(w, r, err)
			return
		}

		render.JSON(w, r, docs)
	}
}
