package cart

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

// RemoveItem clears an entry after its order has been confirmed.
func RemoveItem(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		logger := log.With(
			sl.Module("http.handlers.cart"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("id", id),
		)

		count, err := handler.DeleteCartItemByID(r.Context(), id)
		if err != nil {
			logger.Error("remove cart item", sl.Err(err))
			errors.Internal(w, r, err)
			return
		}

		if count == 0 {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Message("Order not found in cart"))
			return
		}

		logger.Info("cart item removed")
		render.JSON(w, r, response.Message("Order deleted from cart"))
	}
}
