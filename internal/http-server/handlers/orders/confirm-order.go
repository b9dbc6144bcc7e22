package orders

import (
	"PackShop/entity"
	"PackShop/impl/core"
	apierrors "PackShop/internal/http-server/handlers/errors"
	"PackShop/internal/lib/api/response"
	"PackShop/internal/lib/sl"
	"encoding/json"
	"errors"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"io"
	"log/slog"
	"net/http"
)

func ConfirmOrder(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.orders"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var doc entity.Document
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		result, err := handler.ConfirmOrder(r.Context(), doc)
		if errors.Is(err, core.ErrInvalidOrder) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Message("Invalid order data."))
			return
		}
		if err != nil {
			logger.Error("confirm order", sl.Err(err))
			apierrors.Internal(w, r, err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, SubmitResponse{
			Message: "Order confirmed successfully",
			Result:  result,
		})
	}
}
