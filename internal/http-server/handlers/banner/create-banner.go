package banner

import (
	"PackShop/entity"
	"PackShop/internal/http-server/handlers/errors"
	"PackShop/internal/lib/api/response"
	"PackShop/internal/lib/sl"
	"encoding/json"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

func CreateBanner(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.banner"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var doc entity.Document
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		result, err := handler.InsertBanner(r.Context(), doc)
		if err != nil {
			logger.Error("create banner", sl.Err(err))
			errors.Internal(w, r, err)
			return
		}

		render.JSON(w, r, result)
	}
}
