package errors

import (
	"PackShop/internal/lib/api/response"
	"github.com/go-chi/render"
	"net/http"
)

// Internal is the terminal answer for every failure no handler maps
// explicitly: a 500 with the error's message text and nothing more.
func Internal(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, response.ErrorFrom(err))
}
