package health

import (
	"github.com/go-chi/render"
	"net/http"
)

// Alive answers without touching the store or the identity provider.
func Alive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, "Package is gonna cooking")
	}
}
