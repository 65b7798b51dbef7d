package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/uplifthq/uplift/core"
)

// Router mounts the users module.
//
//	r.Mount("/users", users.Router(users.NewHandler(st, log)))
func Router(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Method(http.MethodDelete, "/{userID}", core.Handler(h.log, h.deleteUser))
	return r
}
