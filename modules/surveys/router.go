package surveys

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/uplifthq/uplift/core"
)

// Router mounts the surveys module.
//
//	r.Mount("/surveys", surveys.Router(surveys.NewHandler(st, dir, log)))
func Router(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Method(http.MethodPost, "/{surveyID}/responses", core.Handler(h.log, h.createResponse))
	return r
}
