package surveys

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/uplifthq/uplift/core"
	"github.com/uplifthq/uplift/pkg/principal"
	"github.com/uplifthq/uplift/pkg/tenant"
	"github.com/uplifthq/uplift/pkg/tenantscope"
	"github.com/uplifthq/uplift/store"
)

// Storage is the slice of the persistence gateway this module needs.
type Storage interface {
	CreateSurveyResponse(ctx context.Context, scope tenantscope.Scope, r store.SurveyResponse) error
}

// Handler serves survey participation endpoints.
type Handler struct {
	storage Storage
	tenants *tenant.Directory
	log     *slog.Logger
}

// NewHandler creates a surveys handler.
func NewHandler(storage Storage, tenants *tenant.Directory, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handler{storage: storage, tenants: tenants, log: log}
}

type createResponseRequest struct {
	// TenantID is pinned to the caller's tenant by the scope guard before
	// this handler ever sees the body; the scope from the context is the
	// authoritative value either way.
	TenantID uuid.UUID `json:"tenantId"`
}

type createResponseResponse struct {
	ID string `json:"id"`
}

// createResponse records the calling employee's submission to a survey.
// Only scoped principals can submit; the response is persisted under the
// caller's own tenant regardless of payload content.
func (h *Handler) createResponse(w http.ResponseWriter, r *http.Request) error {
	p, ok := principal.FromContext(r.Context())
	if !ok {
		return core.ErrUnauthorized
	}

	scope, scoped := tenantscope.FromContext(r.Context())
	if !scoped {
		// Survey participation is a tenant-member activity; super admins
		// have no survey to answer.
		return core.ErrForbidden
	}

	surveyID, err := uuid.Parse(chi.URLParam(r, "surveyID"))
	if err != nil {
		return core.ErrBadRequest
	}

	var req createResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return core.ErrBadRequest
	}

	if _, err := h.tenants.RequireActive(r.Context(), scope.TenantID); err != nil {
		return mapTenantError(err)
	}

	resp := store.SurveyResponse{
		ID:          uuid.New(),
		SurveyID:    surveyID,
		UserID:      p.SubjectID,
		SubmittedAt: time.Now().UTC(),
	}
	if err := h.storage.CreateSurveyResponse(r.Context(), scope, resp); err != nil {
		if errors.Is(err, store.ErrDuplicateResponse) {
			return core.ErrConflict
		}
		return err
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusCreated)
	return json.NewEncoder(w).Encode(createResponseResponse{ID: resp.ID.String()})
}

func mapTenantError(err error) error {
	switch {
	case errors.Is(err, tenant.ErrTenantNotFound):
		return core.ErrNotFound
	case errors.Is(err, tenant.ErrInactiveTenant):
		return core.ErrForbidden
	}
	return err
}
