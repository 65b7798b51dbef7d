package users

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/uplifthq/uplift/core"
	"github.com/uplifthq/uplift/pkg/principal"
	"github.com/uplifthq/uplift/pkg/tenantscope"
	"github.com/uplifthq/uplift/store"
)

// Storage is the slice of the persistence gateway this module needs.
type Storage interface {
	UserByID(ctx context.Context, scope tenantscope.Scope, id uuid.UUID) (*store.User, error)
	EraseUserData(ctx context.Context, userID uuid.UUID) error
}

// Handler serves user administration endpoints.
type Handler struct {
	storage Storage
	log     *slog.Logger
}

// NewHandler creates a users handler.
func NewHandler(storage Storage, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handler{storage: storage, log: log}
}

// deleteUser permanently erases a user and their complete data footprint.
// Company admins can only reach users of their own tenant: the scoped
// lookup makes a foreign tenant's user indistinguishable from a missing
// one. Only super admins may erase without a tenant scope.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) error {
	p, ok := principal.FromContext(r.Context())
	if !ok {
		return core.ErrUnauthorized
	}
	if !p.CanErase() {
		return core.ErrForbidden
	}

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		return core.ErrBadRequest
	}

	scope, scoped := tenantscope.FromContext(r.Context())
	switch {
	case scoped:
		if _, err := h.storage.UserByID(r.Context(), scope, userID); err != nil {
			return mapStorageError(err)
		}
	case p.Role != principal.RoleSuperAdmin:
		// A scoped role whose identity lost its tenant binding is a broken
		// identity, not cross-tenant capability.
		return core.ErrForbidden
	}

	if err := h.storage.EraseUserData(r.Context(), userID); err != nil {
		return mapStorageError(err)
	}

	h.log.InfoContext(r.Context(), "user data erased",
		slog.String("user_id", userID.String()),
		slog.String("erased_by", p.SubjectID.String()),
	)

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func mapStorageError(err error) error {
	if errors.Is(err, store.ErrUserNotFound) {
		return core.ErrNotFound
	}
	return err
}
