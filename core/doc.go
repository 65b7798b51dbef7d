// Package core normalizes every failure leaving the process into a single
// canonical JSON envelope: {statusCode, message, timestamp}.
//
// Failures raised deliberately by business logic carry an explicit
// HTTPError and pass their status and message through unchanged. Anything
// else (erasure transaction failures, connection loss, panics, plain
// errors) collapses to 500 "Internal server error". Internal detail is
// logged, never written to the response, so no two failure paths produce
// differently-shaped output and nothing leaks.
//
// Handlers return errors instead of writing failure responses themselves:
//
//	r.Method(http.MethodDelete, "/{userID}", core.Handler(log, h.deleteUser))
//
//	func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) error {
//		if err := h.store.EraseUserData(r.Context(), id); err != nil {
//			if errors.Is(err, store.ErrUserNotFound) {
//				return core.ErrNotFound
//			}
//			return err // becomes 500, detail stays in the logs
//		}
//		w.WriteHeader(http.StatusNoContent)
//		return nil
//	}
package core
