// internal/app/features/members/routes.go
package members

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// LIST
	r.Get("/", h.ServeMembersList)

	// CREATE
	r.Post("/", h.HandleCreateMember)

	// EDIT
	r.Put("/{id}", h.HandleEditMember)

	// REGENERATE DISPLAY ID
	r.Post("/{id}/display-id", h.HandleRegenerateDisplayID)

	// DELETE
	r.Delete("/{id}", h.HandleDeleteMember)

	return r
}
