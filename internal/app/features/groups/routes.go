// internal/app/features/groups/routes.go
package groups

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// LIST
	r.Get("/", h.ServeGroupsList)

	// CREATE
	r.Post("/", h.HandleCreateGroup)

	// EDIT
	r.Put("/{id}", h.HandleEditGroup)

	// DELETE
	r.Delete("/{id}", h.HandleDeleteGroup)

	return r
}
