// internal/app/features/donations/routes.go
package donations

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// LIST
	r.Get("/", h.ServeDonationsList)

	// CREATE (single entry, lands as pending)
	r.Post("/", h.HandleCreateDonation)

	// BULK IMPORT (lands as approved, stamped with one batch ID)
	r.Post("/bulk", h.HandleBulkImport)

	// APPROVE
	r.Post("/{id}/approve", h.HandleApproveDonation)

	// EDIT
	r.Put("/{id}", h.HandleEditDonation)

	// DELETE
	r.Delete("/{id}", h.HandleDeleteDonation)

	return r
}
