// internal/app/features/registrations/routes.go
package registrations

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// LIST
	r.Get("/", h.ServeRegistrationsList)

	// CREATE
	r.Post("/", h.HandleCreateRegistration)

	// PAYMENT STATUS
	r.Post("/{id}/payment", h.HandleSetPaymentStatus)

	// CHECK-IN
	r.Post("/{id}/checkin", h.HandleCheckIn)

	// DELETE
	r.Delete("/{id}", h.HandleDeleteRegistration)

	return r
}
