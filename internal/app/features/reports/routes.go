// internal/app/features/reports/routes.go
package reports

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// FULL SUMMARY (totals, rankings, cohorts)
	r.Get("/summary", h.ServeSummary)

	// PER-MEMBER TREND (gap-filled month rows)
	r.Get("/trend", h.ServeTrend)

	// MONTHS WITH APPROVED ACTIVITY
	r.Get("/months", h.ServeMonths)

	return r
}
