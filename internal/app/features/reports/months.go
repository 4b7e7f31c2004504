// internal/app/features/reports/months.go
package reports

import (
	"context"
	"net/http"

	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/report"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/httpjson"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type monthsResponse struct {
	Months []string `json:"months"`
}

// ServeMonths handles GET /reports/months. It lists the period labels
// with at least one approved donation, newest first, restricted to
// the program timeline.
func (h *Handler) ServeMonths(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	snap, err := h.loadSnapshot(ctx)
	if err != nil {
		h.Log.Warn("load report snapshot", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	totals := report.Aggregate(snap.Donations, snap.Groups, snap.Members)
	periods := report.GeneratePeriods(h.StartYear, h.StartMonth, h.Now())
	labels := report.AvailableMonths(periods, totals)
	if labels == nil {
		labels = []string{}
	}
	httpjson.Write(w, http.StatusOK, monthsResponse{Months: labels})
}
