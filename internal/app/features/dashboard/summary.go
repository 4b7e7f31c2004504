// internal/app/features/dashboard/summary.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/report"
	donationstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/donations"
	groupstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/groups"
	memberstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/members"
	registrationstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/registrations"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/httpjson"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/timeouts"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/domain/models"
	"go.uber.org/zap"
)

type summaryResponse struct {
	Groups            int     `json:"groups"`
	Members           int     `json:"members"`
	Donations         int64   `json:"donations"`
	Registrations     int64   `json:"registrations"`
	CheckedIn         int     `json:"checked_in"`
	PaidRegistrations int     `json:"paid_registrations"`
	GrandTotal        string  `json:"grand_total"`
	TopGroup          string  `json:"top_group,omitempty"`
	ParticipationRate float64 `json:"participation_rate"`
}

// ServeSummary handles GET /dashboard/summary. It is the single
// landing-page snapshot: entity counts, event-day progress, and the
// headline donation numbers.
func (h *Handler) ServeSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	groups, err := groupstore.New(h.DB).All(ctx)
	if err != nil {
		h.serveErr(w, "load groups", err)
		return
	}
	members, err := memberstore.New(h.DB).All(ctx)
	if err != nil {
		h.serveErr(w, "load members", err)
		return
	}
	donations, err := donationstore.New(h.DB).All(ctx)
	if err != nil {
		h.serveErr(w, "load donations", err)
		return
	}
	registrations, err := registrationstore.New(h.DB).All(ctx)
	if err != nil {
		h.serveErr(w, "load registrations", err)
		return
	}

	totals := report.Aggregate(donations, groups, members)

	resp := summaryResponse{
		Groups:            len(groups),
		Members:           len(members),
		Donations:         int64(len(donations)),
		Registrations:     int64(len(registrations)),
		GrandTotal:        totals.GrandTotal().String(),
		ParticipationRate: report.ParticipationRate(totals, members),
	}
	for _, reg := range registrations {
		if reg.CheckedIn {
			resp.CheckedIn++
		}
		if reg.PaymentStatus == models.PaymentPaid {
			resp.PaidRegistrations++
		}
	}
	if top := report.TopGroup(totals, groups); top != nil {
		resp.TopGroup = top.Group.Name
	}

	httpjson.Write(w, http.StatusOK, resp)
}

func (h *Handler) serveErr(w http.ResponseWriter, msg string, err error) {
	h.Log.Warn(msg, zap.Error(err))
	httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
}
