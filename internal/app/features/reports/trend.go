// internal/app/features/reports/trend.go
package reports

import (
	"context"
	"net/http"

	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/report"
	donationstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/donations"
	memberstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/members"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/httpjson"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/normalize"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type trendMember struct {
	UniqueID  string `json:"unique_id"`
	DisplayID string `json:"display_id"`
	Name      string `json:"name"`
	Group     string `json:"group,omitempty"`
}

type trendResponse struct {
	Query   string             `json:"query"`
	Members []trendMember      `json:"members"`
	Rows    []report.PeriodRow `json:"rows"`
}

// ServeTrend handles GET /reports/trend?member=<ref>. The reference
// may be a permanent ID, an event display ID, a raw hex ID, or a
// bare numeric suffix of either formatted ID. Every month from the
// program start to now appears in the rows; months without a real
// donation get a virtual zero row.
func (h *Handler) ServeTrend(w http.ResponseWriter, r *http.Request) {
	query := normalize.QueryParam(r.URL.Query().Get("member"))
	if query == "" {
		httpjson.Error(w, http.StatusBadRequest, "Query parameter \"member\" is required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	members, err := memberstore.New(h.DB).All(ctx)
	if err != nil {
		h.Log.Warn("load members", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	match := report.MatchMembers(query, members)
	if match.Empty() {
		httpjson.Error(w, http.StatusNotFound, "No member matches that reference.")
		return
	}

	donations, err := donationstore.New(h.DB).ByMemberRefs(ctx, match.Refs)
	if err != nil {
		h.Log.Warn("load member donations", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	periods := report.GeneratePeriods(h.StartYear, h.StartMonth, h.Now())
	rows := report.MergeDonations(periods, donations)

	resp := trendResponse{
		Query:   query,
		Members: make([]trendMember, 0, len(match.Members)),
		Rows:    rows,
	}
	for _, m := range match.Members {
		resp.Members = append(resp.Members, trendMember{
			UniqueID:  m.UniqueID,
			DisplayID: m.DisplayID,
			Name:      m.Name,
			Group:     m.GroupRef,
		})
	}

	httpjson.Write(w, http.StatusOK, resp)
}
