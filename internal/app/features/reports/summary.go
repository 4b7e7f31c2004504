// internal/app/features/reports/summary.go
package reports

import (
	"context"
	"net/http"
	"sort"
	"strconv"

	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/report"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/httpjson"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/timeouts"
	"go.uber.org/zap"
)

const defaultTopContributors = 10

type groupTotalRow struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Total string `json:"total"`
}

type memberTotalRow struct {
	Key       string `json:"key"`
	Name      string `json:"name,omitempty"`
	DisplayID string `json:"display_id,omitempty"`
	Group     string `json:"group,omitempty"`
	Total     string `json:"total"`
}

type summaryResponse struct {
	GrandTotal         string            `json:"grand_total"`
	Unassigned         string            `json:"unassigned"`
	ApprovedCount      int               `json:"approved_count"`
	DonorCount         int               `json:"donor_count"`
	Groups             []groupTotalRow   `json:"groups"`
	TopGroup           *groupTotalRow    `json:"top_group"`
	TopContributors    []memberTotalRow  `json:"top_contributors"`
	Months             map[string]string `json:"months"`
	Years              map[string]string `json:"years"`
	ZeroDonationGroups []string          `json:"zero_donation_groups"`
	NonDonatingMembers []memberTotalRow  `json:"non_donating_members"`
	ParticipationRate  float64           `json:"participation_rate"`
}

func toMemberTotalRow(mt report.MemberTotal) memberTotalRow {
	row := memberTotalRow{
		Key:   mt.Key,
		Total: mt.Total.String(),
	}
	if mt.Member != nil {
		row.Name = mt.Member.Name
		row.DisplayID = mt.Member.DisplayID
		row.Group = mt.Member.GroupRef
	}
	return row
}

// ServeSummary handles GET /reports/summary. One snapshot load feeds
// every section, so totals, rankings, and cohorts always agree.
func (h *Handler) ServeSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	snap, err := h.loadSnapshot(ctx)
	if err != nil {
		h.Log.Warn("load report snapshot", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	totals := report.Aggregate(snap.Donations, snap.Groups, snap.Members)
	board := report.BuildLeaderboard(totals, snap.Groups, snap.Members)

	resp := summaryResponse{
		GrandTotal:    totals.GrandTotal().String(),
		Unassigned:    totals.Unassigned.String(),
		ApprovedCount: totals.ApprovedCount,
		DonorCount:    totals.DonorCount,
		Months:        make(map[string]string, len(totals.ByMonth)),
		Years:         make(map[string]string, len(totals.ByYear)),
		ZeroDonationGroups: func() []string {
			names := make([]string, 0, len(board.ZeroDonationGroups))
			for _, g := range board.ZeroDonationGroups {
				names = append(names, g.Name)
			}
			return names
		}(),
		ParticipationRate: board.ParticipationRate,
	}

	groups := make([]groupTotalRow, 0, len(snap.Groups))
	for _, g := range snap.Groups {
		groups = append(groups, groupTotalRow{
			ID:    g.ID.Hex(),
			Name:  g.Name,
			Total: totals.ByGroup[g.ID.Hex()].String(),
		})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	resp.Groups = groups

	if board.TopGroup != nil {
		resp.TopGroup = &groupTotalRow{
			ID:    board.TopGroup.Group.ID.Hex(),
			Name:  board.TopGroup.Group.Name,
			Total: board.TopGroup.Total.String(),
		}
	}

	top := report.TopContributors(totals, snap.Members, defaultTopContributors)
	resp.TopContributors = make([]memberTotalRow, 0, len(top))
	for _, mt := range top {
		resp.TopContributors = append(resp.TopContributors, toMemberTotalRow(mt))
	}

	resp.NonDonatingMembers = make([]memberTotalRow, 0, len(board.NonDonatingMembers))
	for _, m := range board.NonDonatingMembers {
		resp.NonDonatingMembers = append(resp.NonDonatingMembers, memberTotalRow{
			Key:       report.MemberKey(m),
			Name:      m.Name,
			DisplayID: m.DisplayID,
			Group:     m.GroupRef,
			Total:     "0",
		})
	}

	for label, amount := range totals.ByMonth {
		resp.Months[label] = amount.String()
	}
	for year, amount := range totals.ByYear {
		resp.Years[strconv.Itoa(year)] = amount.String()
	}

	httpjson.Write(w, http.StatusOK, resp)
}
