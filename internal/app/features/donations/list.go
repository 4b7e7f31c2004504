// internal/app/features/donations/list.go
package donations

import (
	"context"
	"net/http"

	donationstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/donations"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/report"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/httpjson"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/normalize"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/timeouts"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/domain/models"
	"go.uber.org/zap"
)

type donationRow struct {
	ID        string `json:"id"`
	MemberRef string `json:"member"`
	GroupRef  string `json:"group,omitempty"`
	Amount    string `json:"amount"`
	Month     string `json:"month"`
	Status    string `json:"status"`
	Note      string `json:"note,omitempty"`
	BatchID   string `json:"batch_id,omitempty"`
}

func toDonationRow(d models.Donation) donationRow {
	ref := d.MemberRef
	if ref == "" {
		ref = d.MemberDisplayRef
	}
	return donationRow{
		ID:        d.ID.Hex(),
		MemberRef: ref,
		GroupRef:  d.GroupRef,
		Amount:    report.CoerceAmount(d.Amount).String(),
		Month:     d.Month,
		Status:    d.Status,
		Note:      d.Note,
		BatchID:   d.BatchID,
	}
}

// ServeDonationsList handles GET /donations. An optional ?month=
// query filters to a single period label.
func (h *Handler) ServeDonationsList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := donationstore.New(h.DB)

	var (
		all []models.Donation
		err error
	)
	if month := normalize.MonthLabel(r.URL.Query().Get("month")); month != "" {
		all, err = store.ByMonth(ctx, month)
	} else {
		all, err = store.All(ctx)
	}
	if err != nil {
		h.Log.Warn("list donations", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	rows := make([]donationRow, 0, len(all))
	for _, d := range all {
		rows = append(rows, toDonationRow(d))
	}
	httpjson.Write(w, http.StatusOK, rows)
}
