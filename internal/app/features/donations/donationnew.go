// internal/app/features/donations/donationnew.go
package donations

import (
	"context"
	"net/http"

	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/report"
	donationstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/donations"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/htmlsanitize"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/httpjson"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/normalize"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/timeouts"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/domain/models"
	"go.uber.org/zap"
)

// donationInput is the entry payload shared by the single-create and
// bulk-import endpoints. Amount accepts whatever JSON type the caller
// sends; the reporting engine coerces junk to zero rather than
// rejecting the record.
type donationInput struct {
	Member string `json:"member"`
	Group  string `json:"group"`
	Amount any    `json:"amount"`
	Month  string `json:"month"`
	Note   string `json:"note"`
}

func (in donationInput) validate() string {
	if normalize.Name(in.Member) == "" {
		return "Member reference is required."
	}
	if normalize.MonthLabel(in.Month) == "" {
		return "Month label is required."
	}
	return ""
}

func (in donationInput) toModel() models.Donation {
	return models.Donation{
		MemberRef: normalize.Name(in.Member),
		GroupRef:  normalize.Name(in.Group),
		Amount:    in.Amount,
		Month:     normalize.MonthLabel(in.Month),
		Note:      htmlsanitize.Strip(in.Note),
	}
}

// HandleCreateDonation handles POST /donations. Manually entered
// donations start pending and only count toward reports once an
// admin approves them.
func (h *Handler) HandleCreateDonation(w http.ResponseWriter, r *http.Request) {
	var req donationInput
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if msg := req.validate(); msg != "" {
		httpjson.Error(w, http.StatusBadRequest, msg)
		return
	}
	if _, ok := report.ParsePeriodLabel(req.Month); !ok {
		httpjson.Error(w, http.StatusBadRequest, "Month must look like \"August 2025\".")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := donationstore.New(h.DB).Insert(ctx, req.toModel())
	if err != nil {
		h.Log.Warn("create donation", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	httpjson.Write(w, http.StatusCreated, toDonationRow(created))
}
