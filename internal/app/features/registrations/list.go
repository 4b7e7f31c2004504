// internal/app/features/registrations/list.go
package registrations

import (
	"context"
	"net/http"
	"time"

	registrationstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/registrations"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/httpjson"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/timeouts"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/domain/models"
	"go.uber.org/zap"
)

type registrationRow struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	GroupRef         string     `json:"group,omitempty"`
	PaymentStatus    string     `json:"payment_status"`
	ContributeAmount int64      `json:"contribute_amount"`
	CheckedIn        bool       `json:"checked_in"`
	CheckedInAt      *time.Time `json:"checked_in_at,omitempty"`
}

func toRegistrationRow(reg models.Registration) registrationRow {
	return registrationRow{
		ID:               reg.ID.Hex(),
		Name:             reg.Name,
		GroupRef:         reg.GroupRef,
		PaymentStatus:    reg.PaymentStatus,
		ContributeAmount: reg.ContributeAmount,
		CheckedIn:        reg.CheckedIn,
		CheckedInAt:      reg.CheckedInAt,
	}
}

// ServeRegistrationsList handles GET /registrations.
func (h *Handler) ServeRegistrationsList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := registrationstore.New(h.DB).All(ctx)
	if err != nil {
		h.Log.Warn("list registrations", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	rows := make([]registrationRow, 0, len(all))
	for _, reg := range all {
		rows = append(rows, toRegistrationRow(reg))
	}
	httpjson.Write(w, http.StatusOK, rows)
}
