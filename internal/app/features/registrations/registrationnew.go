// internal/app/features/registrations/registrationnew.go
package registrations

import (
	"context"
	"net/http"

	registrationstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/registrations"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/htmlsanitize"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/httpjson"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/normalize"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/timeouts"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/domain/models"
	"go.uber.org/zap"
)

type createRegistrationRequest struct {
	Name             string `json:"name"`
	Group            string `json:"group"`
	ContributeAmount int64  `json:"contribute_amount"`
}

// HandleCreateRegistration handles POST /registrations. Payment
// starts pending until an admin marks it otherwise.
func (h *Handler) HandleCreateRegistration(w http.ResponseWriter, r *http.Request) {
	var req createRegistrationRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	name := normalize.Name(htmlsanitize.Strip(req.Name))
	if name == "" {
		httpjson.Error(w, http.StatusBadRequest, "Registrant name is required.")
		return
	}
	if req.ContributeAmount < 0 {
		httpjson.Error(w, http.StatusBadRequest, "Contribute amount cannot be negative.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := registrationstore.New(h.DB).Create(ctx, models.Registration{
		Name:             name,
		GroupRef:         normalize.Name(req.Group),
		ContributeAmount: req.ContributeAmount,
	})
	if err != nil {
		h.Log.Warn("create registration", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	httpjson.Write(w, http.StatusCreated, toRegistrationRow(created))
}
