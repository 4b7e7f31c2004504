// internal/app/features/registrations/checkin.go
package registrations

import (
	"context"
	"net/http"

	registrationstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/registrations"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/httpjson"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/normalize"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/timeouts"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleCheckIn handles POST /registrations/{id}/checkin. A repeated
// scan of the same registration keeps the first check-in time.
func (h *Handler) HandleCheckIn(w http.ResponseWriter, r *http.Request) {
	regOID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Bad registration id.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := registrationstore.New(h.DB)
	if _, err := store.GetByID(ctx, regOID); err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.Error(w, http.StatusNotFound, "Registration not found.")
			return
		}
		h.Log.Warn("GetByID(checkin)", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	if err := store.CheckIn(ctx, regOID); err != nil {
		h.Log.Warn("check in", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	updated, err := store.GetByID(ctx, regOID)
	if err != nil {
		h.Log.Warn("reload registration", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}
	httpjson.Write(w, http.StatusOK, toRegistrationRow(updated))
}

type setPaymentRequest struct {
	Status string `json:"status"`
}

// HandleSetPaymentStatus handles POST /registrations/{id}/payment.
func (h *Handler) HandleSetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	regOID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Bad registration id.")
		return
	}

	var req setPaymentRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	status := normalize.PaymentStatus(req.Status)
	switch status {
	case models.PaymentPaid, models.PaymentPending, models.PaymentWaived:
	default:
		httpjson.Error(w, http.StatusBadRequest, "Payment status must be Paid, Pending, or Waived.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := registrationstore.New(h.DB)
	if _, err := store.GetByID(ctx, regOID); err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.Error(w, http.StatusNotFound, "Registration not found.")
			return
		}
		h.Log.Warn("GetByID(payment)", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	if err := store.SetPaymentStatus(ctx, regOID, status); err != nil {
		h.Log.Warn("set payment status", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	updated, err := store.GetByID(ctx, regOID)
	if err != nil {
		h.Log.Warn("reload registration", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}
	httpjson.Write(w, http.StatusOK, toRegistrationRow(updated))
}

// HandleDeleteRegistration handles DELETE /registrations/{id}.
func (h *Handler) HandleDeleteRegistration(w http.ResponseWriter, r *http.Request) {
	regOID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Bad registration id.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	n, err := registrationstore.New(h.DB).Delete(ctx, regOID)
	if err != nil {
		h.Log.Warn("delete registration", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}
	if n == 0 {
		httpjson.Error(w, http.StatusNotFound, "Registration not found.")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"deleted": regOID.Hex()})
}
