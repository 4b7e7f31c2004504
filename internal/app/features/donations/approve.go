// internal/app/features/donations/approve.go
package donations

import (
	"context"
	"net/http"

	donationstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/donations"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/httpjson"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleApproveDonation handles POST /donations/{id}/approve.
// Approving an already-approved donation is a no-op, not an error.
func (h *Handler) HandleApproveDonation(w http.ResponseWriter, r *http.Request) {
	donationOID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Bad donation id.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := donationstore.New(h.DB)
	if _, err := store.GetByID(ctx, donationOID); err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.Error(w, http.StatusNotFound, "Donation not found.")
			return
		}
		h.Log.Warn("GetByID(approve)", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	if err := store.Approve(ctx, donationOID); err != nil {
		h.Log.Warn("approve donation", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	approved, err := store.GetByID(ctx, donationOID)
	if err != nil {
		h.Log.Warn("reload donation", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}
	httpjson.Write(w, http.StatusOK, toDonationRow(approved))
}
