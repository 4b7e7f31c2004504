// internal/app/features/donations/donationedit.go
package donations

import (
	"context"
	"net/http"

	donationstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/donations"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/htmlsanitize"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/httpjson"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/normalize"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// editDonationRequest uses pointers so an absent field means
// "leave it alone" while an empty string means "clear it".
type editDonationRequest struct {
	Member *string `json:"member"`
	Group  *string `json:"group"`
	Amount any     `json:"amount"`
	Month  *string `json:"month"`
	Status *string `json:"status"`
	Note   *string `json:"note"`
}

// HandleEditDonation handles PUT /donations/{id}.
func (h *Handler) HandleEditDonation(w http.ResponseWriter, r *http.Request) {
	donationOID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Bad donation id.")
		return
	}

	var req editDonationRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	params := donationstore.UpdateParams{Amount: req.Amount}
	if req.Member != nil {
		v := normalize.Name(*req.Member)
		if v == "" {
			httpjson.Error(w, http.StatusBadRequest, "Member reference cannot be cleared.")
			return
		}
		params.MemberRef = &v
	}
	if req.Group != nil {
		v := normalize.Name(*req.Group)
		params.GroupRef = &v
	}
	if req.Month != nil {
		v := normalize.MonthLabel(*req.Month)
		if v == "" {
			httpjson.Error(w, http.StatusBadRequest, "Month label cannot be cleared.")
			return
		}
		params.Month = &v
	}
	if req.Status != nil {
		v := normalize.Status(*req.Status)
		params.Status = &v
	}
	if req.Note != nil {
		v := htmlsanitize.Strip(*req.Note)
		params.Note = &v
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := donationstore.New(h.DB)
	if _, err := store.GetByID(ctx, donationOID); err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.Error(w, http.StatusNotFound, "Donation not found.")
			return
		}
		h.Log.Warn("GetByID(edit)", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	if err := store.Update(ctx, donationOID, params); err != nil {
		h.Log.Warn("update donation", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	updated, err := store.GetByID(ctx, donationOID)
	if err != nil {
		h.Log.Warn("reload donation", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}
	httpjson.Write(w, http.StatusOK, toDonationRow(updated))
}

// HandleDeleteDonation handles DELETE /donations/{id}.
func (h *Handler) HandleDeleteDonation(w http.ResponseWriter, r *http.Request) {
	donationOID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Bad donation id.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	n, err := donationstore.New(h.DB).Delete(ctx, donationOID)
	if err != nil {
		h.Log.Warn("delete donation", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}
	if n == 0 {
		httpjson.Error(w, http.StatusNotFound, "Donation not found.")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"deleted": donationOID.Hex()})
}
