// internal/app/features/members/memberdelete.go
package members

import (
	"context"
	"net/http"

	memberstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/members"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/httpjson"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleDeleteMember handles DELETE /members/{id}. Donations keep
// their member reference so historic reports still show the money;
// the reference simply stops resolving to a profile.
func (h *Handler) HandleDeleteMember(w http.ResponseWriter, r *http.Request) {
	memberOID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Bad member id.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	n, err := memberstore.New(h.DB).Delete(ctx, memberOID)
	if err != nil {
		h.Log.Warn("delete member", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}
	if n == 0 {
		httpjson.Error(w, http.StatusNotFound, "Member not found.")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"deleted": memberOID.Hex()})
}
