// internal/app/features/groups/groupdelete.go
package groups

import (
	"context"
	"net/http"

	groupstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/groups"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/httpjson"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleDeleteGroup handles DELETE /groups/{id}.
//
// Members of the group keep their records but lose the group link, so
// their donations land in the unassigned bucket of future reports
// instead of disappearing.
func (h *Handler) HandleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	groupOID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Bad group id.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	db := h.DB

	store := groupstore.New(db)
	group, err := store.GetByID(ctx, groupOID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.Error(w, http.StatusNotFound, "Group not found.")
			return
		}
		h.Log.Warn("GetByID(delete)", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	// Detach members before removing the group itself.
	if _, err := db.Collection("members").UpdateMany(ctx,
		bson.M{"group_id": bson.M{"$in": []string{group.ID.Hex(), group.Name}}},
		bson.M{"$set": bson.M{"group_id": ""}},
	); err != nil {
		h.Log.Warn("detach members", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	if _, err := store.Delete(ctx, groupOID); err != nil {
		h.Log.Warn("delete group failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]string{"deleted": group.ID.Hex()})
}
