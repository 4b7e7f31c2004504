// internal/app/features/groups/groupedit.go
package groups

import (
	"context"
	"net/http"

	groupstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/groups"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/htmlsanitize"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/httpjson"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/normalize"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type editGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// HandleEditGroup handles PUT /groups/{id}.
func (h *Handler) HandleEditGroup(w http.ResponseWriter, r *http.Request) {
	groupOID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Bad group id.")
		return
	}

	var req editGroupRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	name := normalize.Name(htmlsanitize.Strip(req.Name))
	if name == "" {
		httpjson.Error(w, http.StatusBadRequest, "Group name is required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := groupstore.New(h.DB)
	if _, err := store.GetByID(ctx, groupOID); err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.Error(w, http.StatusNotFound, "Group not found.")
			return
		}
		h.Log.Warn("GetByID(edit)", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	if err := store.UpdateInfo(ctx, groupOID, name, htmlsanitize.Strip(req.Description)); err != nil {
		h.Log.Warn("update group", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	updated, err := store.GetByID(ctx, groupOID)
	if err != nil {
		h.Log.Warn("reload group", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}
	httpjson.Write(w, http.StatusOK, toGroupRow(updated))
}
