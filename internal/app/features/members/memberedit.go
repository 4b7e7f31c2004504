// internal/app/features/members/memberedit.go
package members

import (
	"context"
	"net/http"

	memberstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/members"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/htmlsanitize"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/httpjson"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/normalize"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type editMemberRequest struct {
	Name       string `json:"name"`
	Group      string `json:"group"`
	Generation int    `json:"generation"`
}

// HandleEditMember handles PUT /members/{id}. The permanent unique ID
// is never touched by an edit.
func (h *Handler) HandleEditMember(w http.ResponseWriter, r *http.Request) {
	memberOID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Bad member id.")
		return
	}

	var req editMemberRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	name := normalize.Name(htmlsanitize.Strip(req.Name))
	if name == "" {
		httpjson.Error(w, http.StatusBadRequest, "Member name is required.")
		return
	}
	if req.Generation < 1 {
		req.Generation = 1
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := memberstore.New(h.DB)
	if _, err := store.GetByID(ctx, memberOID); err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.Error(w, http.StatusNotFound, "Member not found.")
			return
		}
		h.Log.Warn("GetByID(edit)", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	if err := store.Update(ctx, memberOID, name, normalize.Name(req.Group), req.Generation); err != nil {
		h.Log.Warn("update member", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	updated, err := store.GetByID(ctx, memberOID)
	if err != nil {
		h.Log.Warn("reload member", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}
	httpjson.Write(w, http.StatusOK, toMemberRow(updated))
}

// HandleRegenerateDisplayID handles POST /members/{id}/display-id. It
// mints a fresh event-facing ID while keeping the permanent one.
func (h *Handler) HandleRegenerateDisplayID(w http.ResponseWriter, r *http.Request) {
	memberOID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Bad member id.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := memberstore.New(h.DB).RegenerateDisplayID(ctx, memberOID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.Error(w, http.StatusNotFound, "Member not found.")
			return
		}
		h.Log.Warn("regenerate display id", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}
	httpjson.Write(w, http.StatusOK, toMemberRow(updated))
}
