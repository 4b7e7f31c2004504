// internal/app/features/groups/groupnew.go
package groups

import (
	"context"
	"errors"
	"net/http"

	groupstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/groups"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/htmlsanitize"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/httpjson"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/normalize"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/timeouts"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/domain/models"
	"go.uber.org/zap"
)

type createGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// HandleCreateGroup handles POST /groups.
func (h *Handler) HandleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
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

	created, err := groupstore.New(h.DB).Create(ctx, models.Group{
		Name:        name,
		Description: htmlsanitize.Strip(req.Description),
	})
	if err != nil {
		if errors.Is(err, groupstore.ErrDuplicateGroupName) {
			httpjson.Error(w, http.StatusConflict, "A group with that name already exists.")
			return
		}
		h.Log.Warn("create group", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	httpjson.Write(w, http.StatusCreated, toGroupRow(created))
}
