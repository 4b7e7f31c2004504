// internal/app/features/members/membernew.go
package members

import (
	"context"
	"errors"
	"net/http"

	memberstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/members"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/htmlsanitize"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/httpjson"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/normalize"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/timeouts"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/domain/models"
	"go.uber.org/zap"
)

type createMemberRequest struct {
	Name       string `json:"name"`
	Group      string `json:"group"`
	Generation int    `json:"generation"`
}

// HandleCreateMember handles POST /members. The permanent and display
// identifiers are minted server side; callers never supply them.
func (h *Handler) HandleCreateMember(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
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

	created, err := memberstore.New(h.DB).Create(ctx, models.Member{
		Name:       name,
		GroupRef:   normalize.Name(req.Group),
		Generation: req.Generation,
	})
	if err != nil {
		if errors.Is(err, memberstore.ErrDuplicateUniqueID) {
			httpjson.Error(w, http.StatusConflict, "Could not mint a unique member ID; try again.")
			return
		}
		h.Log.Warn("create member", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	httpjson.Write(w, http.StatusCreated, toMemberRow(created))
}
