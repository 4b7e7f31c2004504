// internal/app/features/members/list.go
package members

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	memberstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/members"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/httpjson"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/paging"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/timeouts"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type memberRow struct {
	ID         string `json:"id"`
	UniqueID   string `json:"unique_id"`
	DisplayID  string `json:"display_id"`
	Name       string `json:"name"`
	GroupRef   string `json:"group,omitempty"`
	Generation int    `json:"generation"`
}

func toMemberRow(m models.Member) memberRow {
	return memberRow{
		ID:         m.ID.Hex(),
		UniqueID:   m.UniqueID,
		DisplayID:  m.DisplayID,
		Name:       m.Name,
		GroupRef:   m.GroupRef,
		Generation: m.Generation,
	}
}

type memberListResponse struct {
	Members []memberRow `json:"members"`
	Prev    string      `json:"prev,omitempty"`
	Next    string      `json:"next,omitempty"`
}

// ServeMembersList handles GET /members. Results are keyset-paged by
// folded name; pass the prev/next cursors back as ?before= or
// ?after= to walk the list.
func (h *Handler) ServeMembersList(w http.ResponseWriter, r *http.Request) {
	before := query.Get(r, "before")
	after := query.Get(r, "after")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	page, res, err := memberstore.New(h.DB).Page(ctx, before, after)
	if err != nil {
		h.Log.Warn("list members", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	resp := memberListResponse{Members: make([]memberRow, 0, len(page))}
	for _, m := range page {
		resp.Members = append(resp.Members, toMemberRow(m))
	}

	prev, next := paging.BuildCursors(page,
		func(m models.Member) string { return m.NameCI },
		func(m models.Member) primitive.ObjectID { return m.ID },
	)
	if res.HasPrev {
		resp.Prev = prev
	}
	if res.HasNext {
		resp.Next = next
	}

	httpjson.Write(w, http.StatusOK, resp)
}
