// internal/app/features/groups/list.go
package groups

import (
	"context"
	"net/http"

	groupstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/groups"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/httpjson"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/timeouts"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/domain/models"
	"go.uber.org/zap"
)

type groupRow struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func toGroupRow(g models.Group) groupRow {
	return groupRow{
		ID:          g.ID.Hex(),
		Name:        g.Name,
		Description: g.Description,
	}
}

// ServeGroupsList handles GET /groups and returns every group sorted
// by name.
func (h *Handler) ServeGroupsList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := groupstore.New(h.DB).All(ctx)
	if err != nil {
		h.Log.Warn("list groups", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	rows := make([]groupRow, 0, len(all))
	for _, g := range all {
		rows = append(rows, toGroupRow(g))
	}
	httpjson.Write(w, http.StatusOK, rows)
}
