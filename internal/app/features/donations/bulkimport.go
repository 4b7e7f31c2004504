// internal/app/features/donations/bulkimport.go
package donations

import (
	"context"
	"fmt"
	"net/http"

	donationstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/donations"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/httpjson"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/timeouts"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/domain/models"
	"go.uber.org/zap"
)

type bulkImportRequest struct {
	Donations []donationInput `json:"donations"`
}

type bulkImportResponse struct {
	BatchID  string `json:"batch_id"`
	Imported int    `json:"imported"`
}

// HandleBulkImport handles POST /donations/bulk. The whole batch is
// validated before anything is written, lands as approved, and every
// row is stamped with the same batch ID so a bad import can be found
// and corrected as a unit.
func (h *Handler) HandleBulkImport(w http.ResponseWriter, r *http.Request) {
	var req bulkImportRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Donations) == 0 {
		httpjson.Error(w, http.StatusBadRequest, "No donations to import.")
		return
	}

	rows := make([]models.Donation, 0, len(req.Donations))
	for i, in := range req.Donations {
		if msg := in.validate(); msg != "" {
			httpjson.Error(w, http.StatusBadRequest, fmt.Sprintf("Row %d: %s", i+1, msg))
			return
		}
		rows = append(rows, in.toModel())
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch())
	defer cancel()

	batchID, n, err := donationstore.New(h.DB).InsertMany(ctx, rows)
	if err != nil {
		h.Log.Warn("bulk import", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred.")
		return
	}

	h.Log.Info("bulk import complete",
		zap.String("batch_id", batchID),
		zap.Int("imported", n),
	)
	httpjson.Write(w, http.StatusCreated, bulkImportResponse{BatchID: batchID, Imported: n})
}
