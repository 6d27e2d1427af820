package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Suriyaprakashm14/BPTracker-Backend-Project/internal/middleware"
	"github.com/Suriyaprakashm14/BPTracker-Backend-Project/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles HTTP requests for spreadsheet export.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// HandleExport handles GET /export?start=&end= requests.
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	data, err := h.service.Export(r.Context(), user.ID, r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidDateRange) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	filename := fmt.Sprintf("bp_readings_%s.xlsx", time.Now().UTC().Format("20060102_150405"))

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
