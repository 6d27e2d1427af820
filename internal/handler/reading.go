package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Suriyaprakashm14/BPTracker-Backend-Project/internal/middleware"
	"github.com/Suriyaprakashm14/BPTracker-Backend-Project/internal/model"
	"github.com/Suriyaprakashm14/BPTracker-Backend-Project/internal/service"
)

// ReadingHandler handles HTTP requests for the reading lifecycle.
type ReadingHandler struct {
	service *service.ReadingService
}

// NewReadingHandler creates a new ReadingHandler.
func NewReadingHandler(svc *service.ReadingService) *ReadingHandler {
	return &ReadingHandler{service: svc}
}

// HandleSubmit handles POST /readings requests.
func (h *ReadingHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	req, ok := decodeReadingRequest(w, r)
	if !ok {
		return
	}

	if _, err := h.service.Submit(r.Context(), user.ID, req); err != nil {
		if errors.Is(err, service.ErrInvalidMeasurement) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, okResponse())
}

// HandleUpdate handles PUT /readings/{id} requests.
func (h *ReadingHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	readingID, ok := readingIDParam(w, r)
	if !ok {
		return
	}

	req, ok := decodeReadingRequest(w, r)
	if !ok {
		return
	}

	if err := h.service.Update(r.Context(), user.ID, readingID, req); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidMeasurement):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrReadingNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, okResponse())
}

// HandleDelete handles DELETE /readings/{id} requests.
func (h *ReadingHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	readingID, ok := readingIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), user.ID, readingID); err != nil {
		if errors.Is(err, service.ErrReadingNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, okResponse())
}

// HandleHistory handles GET /readings requests.
func (h *ReadingHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	history, err := h.service.History(r.Context(), user.ID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.HistoryResponse{History: history})
}

func decodeReadingRequest(w http.ResponseWriter, r *http.Request) (model.ReadingRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.ReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return model.ReadingRequest{}, false
	}

	return req, true
}

// readingIDParam parses the {id} route parameter. A non-numeric id cannot
// name any reading, so it gets the same 404 as an unknown one.
func readingIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse("not found"))
		return 0, false
	}
	return id, true
}
