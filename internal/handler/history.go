package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/segyhp/islamicfin-engine/internal/domain"
	"github.com/segyhp/islamicfin-engine/internal/service"
	"github.com/segyhp/islamicfin-engine/pkg/response"

	"github.com/gorilla/mux"
)

type HistoryReader interface {
	List(ctx context.Context, userID string, limit int) (*domain.HistoryResponse, error)
	Get(ctx context.Context, userID, id string) (*domain.CalculationRecord, error)
}

type HistoryHandler struct {
	service HistoryReader
}

func NewHistoryHandler(service HistoryReader) *HistoryHandler {
	return &HistoryHandler{service: service}
}

// List handles GET /api/v1/history?limit=N
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.BadRequest(w, "limit", "limit must be a positive integer")
			return
		}
		limit = n
	}

	history, err := h.service.List(r.Context(), service.UserIDFromContext(r.Context()), limit)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, history)
}

// Get handles GET /api/v1/history/{id}
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	record, err := h.service.Get(r.Context(), service.UserIDFromContext(r.Context()), id)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, record)
}
