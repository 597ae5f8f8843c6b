package handler

import (
	"context"
	"net/http"

	"github.com/segyhp/islamicfin-engine/internal/domain"
	"github.com/segyhp/islamicfin-engine/pkg/response"
)

type PriceProvider interface {
	MetalPrices(ctx context.Context) (*domain.MetalPrices, error)
	ExchangeRate(ctx context.Context) (*domain.ExchangeRate, error)
}

type PriceHandler struct {
	service PriceProvider
}

func NewPriceHandler(service PriceProvider) *PriceHandler {
	return &PriceHandler{service: service}
}

// MetalPrices handles GET /api/v1/prices/metals
func (h *PriceHandler) MetalPrices(w http.ResponseWriter, r *http.Request) {
	prices, err := h.service.MetalPrices(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, prices)
}

// ExchangeRate handles GET /api/v1/prices/exchange-rate
func (h *PriceHandler) ExchangeRate(w http.ResponseWriter, r *http.Request) {
	rate, err := h.service.ExchangeRate(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, rate)
}
