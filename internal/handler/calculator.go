package handler

import (
	"context"
	"net/http"

	"github.com/segyhp/islamicfin-engine/internal/domain"
)

// Calculator runs the finance calculations.
type Calculator interface {
	Zakat(ctx context.Context, req *domain.ZakatRequest) (*domain.ZakatResult, error)
	Leasing(ctx context.Context, req *domain.LeasingRequest) (*domain.LeasingResult, error)
	ConvertRate(ctx context.Context, req *domain.RateConversionRequest) (*domain.RateConversion, error)
	Mudarabah(ctx context.Context, req *domain.MudarabahRequest) (*domain.MudarabahResult, error)
	CheckRatios(ctx context.Context, req *domain.RatioCheckRequest) (*domain.RatioCheck, error)
	Murabaha(ctx context.Context, req *domain.MurabahaRequest) (*domain.MurabahaResult, error)
	Istisna(ctx context.Context, req *domain.IstisnaRequest) (*domain.IstisnaResult, error)
	QardHasan(ctx context.Context, req *domain.QardHasanRequest) (*domain.QardHasanResult, error)
	Takaful(ctx context.Context, req *domain.TakafulRequest) (*domain.TakafulResult, error)
	Pension(ctx context.Context, req *domain.PensionRequest) (*domain.PensionResult, error)
	Partnership(ctx context.Context, req *domain.PartnershipRequest) (*domain.PartnershipResult, error)
}

type CalculatorHandler struct {
	service Calculator
}

func NewCalculatorHandler(service Calculator) *CalculatorHandler {
	return &CalculatorHandler{service: service}
}

// Zakat handles POST /api/v1/zakat
func (h *CalculatorHandler) Zakat(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.service.Zakat)
}

// Leasing handles POST /api/v1/leasing
func (h *CalculatorHandler) Leasing(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.service.Leasing)
}

// ConvertRate handles POST /api/v1/leasing/convert-rate
func (h *CalculatorHandler) ConvertRate(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.service.ConvertRate)
}

// Mudarabah handles POST /api/v1/mudarabah
func (h *CalculatorHandler) Mudarabah(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.service.Mudarabah)
}

// CheckRatios handles POST /api/v1/mudarabah/validate-ratios
func (h *CalculatorHandler) CheckRatios(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.service.CheckRatios)
}

// Murabaha handles POST /api/v1/murabaha
func (h *CalculatorHandler) Murabaha(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.service.Murabaha)
}

// Istisna handles POST /api/v1/istisna
func (h *CalculatorHandler) Istisna(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.service.Istisna)
}

// QardHasan handles POST /api/v1/qard-hasan
func (h *CalculatorHandler) QardHasan(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.service.QardHasan)
}

// Takaful handles POST /api/v1/takaful
func (h *CalculatorHandler) Takaful(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.service.Takaful)
}

// Pension handles POST /api/v1/pension-planner
func (h *CalculatorHandler) Pension(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.service.Pension)
}

// Partnership handles POST /api/v1/business-partnership-split
func (h *CalculatorHandler) Partnership(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.service.Partnership)
}
