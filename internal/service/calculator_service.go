package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segyhp/islamicfin-engine/internal/calculator"
	"github.com/segyhp/islamicfin-engine/internal/domain"
	"github.com/segyhp/islamicfin-engine/internal/metrics"
	"github.com/segyhp/islamicfin-engine/internal/repository"
	"github.com/segyhp/islamicfin-engine/internal/validation"
	customError "github.com/segyhp/islamicfin-engine/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Operation names, used for metrics labels and history records.
const (
	OpZakat          = "zakat"
	OpLeasing        = "leasing"
	OpRateConversion = "leasing_rate_conversion"
	OpMudarabah      = "mudarabah"
	OpRatioCheck     = "mudarabah_ratio_check"
	OpMurabaha       = "murabaha"
	OpIstisna        = "istisna"
	OpQardHasan      = "qard_hasan"
	OpTakaful        = "takaful"
	OpPension        = "pension"
	OpPartnership    = "partnership"
)

// Operations lists every calculator operation.
var Operations = []string{
	OpZakat, OpLeasing, OpRateConversion, OpMudarabah, OpRatioCheck, OpMurabaha,
	OpIstisna, OpQardHasan, OpTakaful, OpPension, OpPartnership,
}

type CalculatorService struct {
	validator *validation.Validator
	history   repository.HistoryRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewCalculatorService wires the calculators. history may be nil, in which
// case nothing is recorded.
func NewCalculatorService(v *validation.Validator, history repository.HistoryRepository, logger *zap.Logger) *CalculatorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalculatorService{
		validator: v,
		history:   history,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *CalculatorService) Zakat(ctx context.Context, req *domain.ZakatRequest) (*domain.ZakatResult, error) {
	return calculate(ctx, s, OpZakat, req, calculator.Zakat)
}

func (s *CalculatorService) Leasing(ctx context.Context, req *domain.LeasingRequest) (*domain.LeasingResult, error) {
	return calculate(ctx, s, OpLeasing, req, calculator.Leasing)
}

func (s *CalculatorService) ConvertRate(ctx context.Context, req *domain.RateConversionRequest) (*domain.RateConversion, error) {
	return calculate(ctx, s, OpRateConversion, req, calculator.ConvertRate)
}

func (s *CalculatorService) Mudarabah(ctx context.Context, req *domain.MudarabahRequest) (*domain.MudarabahResult, error) {
	return calculate(ctx, s, OpMudarabah, req, calculator.Mudarabah)
}

func (s *CalculatorService) CheckRatios(ctx context.Context, req *domain.RatioCheckRequest) (*domain.RatioCheck, error) {
	return calculate(ctx, s, OpRatioCheck, req, calculator.CheckRatios)
}

func (s *CalculatorService) Murabaha(ctx context.Context, req *domain.MurabahaRequest) (*domain.MurabahaResult, error) {
	return calculate(ctx, s, OpMurabaha, req, calculator.Murabaha)
}

func (s *CalculatorService) Istisna(ctx context.Context, req *domain.IstisnaRequest) (*domain.IstisnaResult, error) {
	return calculate(ctx, s, OpIstisna, req, calculator.Istisna)
}

func (s *CalculatorService) QardHasan(ctx context.Context, req *domain.QardHasanRequest) (*domain.QardHasanResult, error) {
	return calculate(ctx, s, OpQardHasan, req, calculator.QardHasan)
}

func (s *CalculatorService) Takaful(ctx context.Context, req *domain.TakafulRequest) (*domain.TakafulResult, error) {
	return calculate(ctx, s, OpTakaful, req, calculator.Takaful)
}

func (s *CalculatorService) Pension(ctx context.Context, req *domain.PensionRequest) (*domain.PensionResult, error) {
	return calculate(ctx, s, OpPension, req, calculator.Pension)
}

func (s *CalculatorService) Partnership(ctx context.Context, req *domain.PartnershipRequest) (*domain.PartnershipResult, error) {
	return calculate(ctx, s, OpPartnership, req, calculator.Partnership)
}

type rounder[T any] interface {
	Rounded() T
}

// calculate runs one decoded request through validation, the formula and
// rounding, then records it when a caller identity is known.
func calculate[Req any, Res rounder[Res]](
	ctx context.Context,
	s *CalculatorService,
	operation string,
	req *Req,
	formula func(Req) (Res, error),
) (*Res, error) {
	start := s.now()
	defer func() {
		metrics.CalculationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	if req == nil {
		metrics.Calculations.WithLabelValues(operation, metrics.OutcomeInvalid).Inc()
		return nil, customError.WrapValidation("body", "request body is required")
	}

	if err := s.validator.Struct(req); err != nil {
		metrics.Calculations.WithLabelValues(operation, metrics.OutcomeInvalid).Inc()
		return nil, err
	}

	result, err := formula(*req)
	if err != nil {
		outcome := metrics.OutcomeError
		if customError.IsValidation(err) {
			outcome = metrics.OutcomeInvalid
		}
		metrics.Calculations.WithLabelValues(operation, outcome).Inc()
		return nil, err
	}

	rounded := result.Rounded()
	metrics.Calculations.WithLabelValues(operation, metrics.OutcomeSuccess).Inc()

	s.record(ctx, operation, req, rounded)
	return &rounded, nil
}

// record appends an audit entry. Failures are logged and never fail the
// calculation.
func (s *CalculatorService) record(ctx context.Context, operation string, input, output interface{}) {
	userID := UserIDFromContext(ctx)
	if s.history == nil || userID == "" {
		return
	}

	in, err := json.Marshal(input)
	if err != nil {
		s.logger.Warn("failed to encode calculation input", zap.String("operation", operation), zap.Error(err))
		return
	}
	out, err := json.Marshal(output)
	if err != nil {
		s.logger.Warn("failed to encode calculation output", zap.String("operation", operation), zap.Error(err))
		return
	}

	record := &domain.CalculationRecord{
		ID:         uuid.New(),
		UserID:     userID,
		Calculator: operation,
		Input:      in,
		Output:     out,
		CreatedAt:  s.now().UTC(),
	}

	if err := s.history.Create(ctx, record); err != nil {
		metrics.HistoryWrites.WithLabelValues(metrics.OutcomeError).Inc()
		s.logger.Warn("failed to record calculation",
			zap.String("operation", operation),
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return
	}
	metrics.HistoryWrites.WithLabelValues(metrics.OutcomeSuccess).Inc()
}
