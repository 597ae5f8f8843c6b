package calculator

import (
	"github.com/segyhp/islamicfin-engine/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	// TakafulBaseRate is the contribution per 1000 of coverage before loadings.
	TakafulBaseRate = decimal.RequireFromString("0.8")
	coverageUnit    = decimal.NewFromInt(1000)
)

// AgeFactor loads the base rate by age band.
func AgeFactor(age int) decimal.Decimal {
	switch {
	case age < 30:
		return decimal.RequireFromString("1.0")
	case age < 45:
		return decimal.RequireFromString("1.2")
	case age < 60:
		return decimal.RequireFromString("1.5")
	default:
		return decimal.RequireFromString("2.0")
	}
}

// HealthFactor loads the base rate by declared health; unknown is neutral.
func HealthFactor(status domain.HealthStatus) decimal.Decimal {
	switch status {
	case domain.HealthExcellent:
		return decimal.RequireFromString("0.9")
	case domain.HealthGood:
		return decimal.RequireFromString("1.0")
	case domain.HealthAverage:
		return decimal.RequireFromString("1.2")
	case domain.HealthPoor:
		return decimal.RequireFromString("1.5")
	case domain.HealthUnknown:
		return decimal.RequireFromString("1.0")
	}
	return decimal.RequireFromString("1.0")
}

func Takaful(req domain.TakafulRequest) (domain.TakafulResult, error) {
	status := domain.ParseHealthStatus(req.HealthStatus)
	ageFactor := AgeFactor(req.Age)
	healthFactor := HealthFactor(status)

	premiumRate := TakafulBaseRate.Mul(ageFactor).Mul(healthFactor)
	annual := req.CoverageAmount.Div(coverageUnit).Mul(premiumRate)

	return domain.TakafulResult{
		AnnualContribution: annual,
		PremiumRate:        premiumRate,
		AgeFactor:          ageFactor,
		HealthFactor:       healthFactor,
		HealthStatus:       status.String(),
		TermYears:          req.TermYears,
	}, nil
}
