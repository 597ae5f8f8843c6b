package domain

import (
	"github.com/segyhp/islamicfin-engine/pkg/utils"
	"github.com/shopspring/decimal"
)

type TakafulRequest struct {
	Age            int             `json:"age" validate:"gt=0"`
	CoverageAmount decimal.Decimal `json:"coverage_amount" validate:"gt=0"`
	TermYears      int             `json:"term_years" validate:"gt=0"`
	HealthStatus   string          `json:"health_status"`
}

type TakafulResult struct {
	AnnualContribution decimal.Decimal `json:"annual_contribution"`
	PremiumRate        decimal.Decimal `json:"premium_rate"`
	AgeFactor          decimal.Decimal `json:"age_factor"`
	HealthFactor       decimal.Decimal `json:"health_factor"`
	HealthStatus       string          `json:"health_status"`
	TermYears          int             `json:"term_years"`
}

func (r TakafulResult) Rounded() TakafulResult {
	return TakafulResult{
		AnnualContribution: utils.RoundMoney(r.AnnualContribution),
		PremiumRate:        utils.RoundRate(r.PremiumRate),
		AgeFactor:          r.AgeFactor,
		HealthFactor:       r.HealthFactor,
		HealthStatus:       r.HealthStatus,
		TermYears:          r.TermYears,
	}
}
