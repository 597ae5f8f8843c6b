package domain

import (
	"github.com/segyhp/islamicfin-engine/pkg/utils"
	"github.com/shopspring/decimal"
)

// PensionRequest rates are annual percentages.
type PensionRequest struct {
	CurrentAge          int             `json:"current_age" validate:"gte=0"`
	RetirementAge       int             `json:"retirement_age" validate:"gtfield=CurrentAge"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution" validate:"gte=0"`
	ExpectedReturnRate  decimal.Decimal `json:"expected_return_rate" validate:"gte=0"`
	InflationRate       decimal.Decimal `json:"inflation_rate" validate:"gte=0"`
}

type PensionResult struct {
	FutureValue          decimal.Decimal `json:"future_value"`
	NominalFutureValue   decimal.Decimal `json:"nominal_future_value"`
	TotalContributions   decimal.Decimal `json:"total_contributions"`
	YearsUntilRetirement int             `json:"years_until_retirement"`
	InflationRate        decimal.Decimal `json:"inflation_rate"`
	MonthlyContribution  decimal.Decimal `json:"monthly_contribution"`
	ExpectedReturnRate   decimal.Decimal `json:"expected_return_rate"`
}

func (r PensionResult) Rounded() PensionResult {
	return PensionResult{
		FutureValue:          utils.RoundMoney(r.FutureValue),
		NominalFutureValue:   utils.RoundMoney(r.NominalFutureValue),
		TotalContributions:   utils.RoundMoney(r.TotalContributions),
		YearsUntilRetirement: r.YearsUntilRetirement,
		InflationRate:        r.InflationRate,
		MonthlyContribution:  utils.RoundMoney(r.MonthlyContribution),
		ExpectedReturnRate:   r.ExpectedReturnRate,
	}
}
