package calculator

import (
	"github.com/segyhp/islamicfin-engine/internal/domain"
	customError "github.com/segyhp/islamicfin-engine/pkg/errors"
	"github.com/segyhp/islamicfin-engine/pkg/utils"

	"github.com/shopspring/decimal"
)

var (
	one          = decimal.NewFromInt(1)
	monthsInYear = decimal.NewFromInt(12)
)

// Pension projects monthly contributions as an ordinary annuity and deflates
// the result to today's money.
func Pension(req domain.PensionRequest) (domain.PensionResult, error) {
	years := req.RetirementAge - req.CurrentAge
	if years <= 0 {
		return domain.PensionResult{}, customError.WrapValidation("retirement_age", "retirement_age must be greater than current_age")
	}
	months := decimal.NewFromInt(int64(years * 12))

	monthlyRate := utils.Percent(req.ExpectedReturnRate).Div(monthsInYear)

	var nominal decimal.Decimal
	if monthlyRate.IsZero() {
		nominal = req.MonthlyContribution.Mul(months)
	} else {
		growth := one.Add(monthlyRate).Pow(months)
		nominal = req.MonthlyContribution.Mul(growth.Sub(one).Div(monthlyRate))
	}

	inflationAdjustment := one.Add(utils.Percent(req.InflationRate)).Pow(decimal.NewFromInt(int64(years)))

	return domain.PensionResult{
		FutureValue:          nominal.Div(inflationAdjustment),
		NominalFutureValue:   nominal,
		TotalContributions:   req.MonthlyContribution.Mul(months),
		YearsUntilRetirement: years,
		InflationRate:        req.InflationRate,
		MonthlyContribution:  req.MonthlyContribution,
		ExpectedReturnRate:   req.ExpectedReturnRate,
	}, nil
}
