package calculator

import (
	"github.com/segyhp/islamicfin-engine/internal/domain"
	customError "github.com/segyhp/islamicfin-engine/pkg/errors"
	"github.com/segyhp/islamicfin-engine/pkg/utils"

	"github.com/shopspring/decimal"
)

// moneyFactorDivisor links the two lease rate notations: APR = factor * 2400.
var moneyFactorDivisor = decimal.NewFromInt(2400)

// MoneyFactorFromRate converts an annual percentage rate into a money factor.
func MoneyFactorFromRate(rate decimal.Decimal) decimal.Decimal {
	return rate.Div(moneyFactorDivisor)
}

// RateFromMoneyFactor converts a money factor into an annual percentage rate.
func RateFromMoneyFactor(factor decimal.Decimal) decimal.Decimal {
	return factor.Mul(moneyFactorDivisor)
}

// ConvertRate fills in whichever notation the caller left out.
func ConvertRate(req domain.RateConversionRequest) (domain.RateConversion, error) {
	switch {
	case req.InterestRate != nil:
		return domain.RateConversion{
			InterestRate: *req.InterestRate,
			MoneyFactor:  MoneyFactorFromRate(*req.InterestRate),
		}, nil
	case req.MoneyFactor != nil:
		return domain.RateConversion{
			InterestRate: RateFromMoneyFactor(*req.MoneyFactor),
			MoneyFactor:  *req.MoneyFactor,
		}, nil
	}
	return domain.RateConversion{}, customError.WrapValidation("interest_rate", "Either interest_rate or money_factor must be provided")
}

func Leasing(req domain.LeasingRequest) (domain.LeasingResult, error) {
	var moneyFactor, annualRate decimal.Decimal
	switch {
	case req.MoneyFactor != nil:
		moneyFactor = *req.MoneyFactor
		annualRate = RateFromMoneyFactor(moneyFactor)
	case req.InterestRate != nil:
		annualRate = *req.InterestRate
		moneyFactor = MoneyFactorFromRate(annualRate)
	default:
		return domain.LeasingResult{}, customError.WrapValidation("money_factor", "Either money_factor or interest_rate must be provided")
	}

	if req.LeaseTermMonths <= 0 {
		return domain.LeasingResult{}, customError.WrapValidation("lease_term_months", "lease_term_months must be greater than 0")
	}
	term := decimal.NewFromInt(int64(req.LeaseTermMonths))

	capitalizedCost := req.VehiclePrice.Sub(req.DownPayment).Sub(req.TradeInValue)
	residualValue := utils.PercentOf(req.VehiclePrice, req.ResidualValuePercentage)
	totalDepreciation := capitalizedCost.Sub(residualValue)

	depreciationPayment := totalDepreciation.Div(term)
	financePayment := capitalizedCost.Add(residualValue).Mul(moneyFactor)
	monthlyTax := utils.PercentOf(depreciationPayment.Add(financePayment), req.SalesTaxRate)
	monthlyPayment := depreciationPayment.Add(financePayment).Add(monthlyTax)

	dueAtSigning := req.DownPayment.Add(req.SecurityDeposit).Add(req.AcquisitionFee)
	if req.FirstMonthPayment {
		dueAtSigning = dueAtSigning.Add(monthlyPayment)
	}

	totalOfPayments := monthlyPayment.Mul(term)
	totalLeaseCost := totalOfPayments.
		Add(dueAtSigning).
		Add(req.DispositionFee).
		Add(req.GapInsurance).
		Add(req.ExtendedWarranty).
		Add(req.MaintenancePackage)

	return domain.LeasingResult{
		MonthlyPayment:      monthlyPayment,
		DepreciationPayment: depreciationPayment,
		FinancePayment:      financePayment,
		MonthlyTax:          monthlyTax,
		VehiclePrice:        req.VehiclePrice,
		CapitalizedCost:     capitalizedCost,
		ResidualValue:       residualValue,
		TotalDepreciation:   totalDepreciation,
		MoneyFactor:         moneyFactor,
		AnnualInterestRate:  annualRate,
		DueAtSigning:        dueAtSigning,
		TotalOfPayments:     totalOfPayments,
		TotalLeaseCost:      totalLeaseCost,
		MonthlyMileageLimit: decimal.NewFromInt(int64(req.AnnualMileage)).Div(decimal.NewFromInt(12)),
		DispositionFee:      req.DispositionFee,
		AdditionalCosts: domain.LeaseAdditionalCosts{
			AcquisitionFee:     req.AcquisitionFee,
			DispositionFee:     req.DispositionFee,
			SecurityDeposit:    req.SecurityDeposit,
			GapInsurance:       req.GapInsurance,
			ExtendedWarranty:   req.ExtendedWarranty,
			MaintenancePackage: req.MaintenancePackage,
		},
	}, nil
}
