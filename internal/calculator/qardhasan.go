package calculator

import (
	"github.com/segyhp/islamicfin-engine/internal/domain"
	customError "github.com/segyhp/islamicfin-engine/pkg/errors"
	"github.com/segyhp/islamicfin-engine/pkg/utils"

	"github.com/shopspring/decimal"
)

// QardHasan spreads the principal and any voluntary donation evenly. No
// interest is charged.
func QardHasan(req domain.QardHasanRequest) (domain.QardHasanResult, error) {
	monthsPer, ok := req.RepaymentFrequency.MonthsPerInstallment()
	if !ok {
		return domain.QardHasanResult{}, customError.WrapValidation("repayment_frequency", "Invalid repayment frequency.")
	}
	if !req.LoanAmount.IsPositive() || req.RepaymentTermMonths <= 0 {
		return domain.QardHasanResult{}, customError.WrapValidation("loan_amount", "Invalid input values.")
	}

	count := utils.CeilDiv(req.RepaymentTermMonths, monthsPer)
	n := decimal.NewFromInt(int64(count))

	baseInstallment := utils.SplitEvenly(req.LoanAmount, count)
	donationPerInstallment := decimal.Zero
	if req.OptionalDonation.IsPositive() {
		donationPerInstallment = utils.SplitEvenly(req.OptionalDonation, count)
	}
	installment := baseInstallment.Add(donationPerInstallment)

	return domain.QardHasanResult{
		InstallmentAmount:    installment,
		TotalDonation:        donationPerInstallment.Mul(n),
		TotalPayable:         installment.Mul(n),
		NumberOfInstallments: count,
	}, nil
}
