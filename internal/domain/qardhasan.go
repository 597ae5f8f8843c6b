package domain

import (
	"github.com/segyhp/islamicfin-engine/pkg/utils"
	"github.com/shopspring/decimal"
)

// QardHasanRequest is an interest-free loan; the donation is voluntary.
type QardHasanRequest struct {
	LoanAmount          decimal.Decimal    `json:"loan_amount" validate:"gt=0"`
	RepaymentTermMonths int                `json:"repayment_term_months" validate:"gt=0"`
	RepaymentFrequency  RepaymentFrequency `json:"repayment_frequency" validate:"required,oneof=monthly quarterly"`
	OptionalDonation    decimal.Decimal    `json:"optional_donation" validate:"gte=0"`
}

type QardHasanResult struct {
	InstallmentAmount    decimal.Decimal `json:"installment_amount"`
	TotalDonation        decimal.Decimal `json:"total_donation"`
	TotalPayable         decimal.Decimal `json:"total_payable"`
	NumberOfInstallments int             `json:"number_of_installments"`
}

func (r QardHasanResult) Rounded() QardHasanResult {
	return QardHasanResult{
		InstallmentAmount:    utils.RoundMoney(r.InstallmentAmount),
		TotalDonation:        utils.RoundMoney(r.TotalDonation),
		TotalPayable:         utils.RoundMoney(r.TotalPayable),
		NumberOfInstallments: r.NumberOfInstallments,
	}
}
