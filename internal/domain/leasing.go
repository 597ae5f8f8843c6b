package domain

import (
	"github.com/segyhp/islamicfin-engine/pkg/utils"
	"github.com/shopspring/decimal"
)

const (
	DefaultLeaseTermMonths = 36
	DefaultAnnualMileage   = 12000
	DefaultResidualPercent = 60
)

// LeasingRequest describes a vehicle lease. Exactly one of MoneyFactor and
// InterestRate is needed; when both are sent MoneyFactor wins.
type LeasingRequest struct {
	VehiclePrice            decimal.Decimal  `json:"vehicle_price" validate:"gt=0"`
	DownPayment             decimal.Decimal  `json:"down_payment" validate:"gte=0"`
	TradeInValue            decimal.Decimal  `json:"trade_in_value" validate:"gte=0"`
	LeaseTermMonths         int              `json:"lease_term_months" validate:"gt=0"`
	AnnualMileage           int              `json:"annual_mileage" validate:"gt=0"`
	ResidualValuePercentage decimal.Decimal  `json:"residual_value_percentage" validate:"gt=0,lte=100"`
	MoneyFactor             *decimal.Decimal `json:"money_factor,omitempty" validate:"omitempty,gte=0"`
	InterestRate            *decimal.Decimal `json:"interest_rate,omitempty" validate:"omitempty,gte=0"`
	SalesTaxRate            decimal.Decimal  `json:"sales_tax_rate" validate:"gte=0,lte=50"`
	AcquisitionFee          decimal.Decimal  `json:"acquisition_fee" validate:"gte=0"`
	DispositionFee          decimal.Decimal  `json:"disposition_fee" validate:"gte=0"`
	SecurityDeposit         decimal.Decimal  `json:"security_deposit" validate:"gte=0"`
	FirstMonthPayment       bool             `json:"first_month_payment"`
	GapInsurance            decimal.Decimal  `json:"gap_insurance" validate:"gte=0"`
	ExtendedWarranty        decimal.Decimal  `json:"extended_warranty" validate:"gte=0"`
	MaintenancePackage      decimal.Decimal  `json:"maintenance_package" validate:"gte=0"`
}

// ApplyDefaults fills the lease terms a caller may omit.
func (r *LeasingRequest) ApplyDefaults() {
	r.LeaseTermMonths = DefaultLeaseTermMonths
	r.AnnualMileage = DefaultAnnualMileage
	r.ResidualValuePercentage = decimal.NewFromInt(DefaultResidualPercent)
}

type LeaseAdditionalCosts struct {
	AcquisitionFee     decimal.Decimal `json:"acquisition_fee"`
	DispositionFee     decimal.Decimal `json:"disposition_fee"`
	SecurityDeposit    decimal.Decimal `json:"security_deposit"`
	GapInsurance       decimal.Decimal `json:"gap_insurance"`
	ExtendedWarranty   decimal.Decimal `json:"extended_warranty"`
	MaintenancePackage decimal.Decimal `json:"maintenance_package"`
}

type LeasingResult struct {
	MonthlyPayment      decimal.Decimal `json:"monthly_payment"`
	DepreciationPayment decimal.Decimal `json:"depreciation_payment"`
	FinancePayment      decimal.Decimal `json:"finance_payment"`
	MonthlyTax          decimal.Decimal `json:"monthly_tax"`

	VehiclePrice      decimal.Decimal `json:"vehicle_price"`
	CapitalizedCost   decimal.Decimal `json:"capitalized_cost"`
	ResidualValue     decimal.Decimal `json:"residual_value"`
	TotalDepreciation decimal.Decimal `json:"total_depreciation"`

	MoneyFactor        decimal.Decimal `json:"money_factor"`
	AnnualInterestRate decimal.Decimal `json:"annual_interest_rate"`

	DueAtSigning    decimal.Decimal `json:"due_at_signing"`
	TotalOfPayments decimal.Decimal `json:"total_of_payments"`
	TotalLeaseCost  decimal.Decimal `json:"total_lease_cost"`

	MonthlyMileageLimit decimal.Decimal      `json:"monthly_mileage_limit"`
	DispositionFee      decimal.Decimal      `json:"disposition_fee"`
	AdditionalCosts     LeaseAdditionalCosts `json:"additional_costs"`
}

func (r LeasingResult) Rounded() LeasingResult {
	return LeasingResult{
		MonthlyPayment:      utils.RoundMoney(r.MonthlyPayment),
		DepreciationPayment: utils.RoundMoney(r.DepreciationPayment),
		FinancePayment:      utils.RoundMoney(r.FinancePayment),
		MonthlyTax:          utils.RoundMoney(r.MonthlyTax),
		VehiclePrice:        utils.RoundMoney(r.VehiclePrice),
		CapitalizedCost:     utils.RoundMoney(r.CapitalizedCost),
		ResidualValue:       utils.RoundMoney(r.ResidualValue),
		TotalDepreciation:   utils.RoundMoney(r.TotalDepreciation),
		MoneyFactor:         utils.RoundRate(r.MoneyFactor),
		AnnualInterestRate:  utils.RoundMoney(r.AnnualInterestRate),
		DueAtSigning:        utils.RoundMoney(r.DueAtSigning),
		TotalOfPayments:     utils.RoundMoney(r.TotalOfPayments),
		TotalLeaseCost:      utils.RoundMoney(r.TotalLeaseCost),
		MonthlyMileageLimit: r.MonthlyMileageLimit.Round(0),
		DispositionFee:      utils.RoundMoney(r.DispositionFee),
		AdditionalCosts: LeaseAdditionalCosts{
			AcquisitionFee:     utils.RoundMoney(r.AdditionalCosts.AcquisitionFee),
			DispositionFee:     utils.RoundMoney(r.AdditionalCosts.DispositionFee),
			SecurityDeposit:    utils.RoundMoney(r.AdditionalCosts.SecurityDeposit),
			GapInsurance:       utils.RoundMoney(r.AdditionalCosts.GapInsurance),
			ExtendedWarranty:   utils.RoundMoney(r.AdditionalCosts.ExtendedWarranty),
			MaintenancePackage: utils.RoundMoney(r.AdditionalCosts.MaintenancePackage),
		},
	}
}

// RateConversionRequest converts between an annual rate and a money factor.
type RateConversionRequest struct {
	InterestRate *decimal.Decimal `json:"interest_rate,omitempty" validate:"omitempty,gte=0"`
	MoneyFactor  *decimal.Decimal `json:"money_factor,omitempty" validate:"omitempty,gte=0"`
}

type RateConversion struct {
	InterestRate decimal.Decimal `json:"interest_rate"`
	MoneyFactor  decimal.Decimal `json:"money_factor"`
}

func (r RateConversion) Rounded() RateConversion {
	return RateConversion{
		InterestRate: utils.RoundMoney(r.InterestRate),
		MoneyFactor:  utils.RoundRate(r.MoneyFactor),
	}
}
