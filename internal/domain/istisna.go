package domain

import (
	"github.com/segyhp/islamicfin-engine/pkg/utils"
	"github.com/shopspring/decimal"
)

type IstisnaRequest struct {
	ManufacturingCost      decimal.Decimal `json:"manufacturing_cost" validate:"gt=0"`
	ProfitMarginPercentage decimal.Decimal `json:"profit_margin_percentage" validate:"gte=0"`
	DeliveryPeriodMonths   int             `json:"delivery_period_months" validate:"gt=0"`
	PaymentSchedule        PaymentSchedule `json:"payment_schedule" validate:"required,oneof=monthly quarterly semi-annual lump-sum"`
	AdvancePayment         decimal.Decimal `json:"advance_payment" validate:"gte=0"`
	AdditionalCosts        decimal.Decimal `json:"additional_costs" validate:"gte=0"`
}

type IstisnaResult struct {
	TotalSalePrice    decimal.Decimal `json:"total_sale_price"`
	AdvancePayment    decimal.Decimal `json:"advance_payment"`
	FinancedAmount    decimal.Decimal `json:"financed_amount"`
	InstallmentAmount decimal.Decimal `json:"installment_amount"`
	NumberOfPayments  int             `json:"number_of_payments"`
	ProfitAmount      decimal.Decimal `json:"profit_amount"`
	PaymentSchedule   PaymentSchedule `json:"payment_schedule"`
}

func (r IstisnaResult) Rounded() IstisnaResult {
	return IstisnaResult{
		TotalSalePrice:    utils.RoundMoney(r.TotalSalePrice),
		AdvancePayment:    utils.RoundMoney(r.AdvancePayment),
		FinancedAmount:    utils.RoundMoney(r.FinancedAmount),
		InstallmentAmount: utils.RoundMoney(r.InstallmentAmount),
		NumberOfPayments:  r.NumberOfPayments,
		ProfitAmount:      utils.RoundMoney(r.ProfitAmount),
		PaymentSchedule:   r.PaymentSchedule,
	}
}
