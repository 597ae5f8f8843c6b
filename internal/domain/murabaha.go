package domain

import (
	"github.com/segyhp/islamicfin-engine/pkg/utils"
	"github.com/shopspring/decimal"
)

type MurabahaRequest struct {
	AssetCost               decimal.Decimal  `json:"asset_cost" validate:"gt=0"`
	ProfitMarginPercentage  decimal.Decimal  `json:"profit_margin_percentage" validate:"gte=0"`
	ProfitMarginAmount      decimal.Decimal  `json:"profit_margin_amount" validate:"gte=0"`
	PaymentTermMonths       int              `json:"payment_term_months" validate:"gt=0"`
	DownPayment             decimal.Decimal  `json:"down_payment" validate:"gte=0"`
	ProcessingFee           decimal.Decimal  `json:"processing_fee" validate:"gte=0"`
	DocumentationFee        decimal.Decimal  `json:"documentation_fee" validate:"gte=0"`
	InsuranceCost           decimal.Decimal  `json:"insurance_cost" validate:"gte=0"`
	PaymentFrequency        PaymentFrequency `json:"payment_frequency" validate:"oneof=monthly quarterly semi-annual annual"`
	GracePeriodMonths       int              `json:"grace_period_months" validate:"gte=0"`
	EarlySettlementDiscount decimal.Decimal  `json:"early_settlement_discount" validate:"gte=0,lte=100"`
}

func (r *MurabahaRequest) ApplyDefaults() {
	r.PaymentFrequency = FrequencyMonthly
}

type MurabahaResult struct {
	AssetCost             decimal.Decimal  `json:"asset_cost"`
	TotalProfit           decimal.Decimal  `json:"total_profit"`
	TotalSalePrice        decimal.Decimal  `json:"total_sale_price"`
	ProcessingFee         decimal.Decimal  `json:"processing_fee"`
	DocumentationFee      decimal.Decimal  `json:"documentation_fee"`
	InsuranceCost         decimal.Decimal  `json:"insurance_cost"`
	DownPayment           decimal.Decimal  `json:"down_payment"`
	FinancedAmount        decimal.Decimal  `json:"financed_amount"`
	InstallmentAmount     decimal.Decimal  `json:"installment_amount"`
	NumberOfPayments      int              `json:"number_of_payments"`
	PaymentFrequency      PaymentFrequency `json:"payment_frequency"`
	TotalOfPayments       decimal.Decimal  `json:"total_of_payments"`
	TotalCost             decimal.Decimal  `json:"total_cost"`
	EarlySettlementAmount decimal.Decimal  `json:"early_settlement_amount"`
	EarlySettlementSaving decimal.Decimal  `json:"early_settlement_savings"`
	EffectiveProfitRate   decimal.Decimal  `json:"effective_profit_rate"`
}

func (r MurabahaResult) Rounded() MurabahaResult {
	return MurabahaResult{
		AssetCost:             utils.RoundMoney(r.AssetCost),
		TotalProfit:           utils.RoundMoney(r.TotalProfit),
		TotalSalePrice:        utils.RoundMoney(r.TotalSalePrice),
		ProcessingFee:         utils.RoundMoney(r.ProcessingFee),
		DocumentationFee:      utils.RoundMoney(r.DocumentationFee),
		InsuranceCost:         utils.RoundMoney(r.InsuranceCost),
		DownPayment:           utils.RoundMoney(r.DownPayment),
		FinancedAmount:        utils.RoundMoney(r.FinancedAmount),
		InstallmentAmount:     utils.RoundMoney(r.InstallmentAmount),
		NumberOfPayments:      r.NumberOfPayments,
		PaymentFrequency:      r.PaymentFrequency,
		TotalOfPayments:       utils.RoundMoney(r.TotalOfPayments),
		TotalCost:             utils.RoundMoney(r.TotalCost),
		EarlySettlementAmount: utils.RoundMoney(r.EarlySettlementAmount),
		EarlySettlementSaving: utils.RoundMoney(r.EarlySettlementSaving),
		EffectiveProfitRate:   utils.RoundMoney(r.EffectiveProfitRate),
	}
}
