package calculator

import (
	"github.com/segyhp/islamicfin-engine/internal/domain"
	customError "github.com/segyhp/islamicfin-engine/pkg/errors"
	"github.com/segyhp/islamicfin-engine/pkg/utils"

	"github.com/shopspring/decimal"
)

func Murabaha(req domain.MurabahaRequest) (domain.MurabahaResult, error) {
	paymentsPerYear, ok := req.PaymentFrequency.PaymentsPerYear()
	if !ok {
		return domain.MurabahaResult{}, customError.WrapValidation("payment_frequency", "unsupported payment frequency: "+string(req.PaymentFrequency))
	}

	// A flat amount, when given, takes precedence over the percentage margin.
	totalProfit := utils.PercentOf(req.AssetCost, req.ProfitMarginPercentage)
	if req.ProfitMarginAmount.IsPositive() {
		totalProfit = req.ProfitMarginAmount
	}

	totalSalePrice := req.AssetCost.Add(totalProfit)
	fees := req.ProcessingFee.Add(req.DocumentationFee).Add(req.InsuranceCost)
	financedAmount := totalSalePrice.Add(fees).Sub(req.DownPayment)

	// Profit still accrues during the grace period, it only delays payments.
	effectiveTerm := req.PaymentTermMonths - req.GracePeriodMonths
	if effectiveTerm <= 0 {
		effectiveTerm = req.PaymentTermMonths
	}

	numberOfPayments := utils.CeilDiv(effectiveTerm*paymentsPerYear, 12)
	if numberOfPayments <= 0 {
		return domain.MurabahaResult{}, customError.WrapValidation("payment_term_months", "payment term yields no installments")
	}

	installment := utils.SplitEvenly(financedAmount, numberOfPayments)
	totalOfPayments := installment.Mul(decimal.NewFromInt(int64(numberOfPayments)))

	earlyAmount, earlySavings := decimal.Zero, decimal.Zero
	if req.EarlySettlementDiscount.IsPositive() {
		earlyAmount = financedAmount.Mul(decimal.NewFromInt(1).Sub(utils.Percent(req.EarlySettlementDiscount)))
		earlySavings = financedAmount.Sub(earlyAmount)
	}

	return domain.MurabahaResult{
		AssetCost:             req.AssetCost,
		TotalProfit:           totalProfit,
		TotalSalePrice:        totalSalePrice,
		ProcessingFee:         req.ProcessingFee,
		DocumentationFee:      req.DocumentationFee,
		InsuranceCost:         req.InsuranceCost,
		DownPayment:           req.DownPayment,
		FinancedAmount:        financedAmount,
		InstallmentAmount:     installment,
		NumberOfPayments:      numberOfPayments,
		PaymentFrequency:      req.PaymentFrequency,
		TotalOfPayments:       totalOfPayments,
		TotalCost:             req.DownPayment.Add(totalOfPayments).Add(fees),
		EarlySettlementAmount: earlyAmount,
		EarlySettlementSaving: earlySavings,
		EffectiveProfitRate:   utils.ShareOf(totalProfit, req.AssetCost),
	}, nil
}
