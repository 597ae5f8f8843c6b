package calculator

import (
	"github.com/segyhp/islamicfin-engine/internal/domain"
	customError "github.com/segyhp/islamicfin-engine/pkg/errors"
	"github.com/segyhp/islamicfin-engine/pkg/utils"
)

func Istisna(req domain.IstisnaRequest) (domain.IstisnaResult, error) {
	interval, ok := req.PaymentSchedule.IntervalMonths(req.DeliveryPeriodMonths)
	if !ok {
		return domain.IstisnaResult{}, customError.WrapValidation("payment_schedule", "Invalid payment schedule: "+string(req.PaymentSchedule))
	}

	numberOfPayments := 1
	if req.PaymentSchedule != domain.ScheduleLumpSum {
		numberOfPayments = utils.CeilDiv(req.DeliveryPeriodMonths, interval)
	}
	if numberOfPayments <= 0 {
		return domain.IstisnaResult{}, customError.WrapValidation("delivery_period_months", "delivery period yields no payments")
	}

	profit := utils.PercentOf(req.ManufacturingCost, req.ProfitMarginPercentage)
	totalSalePrice := req.ManufacturingCost.Add(profit).Add(req.AdditionalCosts)
	financed := totalSalePrice.Sub(req.AdvancePayment)

	return domain.IstisnaResult{
		TotalSalePrice:    totalSalePrice,
		AdvancePayment:    req.AdvancePayment,
		FinancedAmount:    financed,
		InstallmentAmount: utils.SplitEvenly(financed, numberOfPayments),
		NumberOfPayments:  numberOfPayments,
		ProfitAmount:      profit,
		PaymentSchedule:   req.PaymentSchedule,
	}, nil
}
