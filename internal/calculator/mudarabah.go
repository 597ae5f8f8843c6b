package calculator

import (
	"fmt"

	"github.com/segyhp/islamicfin-engine/internal/domain"
	customError "github.com/segyhp/islamicfin-engine/pkg/errors"
	"github.com/segyhp/islamicfin-engine/pkg/utils"

	"github.com/shopspring/decimal"
)

// FullShare is the exact sum both profit ratios must reach.
var FullShare = decimal.NewFromInt(100)

// Mudarabah splits a profit by the agreed ratios. A loss is never shared by
// ratio: the capital provider carries it in proportion to their stake and the
// manager loses only their effort.
func Mudarabah(req domain.MudarabahRequest) (domain.MudarabahResult, error) {
	totalInvestment := req.RabbulMalInvestment.Add(req.MudaribInvestment)
	if !totalInvestment.IsPositive() {
		return domain.MudarabahResult{}, customError.WrapValidation("rabbul_mal_investment", "Total investment must be greater than zero")
	}
	if req.ProjectDurationMonths <= 0 {
		return domain.MudarabahResult{}, customError.WrapValidation("project_duration_months", "project_duration_months must be greater than 0")
	}

	netProfit := req.TotalRevenue.Sub(req.TotalExpenses)

	rabbulMalProfit, mudaribProfit := decimal.Zero, decimal.Zero
	if netProfit.IsPositive() {
		rabbulMalProfit = utils.PercentOf(netProfit, req.RabbulMalProfitRatio)
		mudaribProfit = utils.PercentOf(netProfit, req.MudaribProfitRatio)
	}

	rabbulMalLoss := decimal.Zero
	if netProfit.IsNegative() {
		rabbulMalLoss = netProfit.Abs().Mul(req.RabbulMalInvestment).Div(totalInvestment)
	}

	roi := utils.ShareOf(netProfit, totalInvestment)

	return domain.MudarabahResult{
		TotalInvestment:       totalInvestment,
		TotalRevenue:          req.TotalRevenue,
		TotalExpenses:         req.TotalExpenses,
		NetProfit:             netProfit,
		ROI:                   roi,
		RabbulMalInvestment:   req.RabbulMalInvestment,
		RabbulMalProfitShare:  rabbulMalProfit,
		RabbulMalLossShare:    rabbulMalLoss,
		RabbulMalTotalReturn:  req.RabbulMalInvestment.Add(rabbulMalProfit).Sub(rabbulMalLoss),
		MudaribInvestment:     req.MudaribInvestment,
		MudaribProfitShare:    mudaribProfit,
		MudaribLossShare:      decimal.Zero,
		ManagementFee:         req.ManagementFee,
		PerformanceBonus:      req.PerformanceBonus,
		MudaribTotalReturn:    req.MudaribInvestment.Add(mudaribProfit).Add(req.ManagementFee).Add(req.PerformanceBonus),
		ProjectDurationMonths: req.ProjectDurationMonths,
		MonthlyROI:            roi.Div(decimal.NewFromInt(int64(req.ProjectDurationMonths))),
	}, nil
}

// CheckRatios reports whether two profit ratios form a full share without
// rejecting the request.
func CheckRatios(req domain.RatioCheckRequest) (domain.RatioCheck, error) {
	total := req.RabbulMalRatio.Add(req.MudaribRatio)
	valid := total.Equal(FullShare)

	message := "Ratios are valid"
	if !valid {
		message = fmt.Sprintf("Ratios sum to %s%%, should be 100%%", total.String())
	}

	return domain.RatioCheck{
		RabbulMalRatio: req.RabbulMalRatio,
		MudaribRatio:   req.MudaribRatio,
		Total:          total,
		IsValid:        valid,
		Message:        message,
	}, nil
}
