package domain

import (
	"github.com/segyhp/islamicfin-engine/pkg/utils"
	"github.com/shopspring/decimal"
)

const DefaultProjectDuration = 12

// MudarabahRequest pairs a capital provider (rabb-ul-mal) with a manager (mudarib).
type MudarabahRequest struct {
	RabbulMalInvestment   decimal.Decimal `json:"rabbul_mal_investment" validate:"gt=0"`
	MudaribInvestment     decimal.Decimal `json:"mudarib_investment" validate:"gte=0"`
	TotalRevenue          decimal.Decimal `json:"total_revenue" validate:"gte=0"`
	TotalExpenses         decimal.Decimal `json:"total_expenses" validate:"gte=0"`
	RabbulMalProfitRatio  decimal.Decimal `json:"rabbul_mal_profit_ratio" validate:"gte=0,lte=100"`
	MudaribProfitRatio    decimal.Decimal `json:"mudarib_profit_ratio" validate:"gte=0,lte=100"`
	ProjectDurationMonths int             `json:"project_duration_months" validate:"gt=0"`
	ManagementFee         decimal.Decimal `json:"management_fee" validate:"gte=0"`
	PerformanceBonus      decimal.Decimal `json:"performance_bonus" validate:"gte=0"`
}

func (r *MudarabahRequest) ApplyDefaults() {
	r.ProjectDurationMonths = DefaultProjectDuration
}

type MudarabahResult struct {
	TotalInvestment decimal.Decimal `json:"total_investment"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	NetProfit       decimal.Decimal `json:"net_profit"`
	ROI             decimal.Decimal `json:"roi"`

	RabbulMalInvestment  decimal.Decimal `json:"rabbul_mal_investment"`
	RabbulMalProfitShare decimal.Decimal `json:"rabbul_mal_profit_share"`
	RabbulMalLossShare   decimal.Decimal `json:"rabbul_mal_loss_share"`
	RabbulMalTotalReturn decimal.Decimal `json:"rabbul_mal_total_return"`

	MudaribInvestment  decimal.Decimal `json:"mudarib_investment"`
	MudaribProfitShare decimal.Decimal `json:"mudarib_profit_share"`
	MudaribLossShare   decimal.Decimal `json:"mudarib_loss_share"`
	ManagementFee      decimal.Decimal `json:"management_fee"`
	PerformanceBonus   decimal.Decimal `json:"performance_bonus"`
	MudaribTotalReturn decimal.Decimal `json:"mudarib_total_return"`

	ProjectDurationMonths int             `json:"project_duration_months"`
	MonthlyROI            decimal.Decimal `json:"monthly_roi"`
}

// Rounded derives the manager's share from the rounded net profit so the two
// profit shares always add up to the reported net profit.
func (r MudarabahResult) Rounded() MudarabahResult {
	netProfit := utils.RoundMoney(r.NetProfit)
	rabbulMalShare := utils.RoundMoney(r.RabbulMalProfitShare)
	mudaribShare := utils.RoundMoney(r.MudaribProfitShare)
	if r.NetProfit.IsPositive() {
		mudaribShare = netProfit.Sub(rabbulMalShare)
	}

	return MudarabahResult{
		TotalInvestment:       utils.RoundMoney(r.TotalInvestment),
		TotalRevenue:          utils.RoundMoney(r.TotalRevenue),
		TotalExpenses:         utils.RoundMoney(r.TotalExpenses),
		NetProfit:             netProfit,
		ROI:                   utils.RoundMoney(r.ROI),
		RabbulMalInvestment:   utils.RoundMoney(r.RabbulMalInvestment),
		RabbulMalProfitShare:  rabbulMalShare,
		RabbulMalLossShare:    utils.RoundMoney(r.RabbulMalLossShare),
		RabbulMalTotalReturn:  utils.RoundMoney(r.RabbulMalTotalReturn),
		MudaribInvestment:     utils.RoundMoney(r.MudaribInvestment),
		MudaribProfitShare:    mudaribShare,
		MudaribLossShare:      utils.RoundMoney(r.MudaribLossShare),
		ManagementFee:         utils.RoundMoney(r.ManagementFee),
		PerformanceBonus:      utils.RoundMoney(r.PerformanceBonus),
		MudaribTotalReturn:    utils.RoundMoney(r.MudaribTotalReturn),
		ProjectDurationMonths: r.ProjectDurationMonths,
		MonthlyROI:            utils.RoundMoney(r.MonthlyROI),
	}
}

type RatioCheckRequest struct {
	RabbulMalRatio decimal.Decimal `json:"rabbul_mal_ratio"`
	MudaribRatio   decimal.Decimal `json:"mudarib_ratio"`
}

type RatioCheck struct {
	RabbulMalRatio decimal.Decimal `json:"rabbul_mal_ratio"`
	MudaribRatio   decimal.Decimal `json:"mudarib_ratio"`
	Total          decimal.Decimal `json:"total"`
	IsValid        bool            `json:"is_valid"`
	Message        string          `json:"message"`
}

func (r RatioCheck) Rounded() RatioCheck { return r }
