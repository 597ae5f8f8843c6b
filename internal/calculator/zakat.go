package calculator

import (
	"github.com/segyhp/islamicfin-engine/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	// NisabGoldGrams is the gold weight whose value sets the nisab.
	NisabGoldGrams = decimal.NewFromInt(85)
	// ZakatRate is 2.5% of zakatable wealth.
	ZakatRate = decimal.RequireFromString("0.025")
)

// Zakat applies a cliff-edge threshold: nothing is due below the nisab and the
// full 2.5% is due at or above it.
func Zakat(req domain.ZakatRequest) (domain.ZakatResult, error) {
	totalAssets := req.Cash.
		Add(req.Gold.Mul(req.GoldRatePerGram)).
		Add(req.Silver.Mul(req.SilverRatePerGram)).
		Add(req.BusinessAssets)

	zakatable := decimal.Max(totalAssets.Sub(req.Liabilities), decimal.Zero)
	nisab := NisabGoldGrams.Mul(req.GoldRatePerGram)
	applicable := zakatable.GreaterThanOrEqual(nisab)

	due := decimal.Zero
	if applicable {
		due = zakatable.Mul(ZakatRate)
	}

	return domain.ZakatResult{
		TotalAssets:       totalAssets,
		ZakatableAmount:   zakatable,
		Nisab:             nisab,
		ZakatDue:          due,
		IsZakatApplicable: applicable,
	}, nil
}
