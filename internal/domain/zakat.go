package domain

import (
	"github.com/segyhp/islamicfin-engine/pkg/utils"
	"github.com/shopspring/decimal"
)

// ZakatRequest holds holdings in local currency; gold and silver are in grams.
type ZakatRequest struct {
	Cash              decimal.Decimal `json:"cash" validate:"gte=0"`
	Gold              decimal.Decimal `json:"gold" validate:"gte=0"`
	Silver            decimal.Decimal `json:"silver" validate:"gte=0"`
	BusinessAssets    decimal.Decimal `json:"business_assets" validate:"gte=0"`
	Liabilities       decimal.Decimal `json:"liabilities" validate:"gte=0"`
	GoldRatePerGram   decimal.Decimal `json:"gold_rate_per_gram" validate:"gt=0"`
	SilverRatePerGram decimal.Decimal `json:"silver_rate_per_gram" validate:"gte=0"`
}

type ZakatResult struct {
	TotalAssets       decimal.Decimal `json:"total_assets"`
	ZakatableAmount   decimal.Decimal `json:"zakatable_amount"`
	Nisab             decimal.Decimal `json:"nisab"`
	ZakatDue          decimal.Decimal `json:"zakat_due"`
	IsZakatApplicable bool            `json:"is_zakat_applicable"`
}

func (r ZakatResult) Rounded() ZakatResult {
	return ZakatResult{
		TotalAssets:       utils.RoundMoney(r.TotalAssets),
		ZakatableAmount:   utils.RoundMoney(r.ZakatableAmount),
		Nisab:             utils.RoundMoney(r.Nisab),
		ZakatDue:          utils.RoundMoney(r.ZakatDue),
		IsZakatApplicable: r.IsZakatApplicable,
	}
}
