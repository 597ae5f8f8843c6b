package domain

import (
	"github.com/segyhp/islamicfin-engine/pkg/utils"
	"github.com/shopspring/decimal"
)

type Partner struct {
	Name       string          `json:"name" validate:"required"`
	Investment decimal.Decimal `json:"investment" validate:"gte=0"`
}

type PartnershipRequest struct {
	Partners []Partner `json:"partners" validate:"required,min=1,dive"`
}

type PartnerShare struct {
	Name       string          `json:"name"`
	Percentage decimal.Decimal `json:"percentage"`
}

type PartnershipResult struct {
	Split []PartnerShare `json:"split"`
}

func (r PartnershipResult) Rounded() PartnershipResult {
	split := make([]PartnerShare, len(r.Split))
	for i, share := range r.Split {
		split[i] = PartnerShare{Name: share.Name, Percentage: utils.RoundRate(share.Percentage)}
	}
	return PartnershipResult{Split: split}
}
