package calculator

import (
	"github.com/segyhp/islamicfin-engine/internal/domain"
	customError "github.com/segyhp/islamicfin-engine/pkg/errors"
	"github.com/segyhp/islamicfin-engine/pkg/utils"

	"github.com/shopspring/decimal"
)

// Partnership gives each partner an ownership percentage proportional to
// their investment.
func Partnership(req domain.PartnershipRequest) (domain.PartnershipResult, error) {
	total := decimal.Zero
	for _, p := range req.Partners {
		total = total.Add(p.Investment)
	}
	if total.IsZero() {
		return domain.PartnershipResult{}, customError.WrapValidation("partners", "Total investment cannot be zero.")
	}

	split := make([]domain.PartnerShare, 0, len(req.Partners))
	for _, p := range req.Partners {
		split = append(split, domain.PartnerShare{
			Name:       p.Name,
			Percentage: utils.ShareOf(p.Investment, total),
		})
	}

	return domain.PartnershipResult{Split: split}, nil
}
