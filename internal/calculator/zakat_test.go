package calculator

import (
	"testing"

	"github.com/segyhp/islamicfin-engine/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestZakat(t *testing.T) {
	tests := []struct {
		name            string
		request         domain.ZakatRequest
		expectedNisab   decimal.Decimal
		expectedDue     decimal.Decimal
		expectedTotal   decimal.Decimal
		expectedZakat   decimal.Decimal
		expectedApplies bool
	}{
		{
			name: "cash below nisab owes nothing",
			request: domain.ZakatRequest{
				Cash:            dec("100000"),
				GoldRatePerGram: dec("20000"),
			},
			expectedNisab:   dec("1700000"),
			expectedTotal:   dec("100000"),
			expectedZakat:   dec("100000"),
			expectedDue:     decimal.Zero,
			expectedApplies: false,
		},
		{
			name: "exactly at nisab is inclusive",
			request: domain.ZakatRequest{
				Cash:            dec("1700000"),
				GoldRatePerGram: dec("20000"),
			},
			expectedNisab:   dec("1700000"),
			expectedTotal:   dec("1700000"),
			expectedZakat:   dec("1700000"),
			expectedDue:     dec("42500"),
			expectedApplies: true,
		},
		{
			name: "mixed holdings above nisab",
			request: domain.ZakatRequest{
				Cash:              dec("500000"),
				Gold:              dec("100"),
				Silver:            dec("200"),
				BusinessAssets:    dec("300000"),
				Liabilities:       dec("100000"),
				GoldRatePerGram:   dec("20000"),
				SilverRatePerGram: dec("250"),
			},
			expectedNisab:   dec("1700000"),
			expectedTotal:   dec("2850000"),
			expectedZakat:   dec("2750000"),
			expectedDue:     dec("68750"),
			expectedApplies: true,
		},
		{
			name: "liabilities larger than assets floor at zero",
			request: domain.ZakatRequest{
				Cash:            dec("1000"),
				Liabilities:     dec("5000"),
				GoldRatePerGram: dec("20000"),
			},
			expectedNisab:   dec("1700000"),
			expectedTotal:   dec("1000"),
			expectedZakat:   decimal.Zero,
			expectedDue:     decimal.Zero,
			expectedApplies: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Zakat(tt.request)
			require.NoError(t, err)

			assert.True(t, result.Nisab.Equal(tt.expectedNisab), "nisab: expected %v, got %v", tt.expectedNisab, result.Nisab)
			assert.True(t, result.TotalAssets.Equal(tt.expectedTotal), "total: expected %v, got %v", tt.expectedTotal, result.TotalAssets)
			assert.True(t, result.ZakatableAmount.Equal(tt.expectedZakat), "zakatable: expected %v, got %v", tt.expectedZakat, result.ZakatableAmount)
			assert.True(t, result.ZakatDue.Equal(tt.expectedDue), "due: expected %v, got %v", tt.expectedDue, result.ZakatDue)
			assert.Equal(t, tt.expectedApplies, result.IsZakatApplicable)
		})
	}
}

func TestZakat_DueIsCliffEdge(t *testing.T) {
	goldRate := dec("20000")
	nisab := NisabGoldGrams.Mul(goldRate)

	for _, cash := range []string{"0", "1", "1699999.99", "1700000", "1700000.01", "9000000"} {
		result, err := Zakat(domain.ZakatRequest{Cash: dec(cash), GoldRatePerGram: goldRate})
		require.NoError(t, err)

		if result.ZakatableAmount.LessThan(nisab) {
			assert.True(t, result.ZakatDue.IsZero(), "cash %s should owe nothing", cash)
		} else {
			assert.True(t, result.ZakatDue.Equal(result.ZakatableAmount.Mul(ZakatRate)), "cash %s should owe 2.5%%", cash)
		}
	}
}
