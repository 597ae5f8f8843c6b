package calculator

import (
	"testing"

	"github.com/segyhp/islamicfin-engine/internal/domain"
	customError "github.com/segyhp/islamicfin-engine/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPension(t *testing.T) {
	tests := []struct {
		name            string
		request         domain.PensionRequest
		expectedYears   int
		expectedReal    string
		expectedNominal string
	}{
		{
			name: "zero return uses the limit form",
			request: domain.PensionRequest{
				CurrentAge:          30,
				RetirementAge:       40,
				MonthlyContribution: dec("1000"),
			},
			expectedYears:   10,
			expectedReal:    "120000",
			expectedNominal: "120000",
		},
		{
			name: "one year at twelve percent",
			request: domain.PensionRequest{
				CurrentAge:          59,
				RetirementAge:       60,
				MonthlyContribution: dec("1000"),
				ExpectedReturnRate:  dec("12"),
			},
			expectedYears:   1,
			expectedReal:    "12682.50",
			expectedNominal: "12682.50",
		},
		{
			name: "inflation deflates the projection",
			request: domain.PensionRequest{
				CurrentAge:          30,
				RetirementAge:       32,
				MonthlyContribution: dec("500"),
				InflationRate:       dec("10"),
			},
			expectedYears:   2,
			expectedReal:    "9917.36",
			expectedNominal: "12000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Pension(tt.request)
			require.NoError(t, err)

			rounded := result.Rounded()
			assert.Equal(t, tt.expectedYears, rounded.YearsUntilRetirement)
			assert.True(t, rounded.FutureValue.Equal(dec(tt.expectedReal)), "real: got %v", rounded.FutureValue)
			assert.True(t, rounded.NominalFutureValue.Equal(dec(tt.expectedNominal)), "nominal: got %v", rounded.NominalFutureValue)
		})
	}
}

func TestPension_RetirementMustFollowCurrentAge(t *testing.T) {
	_, err := Pension(domain.PensionRequest{CurrentAge: 60, RetirementAge: 60, MonthlyContribution: dec("100")})
	assert.True(t, customError.IsValidation(err))
}
