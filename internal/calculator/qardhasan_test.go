package calculator

import (
	"testing"

	"github.com/segyhp/islamicfin-engine/internal/domain"
	customError "github.com/segyhp/islamicfin-engine/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQardHasan(t *testing.T) {
	tests := []struct {
		name             string
		request          domain.QardHasanRequest
		expectedCount    int
		expectedInstall  string
		expectedDonation string
		expectedPayable  string
	}{
		{
			name: "monthly without donation",
			request: domain.QardHasanRequest{
				LoanAmount:          dec("12000"),
				RepaymentTermMonths: 12,
				RepaymentFrequency:  domain.RepaymentMonthly,
			},
			expectedCount:    12,
			expectedInstall:  "1000",
			expectedDonation: "0",
			expectedPayable:  "12000",
		},
		{
			name: "quarterly with donation",
			request: domain.QardHasanRequest{
				LoanAmount:          dec("12000"),
				RepaymentTermMonths: 12,
				RepaymentFrequency:  domain.RepaymentQuarterly,
				OptionalDonation:    dec("400"),
			},
			expectedCount:    4,
			expectedInstall:  "3100",
			expectedDonation: "400",
			expectedPayable:  "12400",
		},
		{
			name: "quarterly partial quarter rounds up",
			request: domain.QardHasanRequest{
				LoanAmount:          dec("10000"),
				RepaymentTermMonths: 10,
				RepaymentFrequency:  domain.RepaymentQuarterly,
			},
			expectedCount:    4,
			expectedInstall:  "2500",
			expectedDonation: "0",
			expectedPayable:  "10000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := QardHasan(tt.request)
			require.NoError(t, err)

			rounded := result.Rounded()
			assert.Equal(t, tt.expectedCount, rounded.NumberOfInstallments)
			assert.True(t, rounded.InstallmentAmount.Equal(dec(tt.expectedInstall)), "installment %v", rounded.InstallmentAmount)
			assert.True(t, rounded.TotalDonation.Equal(dec(tt.expectedDonation)), "donation %v", rounded.TotalDonation)
			assert.True(t, rounded.TotalPayable.Equal(dec(tt.expectedPayable)), "payable %v", rounded.TotalPayable)
		})
	}
}

func TestQardHasan_RejectsUnknownFrequency(t *testing.T) {
	_, err := QardHasan(domain.QardHasanRequest{
		LoanAmount:          dec("1000"),
		RepaymentTermMonths: 6,
		RepaymentFrequency:  domain.RepaymentFrequency("yearly"),
	})
	assert.True(t, customError.IsValidation(err))
}
