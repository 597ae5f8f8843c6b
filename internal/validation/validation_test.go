package validation

import (
	"errors"
	"testing"

	"github.com/segyhp/islamicfin-engine/internal/domain"
	customError "github.com/segyhp/islamicfin-engine/pkg/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func requireValidationError(t *testing.T, err error) *customError.BusinessError {
	t.Helper()
	require.Error(t, err)

	var be *customError.BusinessError
	require.True(t, errors.As(err, &be), "expected BusinessError, got %T", err)
	require.Equal(t, customError.ErrCodeValidation, be.Code)
	return be
}

func TestValidator_Zakat(t *testing.T) {
	v := New()

	valid := &domain.ZakatRequest{Cash: dec("100000"), GoldRatePerGram: dec("20000")}
	assert.NoError(t, v.Struct(valid))

	be := requireValidationError(t, v.Struct(&domain.ZakatRequest{Cash: dec("-1"), GoldRatePerGram: dec("20000")}))
	assert.Equal(t, "cash", be.Field)
	assert.Equal(t, "cash must be greater than or equal to 0", be.Message)

	be = requireValidationError(t, v.Struct(&domain.ZakatRequest{Cash: dec("1")}))
	assert.Equal(t, "gold_rate_per_gram", be.Field)
}

func TestValidator_MudarabahRatiosMustSumToExactlyHundred(t *testing.T) {
	v := New()
	req := &domain.MudarabahRequest{
		RabbulMalInvestment:   dec("1000"),
		TotalRevenue:          dec("500"),
		RabbulMalProfitRatio:  dec("60"),
		MudaribProfitRatio:    dec("30"),
		ProjectDurationMonths: 12,
	}

	be := requireValidationError(t, v.Struct(req))
	assert.Equal(t, "mudarib_profit_ratio", be.Field)
	assert.Equal(t, "Profit sharing ratios must sum to 100%, currently 90%", be.Message)

	req.MudaribProfitRatio = dec("39.999999")
	be = requireValidationError(t, v.Struct(req))
	assert.Contains(t, be.Message, "99.999999")

	req.MudaribProfitRatio = dec("40")
	assert.NoError(t, v.Struct(req))
}

func TestValidator_LeasingNeedsARate(t *testing.T) {
	v := New()
	req := &domain.LeasingRequest{
		VehiclePrice:            dec("30000"),
		LeaseTermMonths:         36,
		AnnualMileage:           12000,
		ResidualValuePercentage: dec("60"),
	}

	be := requireValidationError(t, v.Struct(req))
	assert.Equal(t, "money_factor", be.Field)
	assert.Equal(t, "Either money_factor or interest_rate must be provided", be.Message)

	rate := dec("4.8")
	req.InterestRate = &rate
	assert.NoError(t, v.Struct(req))

	negative := dec("-0.001")
	req.MoneyFactor = &negative
	be = requireValidationError(t, v.Struct(req))
	assert.Equal(t, "money_factor", be.Field)
}

func TestValidator_LeasingResidualRange(t *testing.T) {
	v := New()
	rate := dec("3")
	req := &domain.LeasingRequest{
		VehiclePrice:            dec("30000"),
		LeaseTermMonths:         36,
		AnnualMileage:           12000,
		ResidualValuePercentage: dec("100.5"),
		InterestRate:            &rate,
	}

	be := requireValidationError(t, v.Struct(req))
	assert.Equal(t, "residual_value_percentage", be.Field)
	assert.Equal(t, "residual_value_percentage must be less than or equal to 100", be.Message)
}

func TestValidator_PartnershipTotal(t *testing.T) {
	v := New()

	be := requireValidationError(t, v.Struct(&domain.PartnershipRequest{Partners: []domain.Partner{
		{Name: "Ali", Investment: decimal.Zero},
	}}))
	assert.Equal(t, "partners", be.Field)
	assert.Equal(t, "Total investment cannot be zero.", be.Message)

	be = requireValidationError(t, v.Struct(&domain.PartnershipRequest{}))
	assert.Equal(t, "partners", be.Field)

	be = requireValidationError(t, v.Struct(&domain.PartnershipRequest{Partners: []domain.Partner{
		{Name: "Ali", Investment: dec("10")},
		{Name: "", Investment: dec("10")},
	}}))
	assert.Equal(t, "partners[1].name", be.Field)
}

func TestValidator_Enums(t *testing.T) {
	v := New()

	be := requireValidationError(t, v.Struct(&domain.IstisnaRequest{
		ManufacturingCost:    dec("1000"),
		DeliveryPeriodMonths: 6,
		PaymentSchedule:      domain.PaymentSchedule("weekly"),
	}))
	assert.Equal(t, "payment_schedule", be.Field)
	assert.Contains(t, be.Message, `got "weekly"`)

	be = requireValidationError(t, v.Struct(&domain.QardHasanRequest{
		LoanAmount:          dec("1000"),
		RepaymentTermMonths: 6,
	}))
	assert.Equal(t, "repayment_frequency", be.Field)

	assert.NoError(t, v.Struct(&domain.MurabahaRequest{
		AssetCost:         dec("1000"),
		PaymentTermMonths: 12,
		PaymentFrequency:  domain.FrequencySemiAnnual,
	}))
}

func TestValidator_PensionAges(t *testing.T) {
	v := New()

	be := requireValidationError(t, v.Struct(&domain.PensionRequest{CurrentAge: 65, RetirementAge: 60}))
	assert.Equal(t, "retirement_age", be.Field)
	assert.Equal(t, "retirement_age must be greater than current_age", be.Message)

	assert.NoError(t, v.Struct(&domain.PensionRequest{CurrentAge: 30, RetirementAge: 60, MonthlyContribution: dec("100")}))
}

func TestValidator_TakafulPositiveValues(t *testing.T) {
	v := New()

	be := requireValidationError(t, v.Struct(&domain.TakafulRequest{Age: 0, CoverageAmount: dec("1000"), TermYears: 5}))
	assert.Equal(t, "age", be.Field)

	// health status is free text; unknown values are priced neutrally
	assert.NoError(t, v.Struct(&domain.TakafulRequest{Age: 30, CoverageAmount: dec("1000"), TermYears: 5, HealthStatus: "unknown"}))
}

func TestValidator_NotAStruct(t *testing.T) {
	be := requireValidationError(t, New().Struct(nil))
	assert.Equal(t, "body", be.Field)
}

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "current_age", snakeCase("CurrentAge"))
	assert.Equal(t, "age", snakeCase("Age"))
}
