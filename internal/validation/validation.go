// Package validation rejects malformed calculator requests before any formula
// runs. Field rules live in `validate` struct tags on the domain requests;
// cross-field rules are registered here as struct-level validators.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/segyhp/islamicfin-engine/internal/domain"
	customError "github.com/segyhp/islamicfin-engine/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Struct-level rule tags.
const (
	tagRatioSum     = "ratio_sum"
	tagRateRequired = "rate_required"
	tagNonZeroTotal = "nonzero_total"
)

var fullShare = decimal.NewFromInt(100)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(jsonFieldName)
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	v.RegisterStructValidation(mudarabahRatios, domain.MudarabahRequest{})
	v.RegisterStructValidation(leasingRate, domain.LeasingRequest{})
	v.RegisterStructValidation(conversionRate, domain.RateConversionRequest{})
	v.RegisterStructValidation(partnershipTotal, domain.PartnershipRequest{})

	return &Validator{validate: v}
}

// Struct validates a request and reports the first failing field as a
// validation error.
func (v *Validator) Struct(request interface{}) error {
	err := v.validate.Struct(request)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return customError.WrapValidation("body", "request body must be a JSON object")
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return customError.WrapValidation("body", err.Error())
	}

	fe := fieldErrors[0]
	field := fieldPath(fe)
	return customError.WrapValidation(field, describe(field, fe))
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// decimalValue exposes decimals to the numeric tags (gt, gte, lte...).
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func mudarabahRatios(sl validator.StructLevel) {
	req := sl.Current().Interface().(domain.MudarabahRequest)
	total := req.RabbulMalProfitRatio.Add(req.MudaribProfitRatio)
	if !total.Equal(fullShare) {
		sl.ReportError(req.MudaribProfitRatio, "mudarib_profit_ratio", "MudaribProfitRatio", tagRatioSum, total.String())
	}
}

func leasingRate(sl validator.StructLevel) {
	req := sl.Current().Interface().(domain.LeasingRequest)
	if req.MoneyFactor == nil && req.InterestRate == nil {
		sl.ReportError(req.MoneyFactor, "money_factor", "MoneyFactor", tagRateRequired, "")
	}
}

func conversionRate(sl validator.StructLevel) {
	req := sl.Current().Interface().(domain.RateConversionRequest)
	if req.MoneyFactor == nil && req.InterestRate == nil {
		sl.ReportError(req.InterestRate, "interest_rate", "InterestRate", tagRateRequired, "")
	}
}

func partnershipTotal(sl validator.StructLevel) {
	req := sl.Current().Interface().(domain.PartnershipRequest)
	if len(req.Partners) == 0 {
		return
	}
	total := decimal.Zero
	for _, p := range req.Partners {
		total = total.Add(p.Investment)
	}
	if total.IsZero() {
		sl.ReportError(req.Partners, "partners", "Partners", tagNonZeroTotal, "")
	}
}

// fieldPath drops the struct name from the namespace: partners[1].name.
func fieldPath(fe validator.FieldError) string {
	parts := strings.SplitN(fe.Namespace(), ".", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return fe.Field()
}

func describe(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fmt.Sprint(fe.Value()))
	case "gtfield":
		return fmt.Sprintf("%s must be greater than %s", field, snakeCase(fe.Param()))
	case tagRatioSum:
		return fmt.Sprintf("Profit sharing ratios must sum to 100%%, currently %s%%", fe.Param())
	case tagRateRequired:
		return "Either money_factor or interest_rate must be provided"
	case tagNonZeroTotal:
		return "Total investment cannot be zero."
	}
	return fmt.Sprintf("%s failed the '%s' rule", field, fe.Tag())
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
