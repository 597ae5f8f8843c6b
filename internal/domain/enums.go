package domain

import "strings"

// PaymentFrequency is the murabaha installment cadence.
type PaymentFrequency string

const (
	FrequencyMonthly    PaymentFrequency = "monthly"
	FrequencyQuarterly  PaymentFrequency = "quarterly"
	FrequencySemiAnnual PaymentFrequency = "semi-annual"
	FrequencyAnnual     PaymentFrequency = "annual"
)

// PaymentsPerYear reports how many installments fall in one year.
func (f PaymentFrequency) PaymentsPerYear() (int, bool) {
	switch f {
	case FrequencyMonthly:
		return 12, true
	case FrequencyQuarterly:
		return 4, true
	case FrequencySemiAnnual:
		return 2, true
	case FrequencyAnnual:
		return 1, true
	}
	return 0, false
}

// PaymentSchedule is the istisna payment plan.
type PaymentSchedule string

const (
	ScheduleMonthly    PaymentSchedule = "monthly"
	ScheduleQuarterly  PaymentSchedule = "quarterly"
	ScheduleSemiAnnual PaymentSchedule = "semi-annual"
	ScheduleLumpSum    PaymentSchedule = "lump-sum"
)

// IntervalMonths returns the months between payments. A lump sum is paid once,
// at delivery.
func (s PaymentSchedule) IntervalMonths(deliveryMonths int) (int, bool) {
	switch s {
	case ScheduleMonthly:
		return 1, true
	case ScheduleQuarterly:
		return 3, true
	case ScheduleSemiAnnual:
		return 6, true
	case ScheduleLumpSum:
		return deliveryMonths, true
	}
	return 0, false
}

// RepaymentFrequency is the qard hasan installment cadence.
type RepaymentFrequency string

const (
	RepaymentMonthly   RepaymentFrequency = "monthly"
	RepaymentQuarterly RepaymentFrequency = "quarterly"
)

func (f RepaymentFrequency) MonthsPerInstallment() (int, bool) {
	switch f {
	case RepaymentMonthly:
		return 1, true
	case RepaymentQuarterly:
		return 3, true
	}
	return 0, false
}

// HealthStatus drives the takaful health loading.
type HealthStatus int

const (
	HealthUnknown HealthStatus = iota
	HealthExcellent
	HealthGood
	HealthAverage
	HealthPoor
)

// ParseHealthStatus is case-insensitive; anything unrecognized is HealthUnknown.
func ParseHealthStatus(s string) HealthStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "excellent":
		return HealthExcellent
	case "good":
		return HealthGood
	case "average":
		return HealthAverage
	case "poor":
		return HealthPoor
	}
	return HealthUnknown
}

func (h HealthStatus) String() string {
	switch h {
	case HealthExcellent:
		return "excellent"
	case HealthGood:
		return "good"
	case HealthAverage:
		return "average"
	case HealthPoor:
		return "poor"
	}
	return "unknown"
}
