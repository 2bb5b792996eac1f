package availability

import (
	"strconv"
	"strings"
)

// Rule is the day payload upserted for every expanded date.
type Rule struct {
	Status  Status
	FullDay bool

	StartTime string
	EndTime   string

	PriceGross     *float64
	DepositPercent *int
	MinHours       *int

	Note string
}

// RuleInput is the availability form as submitted: numerics arrive as
// strings and time-of-day fields may still be present on full-day rules.
type RuleInput struct {
	Status    string
	FullDay   bool
	StartTime string
	EndTime   string

	PriceGross     string
	DepositPercent string
	MinHours       string

	Note string
}

// NormalizeRule shapes a submitted rule for persistence. A full-day rule
// forces the time window to empty regardless of what was submitted, and
// numerics that fail to parse or parse to zero become nil so "not set" is
// distinguishable from an explicit zero elsewhere in the system.
func NormalizeRule(in RuleInput) (Rule, bool) {
	status, ok := ParseStatus(strings.TrimSpace(in.Status))
	if !ok {
		return Rule{}, false
	}

	r := Rule{
		Status:  status,
		FullDay: in.FullDay,
		Note:    strings.TrimSpace(in.Note),
	}

	if !in.FullDay {
		r.StartTime = strings.TrimSpace(in.StartTime)
		r.EndTime = strings.TrimSpace(in.EndTime)
	}

	r.PriceGross = parsePositiveFloat(in.PriceGross)
	r.DepositPercent = parsePositiveInt(in.DepositPercent)
	r.MinHours = parsePositiveInt(in.MinHours)

	return r, true
}

func parsePositiveFloat(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return nil
	}
	return &v
}

func parsePositiveInt(s string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return nil
	}
	return &v
}
