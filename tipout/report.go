package tipout

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/warp/tipout-engine/generic"
)

// =============================================================================
// REPORT - Printable snapshot of a tip pool
// =============================================================================

// Line is one worker's payout, rounded to cents.
type Line struct {
	ID     string
	Method Method
	Rule   string
	Amount decimal.Decimal
}

// Report is a point-in-time view of an engine. It does not follow later
// changes.
type Report struct {
	Total     decimal.Decimal
	Allocated decimal.Decimal
	Remainder decimal.Decimal
	Status    generic.Status
	Lines     []Line
}

// NewReport snapshots e.
func NewReport(e *generic.Engine) Report {
	r := Report{
		Total:  generic.Money(e.Total()),
		Status: e.Status(),
	}

	allocated := decimal.Zero
	for _, w := range e.Participants() {
		amount := generic.Money(w.Amount()).Round(generic.CentPlaces)
		allocated = allocated.Add(amount)
		r.Lines = append(r.Lines, Line{
			ID:     w.ID(),
			Method: MethodOf(w.Rule()),
			Rule:   describe(w.Rule()),
			Amount: amount,
		})
	}
	r.Allocated = allocated
	r.Remainder = r.Total.Sub(allocated)
	return r
}

func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "total %s (%s)\n", r.Total.StringFixed(2), r.Status)
	for _, l := range r.Lines {
		fmt.Fprintf(&b, "  %-12s %-16s %10s\n", l.ID, l.Rule, l.Amount.StringFixed(2))
	}
	if !r.Remainder.IsZero() {
		fmt.Fprintf(&b, "  remainder %s\n", r.Remainder.StringFixed(2))
	}
	return b.String()
}

func describe(rule generic.Rule) string {
	v := generic.Money(rule.Value())
	switch rule.Kind() {
	case generic.RulePercentage:
		return v.Shift(2).String() + "%"
	case generic.RuleProportionalShare:
		return v.String() + "h"
	case generic.RuleComputed:
		return "computed"
	default:
		return "flat " + v.StringFixed(2)
	}
}
