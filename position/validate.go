package position

import "math"

// Field names as they appear in Violation records and machine-readable
// output.
const (
	FieldMaxLoss    = "max_loss"
	FieldEntryPrice = "entry_price"
	FieldStopLoss   = "stop_loss"
	FieldTarget     = "target_price"
)

// Violation codes.
const (
	CodeMaxLossInvalid      = "MAX_LOSS_INVALID"
	CodeEntryInvalid        = "ENTRY_INVALID"
	CodeStopInvalid         = "STOP_INVALID"
	CodeStopNotBelowEntry   = "STOP_NOT_BELOW_ENTRY"
	CodeTargetInvalid       = "TARGET_INVALID"
	CodeTargetNotAboveEntry = "TARGET_NOT_ABOVE_ENTRY"
)

// Violation describes why a single field was rejected. Msg is a complete
// sentence fit for direct display.
type Violation struct {
	Field string `json:"field"`
	Code  string `json:"code"`
	Msg   string `json:"msg"`
}

// Outcome holds at most one Violation per field. Validation never returns an
// error and never panics: every failing field is reported at once.
type Outcome struct {
	MaxLoss    *Violation
	EntryPrice *Violation
	StopLoss   *Violation
	Target     *Violation
}

// OK reports whether every field passed.
func (o Outcome) OK() bool {
	return o.MaxLoss == nil && o.EntryPrice == nil && o.StopLoss == nil && o.Target == nil
}

// Violations returns the failures in field order: max loss, entry, stop,
// target.
func (o Outcome) Violations() []Violation {
	var out []Violation
	for _, v := range []*Violation{o.MaxLoss, o.EntryPrice, o.StopLoss, o.Target} {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// Check evaluates every rule independently and combines the results. Fields
// are judged on their own values: a stop above a missing entry price is not
// blamed on the stop.
func Check(in Inputs) Outcome {
	return Outcome{
		MaxLoss:    CheckMaxLoss(in.MaxLoss),
		EntryPrice: CheckEntryPrice(in.EntryPrice),
		StopLoss:   CheckStopLoss(in.StopLoss, in.EntryPrice),
		Target:     CheckTarget(in.Target, in.EntryPrice),
	}
}

// CheckMaxLoss rejects NaN and non-positive amounts.
func CheckMaxLoss(v float64) *Violation {
	if notPositive(v) {
		return &Violation{Field: FieldMaxLoss, Code: CodeMaxLossInvalid, Msg: "max loss must be a positive number"}
	}
	return nil
}

// CheckEntryPrice rejects NaN and non-positive prices.
func CheckEntryPrice(v float64) *Violation {
	if notPositive(v) {
		return &Violation{Field: FieldEntryPrice, Code: CodeEntryInvalid, Msg: "entry price must be a positive number"}
	}
	return nil
}

// CheckStopLoss rejects NaN and non-positive prices, and a stop at or above
// the entry. The comparison is NaN-safe: with no usable entry price only the
// entry field is reported.
func CheckStopLoss(v, entry float64) *Violation {
	if notPositive(v) {
		return &Violation{Field: FieldStopLoss, Code: CodeStopInvalid, Msg: "stop loss must be a positive number"}
	}
	if v >= entry {
		return &Violation{Field: FieldStopLoss, Code: CodeStopNotBelowEntry, Msg: "stop loss must be below the entry price"}
	}
	return nil
}

// CheckTarget applies only when a target was supplied; nil passes. A present
// target must be a positive number above the entry.
func CheckTarget(t *float64, entry float64) *Violation {
	if t == nil {
		return nil
	}
	if notPositive(*t) {
		return &Violation{Field: FieldTarget, Code: CodeTargetInvalid, Msg: "target price must be a positive number"}
	}
	if *t <= entry {
		return &Violation{Field: FieldTarget, Code: CodeTargetNotAboveEntry, Msg: "target price must be above the entry price"}
	}
	return nil
}

func notPositive(v float64) bool {
	return math.IsNaN(v) || v <= 0
}
