// Package numeric implements the exact-decimal NUMERIC and BIGNUMERIC
// scalar types used by a SQL engine's expression evaluator: Numeric
// (N38.9, a 128-bit scaled integer with 9 fractional digits) and
// BigNumeric (N76.38, a 256-bit scaled integer with 38 fractional digits).
//
// Both types store their value as a fixed.Int128 or fixed.Int256 scaled by
// a constant power of ten. Every operation that can overflow, divide by
// zero, or receive malformed input returns an error instead of producing a
// silently wrapped or truncated result; nothing here panics except for the
// documented "undefined for zero" bit-index queries inherited from the
// fixed package.
package numeric

import (
	"fmt"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
)

// Error is this package's oops domain. Every error that crosses the
// package boundary is traced through it, the same discipline the teacher
// package applies to its control-block codec.
var Error = oops.Namespace("numeric")

// Error classes, one per spec.md §7 error kind. The host SQL engine's
// eval-error channel distinguishes error kinds with errs.Class.Has rather
// than by parsing message text.
var (
	InvalidInput    = errs.Class("invalid input")
	Overflow        = errs.Class("overflow")
	DivisionByZero  = errs.Class("division by zero")
	OutOfRange      = errs.Class("out of range")
	DisallowedPower = errs.Class("disallowed power")
	InvalidEncoding = errs.Class("invalid encoding")
)

// kind carries the type-name spellings needed to reproduce the exact error
// text spec.md §7 requires for each of Numeric and BigNumeric.
type kind struct {
	upper string // "NUMERIC" / "BIGNUMERIC" - invalid-input and power messages
	title string // "numeric" / "BigNumeric" - overflow, range and NaN messages
	lower string // "numeric" / "bignumeric" - encoding messages
}

var numericKind = kind{upper: "NUMERIC", title: "numeric", lower: "numeric"}
var bigNumericKind = kind{upper: "BIGNUMERIC", title: "BigNumeric", lower: "bignumeric"}

func errInvalidInput(k kind, text string) error {
	return InvalidInput.Wrap(Error.New("Invalid %s value: %s", k.upper, text))
}

func errOverflow(k kind, op string, operands ...any) error {
	return Overflow.Wrap(Error.New("%s overflow: %s %s", k.title, op, formatOperands(operands)))
}

func errDivisionByZero(a, b string) error {
	return DivisionByZero.Wrap(Error.New("division by zero: %s / %s", a, b))
}

func errDivisionByZeroAvg() error {
	return DivisionByZero.Wrap(Error.New("division by zero: AVG"))
}

func errOutOfRange(k kind, d float64) error {
	return OutOfRange.Wrap(Error.New("%s out of range: %s", k.title, formatDouble(d)))
}

func errNonFinite(k kind, d float64) error {
	return OutOfRange.Wrap(Error.New("Illegal conversion of non-finite floating point number to %s: %s", k.title, formatDouble(d)))
}

func errNegativeFractionalPower(k kind) error {
	return DisallowedPower.Wrap(Error.New("Negative %s value cannot be raised to a fractional power", k.upper))
}

func errInvalidEncoding(k kind) error {
	return InvalidEncoding.Wrap(Error.New("Invalid %s encoding", k.lower))
}

func errInvalidAggregatorEncoding(k kind) error {
	return InvalidEncoding.Wrap(Error.New("Invalid %s aggregator encoding", k.lower))
}

func formatOperands(operands []any) string {
	if len(operands) == 0 {
		return ""
	}
	out := fmt.Sprint(operands[0])
	for _, o := range operands[1:] {
		out += " " + fmt.Sprint(o)
	}
	return out
}

// formatDouble renders a float64 the way spec.md §7 requires: "nan" never
// "-nan", and otherwise Go's shortest round-tripping decimal form.
func formatDouble(d float64) string {
	if d != d { // NaN
		return "nan"
	}
	return fmt.Sprintf("%v", d)
}
