// Package fixed provides fixed-width multi-word integers.
//
// Every exported type is a small array of uint64 words, little-endian
// ordered (word 0 holds the least significant 64 bits). Unsigned types
// (UintN) interpret all bits as magnitude. Signed types (IntN) use two's
// complement, with the high bit of the most significant word carrying the
// sign, exactly as the native int64/uint64 pair does at 64 bits.
//
// Arithmetic never wraps silently: every operation that can overflow the
// receiver's width returns an ok/overflow flag instead of a truncated
// result. Division by zero is reported the same way instead of panicking.
//
// The word-level primitives (add/sub/compare/multiply/shift/divide) are
// shared across widths via slice-based helpers in words.go; each exported
// type is a thin, fixed-size wrapper around those helpers, so values are
// plain arrays. Several helpers (shifts, signed comparison, negation,
// division, multiply-overflow checks, string and byte conversion) allocate
// short-lived scratch slices, so arithmetic is not allocation-free.
package fixed
