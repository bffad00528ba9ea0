package domain

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ICOLength is the fixed length of a canonical identifier. Every ICO in the
// Czech registry is exactly eight digits; the ARES endpoint rejects anything
// else.
const ICOLength = 8

// ICO is the canonical business identifier: exactly eight ASCII digits,
// no whitespace. Values are only constructed by NormalizeICO.
type ICO string

// String returns the identifier as a plain string.
func (i ICO) String() string {
	return string(i)
}

// normaliseStep is one stage of the identifier pipeline. It receives the
// current candidate and returns the (possibly rewritten) candidate or an
// error. The pipeline halts at the first error.
type normaliseStep func(candidate string) (string, error)

// pipeline is the ordered validation chain. The order is a contract:
// the length check assumes only digits remain, and padding assumes the
// length check passed.
var pipeline = []normaliseStep{
	checkDigitsOnly,
	checkMaxLength,
	padToFullLength,
}

// NormalizeICO converts loosely-formed input into a canonical identifier.
// It rejects non-digit input with ErrNonDigitICO and over-long input with
// ErrICOTooLong, and left-pads shorter input with zeros. State institutions
// commonly carry leading zeros, so "12345" normalizes to "00012345".
//
// Whitespace is not removed here; interactive callers strip it first with
// StripWhitespace. The empty string is deliberately accepted and padded to
// "00000000" - rejecting empty input is the prompt's job, not the
// normalizer's.
func NormalizeICO(raw string) (ICO, error) {
	candidate := raw
	for _, step := range pipeline {
		next, err := step(candidate)
		if err != nil {
			return "", err
		}
		candidate = next
	}
	return ICO(candidate), nil
}

// StripWhitespace removes every whitespace character from s, including
// interior runs introduced by copy-pasted input. It is an explicit pre-step
// for interactive entry; programmatic callers pass already-clean values
// straight to NormalizeICO.
func StripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// CoerceICO converts an arbitrary value into text suitable for the
// normalization pipeline. Strings, integer types and fmt.Stringer values
// have a defined textual form; anything else fails with ErrNotText.
func CoerceICO(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case int:
		return strconv.Itoa(val), nil
	case int32:
		return strconv.FormatInt(int64(val), 10), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case uint:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint64:
		return strconv.FormatUint(val, 10), nil
	case fmt.Stringer:
		return val.String(), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrNotText, v)
	}
}

// checkDigitsOnly rejects any candidate containing a character outside 0-9.
// A zero-length candidate passes vacuously.
func checkDigitsOnly(candidate string) (string, error) {
	for _, r := range candidate {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %q", ErrNonDigitICO, candidate)
		}
	}
	return candidate, nil
}

// checkMaxLength rejects candidates longer than the identifier space.
func checkMaxLength(candidate string) (string, error) {
	if len(candidate) > ICOLength {
		return "", fmt.Errorf("%w: %q has %d digits", ErrICOTooLong, candidate, len(candidate))
	}
	return candidate, nil
}

// padToFullLength left-pads the candidate with zeros to the full eight
// digits. This is the one step that rewrites otherwise-valid input.
func padToFullLength(candidate string) (string, error) {
	if missing := ICOLength - len(candidate); missing > 0 {
		candidate = strings.Repeat("0", missing) + candidate
	}
	return candidate, nil
}
