package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeICO_PadsShortInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ICO
	}{
		{"single digit", "1", "00000001"},
		{"five digits", "12345", "00012345"},
		{"seven digits", "7089002", "07089002"},
		{"already canonical", "70890021", "70890021"},
		{"empty input pads fully", "", "00000000"},
		{"all zeros", "00000000", "00000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ico, err := NormalizeICO(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ico)
		})
	}
}

func TestNormalizeICO_PaddingPreservesSuffix(t *testing.T) {
	// Every digit string up to full length normalizes to an 8-character
	// string ending in the original input.
	for _, s := range []string{"5", "42", "123", "9876", "55555", "123456", "7089002", "70890021"} {
		ico, err := NormalizeICO(s)
		require.NoError(t, err)
		assert.Len(t, ico.String(), ICOLength)
		assert.True(t, strings.HasSuffix(ico.String(), s))
		assert.Equal(t, strings.Repeat("0", ICOLength-len(s)), ico.String()[:ICOLength-len(s)])
	}
}

func TestNormalizeICO_Idempotent(t *testing.T) {
	once, err := NormalizeICO("12345")
	require.NoError(t, err)

	twice, err := NormalizeICO(once.String())
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestNormalizeICO_RejectsTooLong(t *testing.T) {
	for _, s := range []string{"123456789", "0000000000", "70890021999"} {
		_, err := NormalizeICO(s)
		assert.ErrorIs(t, err, ErrICOTooLong, "input %q", s)
	}
}

func TestNormalizeICO_RejectsNonDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"alphabetic", "abc"},
		{"diacritics", "kuřecí"},
		{"negative number", "-1234"},
		{"decimal", "123.45"},
		{"mixed", "1234x678"},
		{"interior space not stripped here", "123 45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeICO(tt.input)
			assert.ErrorIs(t, err, ErrNonDigitICO)
		})
	}
}

func TestNormalizeICO_DigitCheckRunsBeforeLengthCheck(t *testing.T) {
	// Nine non-digit characters must report the non-digit failure,
	// not the length failure.
	_, err := NormalizeICO("abcdefghi")
	assert.ErrorIs(t, err, ErrNonDigitICO)
	assert.NotErrorIs(t, err, ErrICOTooLong)
}

func TestStripWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"leading and trailing", "  12345  ", "12345"},
		{"interior", "123 45", "12345"},
		{"tabs and newlines", "\t123\n45\r", "12345"},
		{"no whitespace", "70890021", "70890021"},
		{"only whitespace", " \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripWhitespace(tt.input))
		})
	}
}

type stringerICO struct{ v string }

func (s stringerICO) String() string { return s.v }

func TestCoerceICO(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"string", "12345", "12345"},
		{"int", 12345, "12345"},
		{"int64", int64(70890021), "70890021"},
		{"uint", uint(42), "42"},
		{"stringer", stringerICO{"00012345"}, "00012345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := CoerceICO(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, text)
		})
	}
}

func TestCoerceICO_RejectsNonTextualTypes(t *testing.T) {
	for _, v := range []any{nil, 3.14, []byte("123"), struct{}{}, map[string]int{}} {
		_, err := CoerceICO(v)
		assert.ErrorIs(t, err, ErrNotText, "value %#v", v)
	}
}

func TestCoerceICO_ThenNormalize(t *testing.T) {
	text, err := CoerceICO(12345)
	require.NoError(t, err)

	ico, err := NormalizeICO(text)
	require.NoError(t, err)
	assert.Equal(t, ICO("00012345"), ico)
}
