package shared

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// ═══════════════════════════════════════════════════════════════════════════
// Calendar Value Objects
// ═══════════════════════════════════════════════════════════════════════════

// MinBirthYear is the earliest accepted birth year.
const MinBirthYear = 1900

// Month is a calendar month number (1-12).
type Month int

// IsValid checks that the month is within 1..12.
func (m Month) IsValid() bool {
	return m >= 1 && m <= 12
}

// Int returns the underlying int value.
func (m Month) Int() int {
	return int(m)
}

// String returns the month number as text.
func (m Month) String() string {
	return strconv.Itoa(int(m))
}

// Year is a calendar year.
type Year int

// InRange reports whether the year lies within [from, to].
func (y Year) InRange(from, to int) bool {
	return int(y) >= from && int(y) <= to
}

// Int returns the underlying int value.
func (y Year) Int() int {
	return int(y)
}

// String returns the year as text.
func (y Year) String() string {
	return strconv.Itoa(int(y))
}

// ═══════════════════════════════════════════════════════════════════════════
// Text helpers
// ═══════════════════════════════════════════════════════════════════════════

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Fold returns the Unicode case-folded form of s.
// A Caser keeps state, so a fresh one is created per call.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// FoldEqual compares two strings case-insensitively using full Unicode folding.
func FoldEqual(a, b string) bool {
	return Fold(a) == Fold(b)
}

// CountFold counts the runes of s that fold to the same value as letter.
func CountFold(s string, letter rune) int {
	if s == "" {
		return 0
	}

	target := Fold(string(letter))
	count := 0
	for _, r := range s {
		if Fold(string(r)) == target {
			count++
		}
	}
	return count
}

// ═══════════════════════════════════════════════════════════════════════════
// Record
// ═══════════════════════════════════════════════════════════════════════════

// Detail is a single labelled field of a record, ready for display.
type Detail struct {
	Label string
	Value string
}

// Record is implemented by every registry entity.
type Record interface {
	// Details returns labelled fields in display order.
	Details() []Detail

	// Age returns full years as of the given date.
	Age(asOf time.Time) int

	// CountLetterInSurname counts letter occurrences in the surname, ignoring case.
	CountLetterInSurname(letter rune) int

	// SurnameValue returns the surname.
	SurnameValue() string
}
