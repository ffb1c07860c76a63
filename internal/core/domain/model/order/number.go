package order

import (
	"fmt"
	"strconv"
	"strings"

	"procurement/internal/pkg/errs"
)

// Order numbers are year-scoped, human-readable identifiers of the form
// PED-{year}-{5-digit sequence}, e.g. "PED-2025-00042". They are globally
// unique and immutable after creation.

const numberPrefix = "PED"

// maxSequence is the highest sequence the 5-digit format can hold. Capping
// here keeps every stored number fixed-width, so lexicographic order on the
// column equals numeric order on the sequence.
const maxSequence = 99999

// FormatNumber renders an order number for the given year and sequence.
func FormatNumber(year, sequence int) string {
	return fmt.Sprintf("%s-%d-%05d", numberPrefix, year, sequence)
}

// NumberPattern returns the SQL LIKE pattern matching all order numbers of
// the given year.
func NumberPattern(year int) string {
	return fmt.Sprintf("%s-%d-%%", numberPrefix, year)
}

// ParseNumber extracts year and sequence from an order number. Parsing is
// strict: a malformed stored number is an error, never silently treated as
// the start of a new sequence, since that could collide with numbers already
// issued in the same year.
func ParseNumber(number string) (year, sequence int, err error) {
	malformed := func() (int, int, error) {
		return 0, 0, errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%q does not match %s-YYYY-NNNNN", number, numberPrefix))
	}

	parts := strings.Split(number, "-")
	if len(parts) != 3 || parts[0] != numberPrefix {
		return malformed()
	}

	year, err = strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 4 {
		return malformed()
	}

	sequence, err = strconv.Atoi(parts[2])
	if err != nil || len(parts[2]) != 5 || sequence < 1 {
		return malformed()
	}

	return year, sequence, nil
}

// NextNumber computes the number following lastNumber within the given year.
// An empty lastNumber starts the year's sequence at 1. A lastNumber from a
// different year, or one that does not parse, is an error. The sequence is
// capped at maxSequence; issuing beyond it fails rather than widening the
// number format.
func NextNumber(lastNumber string, year int) (string, error) {
	if lastNumber == "" {
		return FormatNumber(year, 1), nil
	}

	lastYear, lastSequence, err := ParseNumber(lastNumber)
	if err != nil {
		return "", err
	}

	if lastYear != year {
		return "", errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("last number %q belongs to year %d, not %d", lastNumber, lastYear, year))
	}

	if lastSequence >= maxSequence {
		return "", errs.NewValueIsOutOfRangeError(
			fmt.Sprintf("order number sequence for year %d", year),
			lastSequence+1, 1, maxSequence)
	}

	return FormatNumber(year, lastSequence+1), nil
}
