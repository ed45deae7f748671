package validation

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical workout date format.
const DateLayout = "2006-01-02"

// dateLayoutLoose additionally admits unpadded month/day, which the
// canonical layout rejects.
const dateLayoutLoose = "2006-1-2"

// ParseDate returns the canonical YYYY-MM-DD form of value, or ok=false if
// the value is empty or not a valid calendar date. Unpadded components like
// "2024-5-1" are accepted and canonicalized.
func ParseDate(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		t, err = time.Parse(dateLayoutLoose, value)
		if err != nil {
			return "", false
		}
	}
	return t.Format(DateLayout), true
}

// RepsValid reports whether reps satisfies the set rule: present and >= 1.
func RepsValid(reps *int) bool {
	return reps != nil && *reps >= 1
}

// WeightValid reports whether weight satisfies the set rule: present and >= 0.
func WeightValid(weight *float64) bool {
	return weight != nil && *weight >= 0
}

// rawNumber extracts the numeric literal from a raw JSON value. Plain
// numbers and quoted numeric strings both parse; null, absent values and
// anything else yield ok=false.
func rawNumber(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil || n == "" {
		return "", false
	}
	return n.String(), true
}

// RepsValue parses a raw reps value into an integer. Fractional and
// non-numeric values yield nil rather than being coerced.
func RepsValue(raw json.RawMessage) *int {
	lit, ok := rawNumber(raw)
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(lit)
	if err != nil {
		return nil
	}
	return &v
}

// WeightValue parses a raw weight value into a float. Non-numeric values
// yield nil rather than being coerced.
func WeightValue(raw json.RawMessage) *float64 {
	lit, ok := rawNumber(raw)
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ExerciseLabel identifies an exercise in an error message: the trimmed name
// when there is one, otherwise the 1-based position.
func ExerciseLabel(name string, index int) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed
	}
	return strconv.Itoa(index + 1)
}

func setErrors(label string, setIndex int, reps *int, weight *float64) []string {
	var errs []string
	if !RepsValid(reps) {
		errs = append(errs, fmt.Sprintf("Exercise '%s' set #%d: reps must be >= 1.", label, setIndex+1))
	}
	if !WeightValid(weight) {
		errs = append(errs, fmt.Sprintf("Exercise '%s' set #%d: weight must be >= 0.", label, setIndex+1))
	}
	return errs
}
