// Package cron implements a minimal five-field cron pattern and a
// minute-aligned scheduler that fires registered triggers when the current
// wall-clock time matches, evaluated in a single configured timezone.
package cron

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// field is one of the five pattern positions. A field matches everything
// (wildcard), every Nth value (step), or a single literal value.
type field struct {
	wildcard bool
	step     int // 0 unless the field is */N
	literal  int
}

func (f field) matches(v int) bool {
	if f.wildcard {
		return true
	}
	if f.step > 0 {
		return v%f.step == 0
	}
	return v == f.literal
}

// Pattern is a parsed five-field cron expression:
// minute, hour, day-of-month, month, day-of-week.
type Pattern struct {
	raw     string
	minute  field
	hour    field
	day     field
	month   field
	weekday field
}

// String returns the original expression.
func (p Pattern) String() string { return p.raw }

// Parse parses a cron expression like "55 17 * * *" or "*/13 * * * *".
// Each field is a literal, "*", or "*/N".
func Parse(expr string) (Pattern, error) {
	parts := strings.Fields(expr)
	if len(parts) != 5 {
		return Pattern{}, fmt.Errorf("cron pattern %q: want 5 fields, got %d", expr, len(parts))
	}

	p := Pattern{raw: expr}
	specs := []struct {
		name     string
		min, max int
		dst      *field
	}{
		{"minute", 0, 59, &p.minute},
		{"hour", 0, 23, &p.hour},
		{"day-of-month", 1, 31, &p.day},
		{"month", 1, 12, &p.month},
		{"day-of-week", 0, 7, &p.weekday},
	}
	for i, spec := range specs {
		f, err := parseField(parts[i], spec.min, spec.max)
		if err != nil {
			return Pattern{}, fmt.Errorf("cron pattern %q: %s: %w", expr, spec.name, err)
		}
		*spec.dst = f
	}

	// Both 0 and 7 mean Sunday.
	if !p.weekday.wildcard && p.weekday.step == 0 && p.weekday.literal == 7 {
		p.weekday.literal = 0
	}

	return p, nil
}

// MustParse is Parse for compile-time-constant expressions; it panics on
// malformed input.
func MustParse(expr string) Pattern {
	p, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return p
}

func parseField(s string, min, max int) (field, error) {
	if s == "*" {
		return field{wildcard: true}, nil
	}
	if rest, ok := strings.CutPrefix(s, "*/"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n <= 0 {
			return field{}, fmt.Errorf("invalid step %q", s)
		}
		return field{step: n}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return field{}, fmt.Errorf("invalid value %q", s)
	}
	if n < min || n > max {
		return field{}, fmt.Errorf("value %d out of range [%d,%d]", n, min, max)
	}
	return field{literal: n}, nil
}

// Matches reports whether t (already in the scheduler's zone) matches the
// pattern. Seconds and smaller are ignored; a pattern matches at most one
// evaluation per minute.
func (p Pattern) Matches(t time.Time) bool {
	return p.minute.matches(t.Minute()) &&
		p.hour.matches(t.Hour()) &&
		p.day.matches(t.Day()) &&
		p.month.matches(int(t.Month())) &&
		p.weekday.matches(int(t.Weekday()))
}
