package domain

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryHealth    Category = "health"
	CategoryCareer    Category = "career"
	CategoryPersonal  Category = "personal"
	CategoryFinancial Category = "financial"
	CategoryOther     Category = "other"
)

// Categories lists every category in canonical display order.
var Categories = []Category{
	CategoryHealth,
	CategoryCareer,
	CategoryPersonal,
	CategoryFinancial,
	CategoryOther,
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory resolves a category key case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Frequencies lists every habit frequency in canonical display order.
var Frequencies = []Frequency{
	FrequencyDaily,
	FrequencyWeekly,
	FrequencyMonthly,
}

func (f Frequency) Valid() bool {
	for _, known := range Frequencies {
		if f == known {
			return true
		}
	}
	return false
}

// ParseFrequency resolves a frequency key case-insensitively.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("unknown frequency %q", s)
	}
	return f, nil
}
