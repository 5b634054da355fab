package model

import (
	"strconv"
	"strings"
)

// Category classifies a transaction. Numbered categories start at 1.
type Category int

const (
	CategoryUnset Category = iota
	CategoryDining
	CategoryGroceries
	CategoryUtilities
	CategoryTransportation
	CategoryEducation
	CategoryEntertainment
	CategoryOthers
)

var categoryNames = map[Category]string{
	CategoryDining:         "DINING",
	CategoryGroceries:      "GROCERIES",
	CategoryUtilities:      "UTILITIES",
	CategoryTransportation: "TRANSPORTATION",
	CategoryEducation:      "EDUCATION",
	CategoryEntertainment:  "ENTERTAINMENT",
	CategoryOthers:         "OTHERS",
}

// Categories returns every category in numeric order.
func Categories() []Category {
	return []Category{
		CategoryDining,
		CategoryGroceries,
		CategoryUtilities,
		CategoryTransportation,
		CategoryEducation,
		CategoryEntertainment,
		CategoryOthers,
	}
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "UNSET"
}

// Number returns the 1-based number shown to the user.
func (c Category) Number() int { return int(c) }

// CategoryFromNumber maps a 1-based number to a category.
func CategoryFromNumber(n int) (Category, bool) {
	c := Category(n)
	_, ok := categoryNames[c]
	return c, ok
}

// ParseCategory accepts either a category number or its name (any case).
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return CategoryFromNumber(n)
	}
	for c, name := range categoryNames {
		if strings.EqualFold(name, s) {
			return c, true
		}
	}
	return CategoryUnset, false
}
