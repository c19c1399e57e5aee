package domain

import (
	"strings"
)

// NormalizeName prepares an item name for case-insensitive comparison:
// trims, lowercases and collapses runs of whitespace into one space.
func NormalizeName(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	return strings.Join(fields, " ")
}

// CleanName trims and collapses whitespace but keeps the original casing.
func CleanName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
