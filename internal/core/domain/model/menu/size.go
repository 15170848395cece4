package menu

import (
	"fmt"

	"algexpress/internal/pkg/errs"
)

// Size represents the named size tier of a catalog item.
// Each item carries its own price per size; an item need not offer every tier.
type Size int

const (
	// UnknownSize represents an invalid or undefined size.
	// This value (0) helps catch uninitialized Size values.
	UnknownSize Size = iota

	// Small is the smallest size tier.
	Small

	// Medium is the standard size tier.
	Medium

	// Large is the large size tier.
	Large

	// ExtraLarge is the biggest size tier.
	ExtraLarge
)

// getSizeStrings returns a map of Size values to their string representations.
func getSizeStrings() map[Size]string {
	return map[Size]string{
		UnknownSize: "Unknown",
		Small:       "Small",
		Medium:      "Medium",
		Large:       "Large",
		ExtraLarge:  "ExtraLarge",
	}
}

// getValidSizeStrings returns a map of only valid Size values.
func getValidSizeStrings() map[Size]string {
	//nolint:exhaustive // UnknownSize is intentionally excluded as it's invalid
	return map[Size]string{
		Small:      "Small",
		Medium:     "Medium",
		Large:      "Large",
		ExtraLarge: "ExtraLarge",
	}
}

// Validate checks if the Size value is valid.
// Valid sizes are Small, Medium, Large and ExtraLarge.
func (s Size) Validate() error {
	if _, ok := getValidSizeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("size is invalid", fmt.Errorf("%d is not a valid size", s))
	}
	return nil
}

// String returns the human-readable name of the size.
// Implements fmt.Stringer and is safe on any Size value.
func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// SizeFromString parses the human-readable size name used on the wire.
func SizeFromString(s string) (Size, error) {
	for size, name := range getValidSizeStrings() {
		if name == s {
			return size, nil
		}
	}
	return UnknownSize, errs.NewValueIsInvalidErrorWithCause("size is invalid", fmt.Errorf("%q is not a valid size", s))
}
