package group

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// SourceType classifies where a line item came from.
type SourceType int

const (
	// SourceTypeUnknown represents an invalid or undefined source.
	SourceTypeUnknown SourceType = iota

	// SourceParser means the item was captured by the comment parser.
	SourceParser

	// SourceShop means the item was added through the shop storefront.
	SourceShop

	// SourceLive means the item was added during a live-stream sale.
	SourceLive

	// SourceManual means the owner added the item by hand in the panel.
	SourceManual
)

func getSourceTypeStrings() map[SourceType]string {
	return map[SourceType]string{
		SourceTypeUnknown: "unknown",
		SourceParser:      "parser",
		SourceShop:        "shop",
		SourceLive:        "live",
		SourceManual:      "manual",
	}
}

// Validate checks if the SourceType value is valid.
func (s SourceType) Validate() error {
	if s < SourceParser || s > SourceManual {
		return errs.NewValueIsInvalidErrorWithCause("source type",
			fmt.Errorf("%d is not a valid source type", s))
	}
	return nil
}

// String returns the persisted key of the source type.
func (s SourceType) String() string {
	if str, ok := getSourceTypeStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// SourceTypeFromString parses a persisted source-type key.
func SourceTypeFromString(raw string) (SourceType, error) {
	for sourceType, str := range getSourceTypeStrings() {
		if str == raw && sourceType != SourceTypeUnknown {
			return sourceType, nil
		}
	}
	return SourceTypeUnknown, errs.NewValueIsInvalidErrorWithCause("source type",
		fmt.Errorf("%q is not a recognized source type", raw))
}
