// Package fees calculates delivery fees from a static zone table. The
// ordering core treats fee resolution as an external concern; this adapter
// keeps zone pricing in configuration until a real logistics integration
// replaces it.
package fees

import (
	"context"
	"strings"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/ports"
	"algexpress/internal/pkg/errs"
)

var _ ports.DeliveryFeeCalculator = &ZoneFeeCalculator{}

// ZoneFeeCalculator resolves delivery fees by matching the address zone
// suffix against a configured price table, falling back to a base fee.
type ZoneFeeCalculator struct {
	baseFee kernel.Money
	zones   map[string]kernel.Money
}

// NewZoneFeeCalculator creates a calculator with a base fee and optional
// per-zone overrides. Zone keys are matched case-insensitively against the
// last comma-separated segment of the address.
func NewZoneFeeCalculator(baseFee kernel.Money, zones map[string]kernel.Money) (*ZoneFeeCalculator, error) {
	if err := baseFee.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("baseFee", err)
	}
	if baseFee.IsNegative() {
		return nil, errs.NewValueIsInvalidError("baseFee")
	}

	normalized := make(map[string]kernel.Money, len(zones))
	for zone, fee := range zones {
		if err := fee.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("zones["+zone+"]", err)
		}
		if fee.IsNegative() {
			return nil, errs.NewValueIsInvalidError("zones[" + zone + "]")
		}
		normalized[strings.ToLower(strings.TrimSpace(zone))] = fee
	}

	return &ZoneFeeCalculator{baseFee: baseFee, zones: normalized}, nil
}

// Calculate returns the fee for delivering to the given address.
func (c *ZoneFeeCalculator) Calculate(_ context.Context, address string) (kernel.Money, error) {
	if strings.TrimSpace(address) == "" {
		return kernel.Money{}, errs.NewValueIsRequiredError("address")
	}

	if fee, ok := c.zones[zoneOf(address)]; ok {
		return fee, nil
	}

	return c.baseFee, nil
}

// zoneOf extracts the zone segment from a free-form address. Addresses follow
// the "street, number, zone" convention used by the storefront.
func zoneOf(address string) string {
	segments := strings.Split(address, ",")
	last := segments[len(segments)-1]
	return strings.ToLower(strings.TrimSpace(last))
}
