// Package group contains the packing group entity and its line items.
//
// A packing group is one shippable and payable unit within an order. Groups
// accumulate line items while open; completing checkout freezes the group so
// that no further item mutation is permitted. The freeze is enforced by a
// guard on every mutating path, not by deleting or detaching anything.
package group
