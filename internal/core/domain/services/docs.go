// Package services contains stateless domain services that implement
// cross-aggregate business algorithms.
//
// ShippingCalculator consolidates an order's total weight into capped-size
// packages and prices each one from a method's weight brackets.
//
// PaymentReconciler derives paid statuses from captured amounts: per-group
// status, the items-first shipping waterfall, and the oldest-first allocation
// of a shared payment pool across groups for display figures.
//
// Both services are pure: identical inputs always yield identical outputs,
// and neither touches persistence.
package services
