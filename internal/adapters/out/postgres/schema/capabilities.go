// Package schema detects what the deployed database schema supports. The
// ledger runs against installations whose tables predate some columns, so the
// adapters adjust to what is actually there instead of assuming the newest
// shape.
package schema

import (
	"context"

	"gorm.io/gorm"
)

// RemovalStrategy is the physical variant used to remove line items.
type RemovalStrategy int

const (
	// RemoveByTimestamp sets the removed_at column. Preferred: keeps the
	// removal time for auditing.
	RemoveByTimestamp RemovalStrategy = iota

	// RemoveByFlag sets a boolean removed column on schemas without the
	// timestamp.
	RemoveByFlag

	// RemoveHard deletes the row when the schema tracks neither.
	RemoveHard
)

// ActiveCondition returns the SQL predicate selecting rows that are not
// removed, with column references qualified by prefix ("" or "li."). A
// hard-delete schema keeps no removed rows, so every stored row is active.
func (s RemovalStrategy) ActiveCondition(prefix string) string {
	switch s {
	case RemoveByTimestamp:
		return prefix + "removed_at IS NULL"
	case RemoveByFlag:
		return prefix + "removed = FALSE"
	default:
		return "TRUE"
	}
}

// PaymentScope reports how precisely payments attach to the ledger.
type PaymentScope int

const (
	// PaymentsPerGroup means payment rows can reference a packing group.
	PaymentsPerGroup PaymentScope = iota

	// PaymentsPerOrder means the schema has no group reference; group-level
	// captured sums fall back to the order sum.
	PaymentsPerOrder
)

// Capabilities describes the deployed schema. Resolved once at startup and
// shared read-only afterwards.
type Capabilities struct {
	Removal      RemovalStrategy
	PaymentScope PaymentScope
}

// Detect inspects information_schema and resolves the capability descriptor.
func Detect(ctx context.Context, db *gorm.DB) (Capabilities, error) {
	capabilities := Capabilities{
		Removal:      RemoveHard,
		PaymentScope: PaymentsPerOrder,
	}

	hasRemovedAt, err := columnExists(ctx, db, "line_items", "removed_at")
	if err != nil {
		return Capabilities{}, err
	}
	hasRemovedFlag, err := columnExists(ctx, db, "line_items", "removed")
	if err != nil {
		return Capabilities{}, err
	}
	switch {
	case hasRemovedAt:
		capabilities.Removal = RemoveByTimestamp
	case hasRemovedFlag:
		capabilities.Removal = RemoveByFlag
	}

	hasGroupID, err := columnExists(ctx, db, "payment_records", "group_id")
	if err != nil {
		return Capabilities{}, err
	}
	if hasGroupID {
		capabilities.PaymentScope = PaymentsPerGroup
	}

	return capabilities, nil
}

func columnExists(ctx context.Context, db *gorm.DB, table, column string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM information_schema.columns
		WHERE table_schema = current_schema()
		  AND table_name = ?
		  AND column_name = ?
	`, table, column).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
