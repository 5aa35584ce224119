package queries

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fulfillment/internal/adapters/out/postgres/schema"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/core/domain/services"
)

// PreviewShippingQueryHandler computes a no-commitment shipping quote per
// active method. The order's total weight is derived from catalog weights of
// its active items; custom items without a product reference weigh nothing.
type PreviewShippingQueryHandler struct {
	db          *gorm.DB
	removal     schema.RemovalStrategy
	calculator  services.ShippingCalculator
	tenantLimit *kernel.Weight
}

// NewPreviewShippingQueryHandler creates a handler for shipping previews.
// removal selects the active-item predicate matching the deployed schema.
// tenantLimit is the tenant-wide package weight cap applied when a method
// defines none; nil disables the fallback cap.
func NewPreviewShippingQueryHandler(
	db *gorm.DB,
	removal schema.RemovalStrategy,
	tenantLimit *kernel.Weight,
) PreviewShippingQueryHandler {
	return PreviewShippingQueryHandler{
		db:          db,
		removal:     removal,
		calculator:  services.NewShippingCalculator(),
		tenantLimit: tenantLimit,
	}
}

// Handle executes the preview. Each active method of the tenant yields one
// quote row; methods stay ordered by name for stable output.
func (h PreviewShippingQueryHandler) Handle(
	ctx context.Context,
	query PreviewShippingQuery,
) ([]PreviewShippingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	totalWeight, err := h.orderWeight(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	methods, err := h.activeMethods(ctx, query.OwnerID())
	if err != nil {
		return nil, err
	}

	quotes := make([]PreviewShippingQueryResponse, 0, len(methods))
	for _, method := range methods {
		consolidation, err := h.calculator.Consolidate(totalWeight, method, h.tenantLimit)
		if err != nil {
			return nil, err
		}

		quotes = append(quotes, PreviewShippingQueryResponse{
			MethodID:     method.ID(),
			MethodName:   method.Name(),
			TotalWeight:  consolidation.TotalWeight,
			PackageCount: consolidation.PackageCount,
			TotalCost:    consolidation.TotalCost,
		})
	}

	return quotes, nil
}

// orderWeight sums catalog weight x quantity over the order's active items.
func (h PreviewShippingQueryHandler) orderWeight(
	ctx context.Context,
	orderID kernel.UUID,
) (kernel.Weight, error) {
	var total decimal.Decimal

	statement := fmt.Sprintf(`
		SELECT COALESCE(SUM(p.weight * li.qty), 0)
		FROM line_items li
		JOIN packing_groups pg ON pg.id = li.group_id
		JOIN products p ON p.id = li.product_id
		WHERE pg.order_id = ?
		  AND %s
	`, h.removal.ActiveCondition("li."))

	row := h.db.WithContext(ctx).Raw(statement, orderID.String()).Row()
	if err := row.Scan(&total); err != nil {
		return kernel.ZeroWeight(), err
	}

	return kernel.NewWeight(total)
}

// activeMethods loads the tenant's active methods with their rule tables and
// rebuilds the domain aggregates.
func (h PreviewShippingQueryHandler) activeMethods(
	ctx context.Context,
	ownerID kernel.UUID,
) ([]*shipping.Method, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			max_package_weight,
			default_price
		FROM shipping_methods
		WHERE owner_id = ?
		  AND active
		ORDER BY name, id
	`, ownerID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type methodRow struct {
		id           kernel.UUID
		name         string
		maxWeight    *kernel.Weight
		defaultPrice kernel.Money
	}

	methodRows := make([]methodRow, 0)
	for rows.Next() {
		var id uuid.UUID
		var name string
		var maxWeight decimal.NullDecimal
		var defaultPrice decimal.Decimal

		if err = rows.Scan(&id, &name, &maxWeight, &defaultPrice); err != nil {
			return nil, err
		}

		methodID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		current := methodRow{
			id:           methodID,
			name:         name,
			defaultPrice: kernel.NewMoney(defaultPrice),
		}
		current.maxWeight, err = nullableWeight(maxWeight)
		if err != nil {
			return nil, err
		}
		methodRows = append(methodRows, current)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	methods := make([]*shipping.Method, 0, len(methodRows))
	for _, row := range methodRows {
		rules, rulesErr := h.methodRules(ctx, row.id)
		if rulesErr != nil {
			return nil, rulesErr
		}

		method, methodErr := shipping.NewMethod(row.id, ownerID, row.name,
			row.maxWeight, row.defaultPrice, rules, true)
		if methodErr != nil {
			return nil, methodErr
		}
		methods = append(methods, method)
	}

	return methods, nil
}

func (h PreviewShippingQueryHandler) methodRules(
	ctx context.Context,
	methodID kernel.UUID,
) ([]shipping.WeightRule, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			min_weight,
			max_weight,
			price
		FROM shipping_weight_rules
		WHERE method_id = ?
		ORDER BY id
	`, methodID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rules := make([]shipping.WeightRule, 0)
	for rows.Next() {
		var minWeight, maxWeight decimal.NullDecimal
		var price decimal.Decimal

		if err = rows.Scan(&minWeight, &maxWeight, &price); err != nil {
			return nil, err
		}

		lower, lowerErr := nullableWeight(minWeight)
		if lowerErr != nil {
			return nil, lowerErr
		}
		upper, upperErr := nullableWeight(maxWeight)
		if upperErr != nil {
			return nil, upperErr
		}

		rule, ruleErr := shipping.NewWeightRule(methodID, lower, upper, kernel.NewMoney(price))
		if ruleErr != nil {
			return nil, ruleErr
		}
		rules = append(rules, rule)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rules, nil
}

func nullableWeight(value decimal.NullDecimal) (*kernel.Weight, error) {
	if !value.Valid {
		return nil, nil
	}
	weight, err := kernel.NewWeight(value.Decimal)
	if err != nil {
		return nil, err
	}
	return &weight, nil
}
