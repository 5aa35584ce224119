// Package shippingrepo provides data transfer objects and mapping functions
// for shipping method reference data. The ledger only reads these tables;
// maintenance happens in the owner panel outside this service.
package shippingrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"
)

// MethodDTO represents the database structure of a shipping method.
type MethodDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID          uuid.UUID `gorm:"type:uuid;index"`
	Name             string
	MaxPackageWeight decimal.NullDecimal `gorm:"type:decimal(20,3)"`
	DefaultPrice     decimal.Decimal     `gorm:"type:decimal(20,2)"`
	Active           bool

	Rules []WeightRuleDTO `gorm:"foreignKey:MethodID"`
}

// TableName overrides GORM's default naming to use "shipping_methods".
func (MethodDTO) TableName() string {
	return "shipping_methods"
}

// WeightRuleDTO represents one weight bracket of a method's rule table.
// Null bounds mean the bracket is open on that side.
type WeightRuleDTO struct {
	ID        uint                `gorm:"primaryKey"`
	MethodID  uuid.UUID           `gorm:"type:uuid;index"`
	MinWeight decimal.NullDecimal `gorm:"type:decimal(20,3)"`
	MaxWeight decimal.NullDecimal `gorm:"type:decimal(20,3)"`
	Price     decimal.Decimal     `gorm:"type:decimal(20,2)"`
}

// TableName overrides GORM's default naming to use "shipping_weight_rules".
func (WeightRuleDTO) TableName() string {
	return "shipping_weight_rules"
}

func toDomain(dto MethodDTO) (*shipping.Method, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	maxWeight, err := nullableWeight(dto.MaxPackageWeight)
	if err != nil {
		return nil, err
	}

	rules := make([]shipping.WeightRule, 0, len(dto.Rules))
	for _, ruleDTO := range dto.Rules {
		lower, lowerErr := nullableWeight(ruleDTO.MinWeight)
		if lowerErr != nil {
			return nil, lowerErr
		}
		upper, upperErr := nullableWeight(ruleDTO.MaxWeight)
		if upperErr != nil {
			return nil, upperErr
		}

		rule, ruleErr := shipping.NewWeightRule(id, lower, upper, kernel.NewMoney(ruleDTO.Price))
		if ruleErr != nil {
			return nil, ruleErr
		}
		rules = append(rules, rule)
	}

	return shipping.NewMethod(id, ownerID, dto.Name, maxWeight,
		kernel.NewMoney(dto.DefaultPrice), rules, dto.Active)
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
