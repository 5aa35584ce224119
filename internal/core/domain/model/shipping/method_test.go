package shipping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/domain/model/kernel"
)

func weightPtr(value float64) *kernel.Weight {
	w := kernel.MustNewWeight(value)
	return &w
}

func newRule(t *testing.T, methodID kernel.UUID, min, max *kernel.Weight, price float64) WeightRule {
	t.Helper()
	rule, err := NewWeightRule(methodID, min, max, kernel.NewMoneyFromFloat(price))
	require.NoError(t, err)
	return rule
}

func Test_NewWeightRule(t *testing.T) {
	t.Run("creates a rule with open bounds", func(t *testing.T) {
		methodID := kernel.NewUUID()

		rule, err := NewWeightRule(methodID, nil, nil, kernel.NewMoneyFromFloat(12))

		require.NoError(t, err)
		require.NoError(t, rule.Validate())
		assert.Equal(t, methodID, rule.MethodID())
		assert.Nil(t, rule.MinWeight())
		assert.Nil(t, rule.MaxWeight())
		assert.Equal(t, "12.00", rule.Price().String())
	})

	t.Run("returns error when min exceeds max", func(t *testing.T) {
		_, err := NewWeightRule(kernel.NewUUID(), weightPtr(10), weightPtr(5),
			kernel.NewMoneyFromFloat(12))
		assert.Error(t, err)
	})

	t.Run("returns error for negative price", func(t *testing.T) {
		_, err := NewWeightRule(kernel.NewUUID(), nil, nil, kernel.NewMoneyFromFloat(-1))
		assert.Error(t, err)
	})

	t.Run("returns error for empty method id", func(t *testing.T) {
		_, err := NewWeightRule(kernel.UUID{}, nil, nil, kernel.NewMoneyFromFloat(12))
		assert.Error(t, err)
	})

	t.Run("validate fails for a non-constructed rule", func(t *testing.T) {
		assert.ErrorIs(t, WeightRule{}.Validate(), ErrWeightRuleIsNotConstructed)
	})
}

func Test_WeightRule_Matches(t *testing.T) {
	methodID := kernel.NewUUID()

	t.Run("bounds are inclusive", func(t *testing.T) {
		rule := newRule(t, methodID, weightPtr(5), weightPtr(15), 20)

		assert.True(t, rule.Matches(kernel.MustNewWeight(5)))
		assert.True(t, rule.Matches(kernel.MustNewWeight(10)))
		assert.True(t, rule.Matches(kernel.MustNewWeight(15)))
		assert.False(t, rule.Matches(kernel.MustNewWeight(4.999)))
		assert.False(t, rule.Matches(kernel.MustNewWeight(15.001)))
	})

	t.Run("nil min matches from zero", func(t *testing.T) {
		rule := newRule(t, methodID, nil, weightPtr(5), 10)

		assert.True(t, rule.Matches(kernel.ZeroWeight()))
		assert.True(t, rule.Matches(kernel.MustNewWeight(5)))
		assert.False(t, rule.Matches(kernel.MustNewWeight(6)))
	})

	t.Run("nil max matches upward without limit", func(t *testing.T) {
		rule := newRule(t, methodID, weightPtr(25), nil, 99)

		assert.True(t, rule.Matches(kernel.MustNewWeight(1000)))
		assert.False(t, rule.Matches(kernel.MustNewWeight(24)))
	})
}

func Test_Method_PriceFor(t *testing.T) {
	methodID := kernel.NewUUID()

	newMethod := func(t *testing.T, rules []WeightRule) *Method {
		t.Helper()
		method, err := NewMethod(methodID, kernel.NewUUID(), "Courier",
			nil, kernel.NewMoneyFromFloat(40), rules, true)
		require.NoError(t, err)
		return method
	}

	t.Run("picks the bracket the weight falls into", func(t *testing.T) {
		method := newMethod(t, []WeightRule{
			newRule(t, methodID, nil, weightPtr(5), 10),
			newRule(t, methodID, nil, weightPtr(15), 20),
			newRule(t, methodID, nil, weightPtr(25), 30),
		})

		assert.Equal(t, "10.00", method.PriceFor(kernel.MustNewWeight(3)).String())
		assert.Equal(t, "20.00", method.PriceFor(kernel.MustNewWeight(10)).String())
		assert.Equal(t, "30.00", method.PriceFor(kernel.MustNewWeight(25)).String())
	})

	t.Run("falls back to the flat default above all brackets", func(t *testing.T) {
		method := newMethod(t, []WeightRule{
			newRule(t, methodID, nil, weightPtr(5), 10),
		})

		assert.Equal(t, "40.00", method.PriceFor(kernel.MustNewWeight(50)).String())
	})

	t.Run("the most specific matching bracket wins", func(t *testing.T) {
		method := newMethod(t, []WeightRule{
			newRule(t, methodID, nil, weightPtr(30), 25),
			newRule(t, methodID, weightPtr(5), weightPtr(30), 15),
			newRule(t, methodID, weightPtr(10), weightPtr(30), 12),
		})

		assert.Equal(t, "12.00", method.PriceFor(kernel.MustNewWeight(20)).String())
		assert.Equal(t, "15.00", method.PriceFor(kernel.MustNewWeight(7)).String())
		assert.Equal(t, "25.00", method.PriceFor(kernel.MustNewWeight(2)).String())
	})

	t.Run("no rules means every package prices at the default", func(t *testing.T) {
		method := newMethod(t, nil)
		assert.Equal(t, "40.00", method.PriceFor(kernel.MustNewWeight(1)).String())
	})
}

func Test_NewMethod(t *testing.T) {
	t.Run("returns error for empty name", func(t *testing.T) {
		_, err := NewMethod(kernel.NewUUID(), kernel.NewUUID(), "",
			nil, kernel.ZeroMoney(), nil, true)
		assert.ErrorIs(t, err, ErrMethodNameIsRequired)
	})

	t.Run("returns error for a non-constructed rule", func(t *testing.T) {
		_, err := NewMethod(kernel.NewUUID(), kernel.NewUUID(), "Courier",
			nil, kernel.ZeroMoney(), []WeightRule{{}}, true)
		assert.ErrorIs(t, err, ErrWeightRuleIsNotConstructed)
	})

	t.Run("validate fails for a non-constructed method", func(t *testing.T) {
		assert.ErrorIs(t, (&Method{}).Validate(), ErrMethodIsNotConstructed)
		assert.ErrorIs(t, (*Method)(nil).Validate(), ErrMethodIsNotConstructed)
	})
}
