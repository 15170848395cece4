package kernel_test

import (
	"testing"

	"algexpress/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewMoney(t *testing.T) {
	t.Run("should normalize to two fractional digits", func(t *testing.T) {
		m := kernel.NewMoney(decimal.RequireFromString("10.999"))

		assert.Equal(t, "11.00", m.String())
	})

	t.Run("should round half up", func(t *testing.T) {
		m := kernel.NewMoney(decimal.RequireFromString("10.005"))

		assert.Equal(t, "10.01", m.String())
	})

	t.Run("should keep exact two-digit amounts", func(t *testing.T) {
		m := kernel.NewMoney(decimal.RequireFromString("32.90"))

		assert.Equal(t, "32.90", m.String())
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("should parse valid amount", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("12.50")

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "12.50", m.String())
	})

	t.Run("should fail with malformed amount", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("twelve fifty")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "value is invalid")
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("constructed value passes validation", func(t *testing.T) {
		require.NoError(t, kernel.Zero().Validate())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("adding zero is identity", func(t *testing.T) {
		m := mustMoney(t, "12.34")

		assert.True(t, m.Add(kernel.Zero()).IsEqual(m))
	})

	t.Run("multiplying by one is identity", func(t *testing.T) {
		m := mustMoney(t, "12.34")

		assert.True(t, m.Multiply(1).IsEqual(m))
	})

	t.Run("add is consistent with construction", func(t *testing.T) {
		x := mustMoney(t, "32.90")
		y := mustMoney(t, "4.50")

		assert.True(t, x.Add(y).IsEqual(mustMoney(t, "37.40")))
	})

	t.Run("subtract computes exact difference", func(t *testing.T) {
		tendered := mustMoney(t, "20.00")
		due := mustMoney(t, "12.50")

		assert.Equal(t, "7.50", tendered.Subtract(due).String())
	})

	t.Run("multiply rounds half up to two digits", func(t *testing.T) {
		m := mustMoney(t, "0.10").MultiplyDecimal(decimal.RequireFromString("0.25"))

		// 0.025 rounds up to 0.03
		assert.Equal(t, "0.03", m.String())
	})

	t.Run("line total for priced pizza with modifier", func(t *testing.T) {
		base := mustMoney(t, "32.90")
		modifier := mustMoney(t, "4.50")

		total := base.Add(modifier).Multiply(2)

		assert.Equal(t, "74.80", total.String())
	})
}

func TestMoney_Comparisons(t *testing.T) {
	smaller := mustMoney(t, "10.00")
	bigger := mustMoney(t, "10.01")

	assert.True(t, bigger.GreaterThan(smaller))
	assert.False(t, smaller.GreaterThan(bigger))
	assert.True(t, bigger.GreaterOrEqual(smaller))
	assert.True(t, bigger.GreaterOrEqual(mustMoney(t, "10.01")))
	assert.True(t, smaller.LessThan(bigger))
	assert.False(t, bigger.LessThan(smaller))
}

func TestMoney_Signs(t *testing.T) {
	assert.True(t, kernel.Zero().IsZero())
	assert.False(t, kernel.Zero().IsPositive())
	assert.False(t, kernel.Zero().IsNegative())

	positive := mustMoney(t, "0.01")
	assert.True(t, positive.IsPositive())
	assert.False(t, positive.IsNegative())

	negative := kernel.Zero().Subtract(positive)
	assert.True(t, negative.IsNegative())
	assert.False(t, negative.IsPositive())
}
