package kernel_test

import (
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from non-negative decimal", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromInt(50000))

		require.NoError(t, err)
		assert.False(t, m.IsZero())
		assert.Equal(t, "50000", m.String())
	})

	t.Run("should allow zero as the unset amount", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
		assert.True(t, m.IsEqual(kernel.ZeroMoney()))
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "amount")
	})
}

func TestMoneyFromInt(t *testing.T) {
	m, err := kernel.MoneyFromInt(15000)

	require.NoError(t, err)
	assert.True(t, m.Amount().Equal(decimal.NewFromInt(15000)))
}

func TestMoney_IsEqual(t *testing.T) {
	a, _ := kernel.MoneyFromInt(100)
	b, _ := kernel.NewMoney(decimal.RequireFromString("100.00"))
	c, _ := kernel.MoneyFromInt(101)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestNewWeight(t *testing.T) {
	t.Run("should create weight from non-negative grams", func(t *testing.T) {
		w, err := kernel.WeightFromInt(5000)

		require.NoError(t, err)
		assert.False(t, w.IsZero())
		assert.Equal(t, "5000", w.String())
	})

	t.Run("zero weight means not weighed yet", func(t *testing.T) {
		w := kernel.ZeroWeight()
		assert.True(t, w.IsZero())
	})

	t.Run("should reject negative grams", func(t *testing.T) {
		_, err := kernel.NewWeight(decimal.NewFromInt(-500))

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "weight")
	})
}
