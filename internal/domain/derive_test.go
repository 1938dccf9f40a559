package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDepletionForecast_RoundsUp(t *testing.T) {
	item := InventoryItem{Stock: 45, SalesVelocity: 2}
	f := item.DepletionForecast()
	assert.False(t, f.Unbounded())
	assert.Equal(t, 23, f.Days())

	item = InventoryItem{Stock: 10, SalesVelocity: 5}
	assert.Equal(t, 2, item.DepletionForecast().Days())
}

func TestDepletionForecast_ZeroVelocityIsUnbounded(t *testing.T) {
	item := InventoryItem{Stock: 45, SalesVelocity: 0}
	assert.True(t, item.DepletionForecast().Unbounded())
}

func TestCompareDepletion_ExhaustedBeforeForecast(t *testing.T) {
	a := InventoryItem{ID: "a", Stock: 0}
	b := InventoryItem{ID: "b", Stock: 5, SalesVelocity: 2} // 3 days

	assert.Negative(t, CompareDepletion(a, b))
	assert.Positive(t, CompareDepletion(b, a))
}

func TestCompareDepletion_UnboundedLast(t *testing.T) {
	slow := InventoryItem{ID: "slow", Stock: 5, SalesVelocity: 0}
	soon := InventoryItem{ID: "soon", Stock: 100, SalesVelocity: 1} // 100 days

	assert.Positive(t, CompareDepletion(slow, soon))
}

func TestCompareDepletion_NumericOrder(t *testing.T) {
	three := InventoryItem{Stock: 6, SalesVelocity: 2}  // 3 days
	eight := InventoryItem{Stock: 16, SalesVelocity: 2} // 8 days

	assert.Negative(t, CompareDepletion(three, eight))
	assert.Zero(t, CompareDepletion(three, three))
}
