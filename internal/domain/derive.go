package domain

import "math"

// StatusPolicy classifies an item's stock level. The ledger view uses a
// fixed threshold; the stock monitor compares against the item's own
// reorder point.
type StatusPolicy func(InventoryItem) Status

func FixedThreshold(threshold int) StatusPolicy {
	return func(i InventoryItem) Status {
		switch {
		case i.Stock == 0:
			return StatusOutOfStock
		case i.Stock <= threshold:
			return StatusLowStock
		default:
			return StatusInStock
		}
	}
}

// ReorderPointPolicy classifies against the item's ReorderPoint, falling
// back to fallbackThreshold for items that have none set.
func ReorderPointPolicy(fallbackThreshold int) StatusPolicy {
	return func(i InventoryItem) Status {
		threshold := i.ReorderPoint
		if threshold <= 0 {
			threshold = fallbackThreshold
		}
		switch {
		case i.Stock == 0:
			return StatusOutOfStock
		case i.Stock <= threshold:
			return StatusLowStock
		default:
			return StatusInStock
		}
	}
}

// Forecast is the depletion estimate for an item. An unbounded forecast
// (no measurable sales velocity) is distinct from any numeric value.
type Forecast struct {
	days      int
	unbounded bool
}

func DaysForecast(days int) Forecast { return Forecast{days: days} }

func UnboundedForecast() Forecast { return Forecast{unbounded: true} }

func (f Forecast) Unbounded() bool { return f.unbounded }

// Days is only meaningful when the forecast is not unbounded.
func (f Forecast) Days() int { return f.days }

func (i InventoryItem) DepletionForecast() Forecast {
	if i.SalesVelocity <= 0 {
		return UnboundedForecast()
	}
	return DaysForecast(int(math.Ceil(float64(i.Stock) / i.SalesVelocity)))
}

// CompareDepletion orders two items by depletion urgency, ascending.
// Exhausted items always come first regardless of their numeric forecast,
// unbounded forecasts always come last, and everything in between is
// ordered by days remaining.
func CompareDepletion(a, b InventoryItem) int {
	ca, da := depletionRank(a)
	cb, db := depletionRank(b)
	if ca != cb {
		return ca - cb
	}
	return da - db
}

func depletionRank(i InventoryItem) (class, days int) {
	if i.Stock == 0 {
		return 0, 0
	}
	f := i.DepletionForecast()
	if f.Unbounded() {
		return 2, 0
	}
	return 1, f.Days()
}
