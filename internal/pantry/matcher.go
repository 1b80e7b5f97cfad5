// Package pantry reconciles grocery items against household stock.
package pantry

import (
	"strings"

	"wastenot/planner/internal/domain"
	"wastenot/planner/internal/quantity"
)

// Check compares one grocery item against pantry stock and reports how
// much still needs buying.
//
// Names must match exactly (case-insensitive); there is no fuzzy or
// substring matching here. When either quantity is unparseable or the
// units differ, the comparison is ambiguous and the item is treated as
// fully covered rather than flagged for purchase. The adjusted quantity
// never exceeds the original.
func Check(item domain.GroceryItem, stock []domain.PantryItem) domain.AvailabilityResult {
	result := domain.AvailabilityResult{
		OriginalQuantity: item.Quantity,
		AdjustedQuantity: item.Quantity,
	}

	var match *domain.PantryItem
	for i := range stock {
		if strings.EqualFold(stock[i].Name, item.Name) {
			match = &stock[i]
			break
		}
	}
	if match == nil {
		return result
	}

	need := quantity.Parse(item.Quantity)
	have := quantity.Parse(match.Quantity)

	if need.Value == nil || have.Value == nil || !strings.EqualFold(need.Unit, have.Unit) {
		result.InPantry = true
		return result
	}

	if *have.Value >= *need.Value {
		result.InPantry = true
		return result
	}

	// Partial cover: the shortfall keeps the grocery item's unit.
	result.IsPartial = true
	result.AdjustedQuantity = quantity.FormatValue(*need.Value-*have.Value) + need.Unit
	return result
}

// CheckAll evaluates every grocery item against the same stock snapshot.
func CheckAll(items []domain.GroceryItem, stock []domain.PantryItem) map[string]domain.AvailabilityResult {
	results := make(map[string]domain.AvailabilityResult, len(items))
	for _, item := range items {
		results[item.Name] = Check(item, stock)
	}
	return results
}
