package domain

// Ingredient is a single resolved ingredient before categorization.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// GroceryItem is an ingredient required by the selected meals.
type GroceryItem struct {
	Name     string   `json:"name"`
	Quantity string   `json:"quantity"`
	Category Category `json:"category,omitempty"`
}

// PantryItem is stock the household already owns.
type PantryItem struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// SelectedMeal is one dish chosen for the planning session. Servings
// defaults to 1 when the client sends zero.
type SelectedMeal struct {
	Name     string `json:"name"`
	Servings int    `json:"quantity"`
}

// GroceryList is the categorized shopping list produced for a planning
// session. Household staples are pulled out into PantryItems so the
// shopping columns only show what actually needs buying.
type GroceryList struct {
	Success         bool                       `json:"success"`
	Dishes          []string                   `json:"dishes,omitempty"`
	MissingDishes   []string                   `json:"missing_dishes,omitempty"`
	Suggestions     []string                   `json:"suggestions,omitempty"`
	ItemsByCategory map[Category][]GroceryItem `json:"items_by_category,omitempty"`
	PantryItems     []GroceryItem              `json:"pantry_items,omitempty"`
	Error           string                     `json:"error,omitempty"`
}

// AvailabilityResult describes how much of a grocery item is already
// covered by pantry stock. It is derived on demand and never stored.
type AvailabilityResult struct {
	InPantry         bool   `json:"in_pantry"`
	IsPartial        bool   `json:"is_partial"`
	OriginalQuantity string `json:"original_quantity"`
	AdjustedQuantity string `json:"adjusted_quantity"`
}
