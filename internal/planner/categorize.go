package planner

import (
	"strings"

	"wastenot/planner/internal/domain"
)

var categoryKeywords = []struct {
	category domain.Category
	keywords []string
}{
	{domain.CategoryMeat, []string{
		"beef", "chicken", "pork", "turkey", "veal", "lamb", "ground meat",
		"steak", "sausage", "bacon", "ham", "salami",
	}},
	{domain.CategoryFish, []string{
		"fish", "salmon", "tuna", "cod", "tilapia", "shrimp", "seafood",
		"crab", "lobster", "clam", "oyster", "mussel", "scallop",
	}},
	{domain.CategoryProduce, []string{
		"vegetable", "fruit", "tomato", "lettuce", "onion", "garlic", "pepper",
		"carrot", "broccoli", "cabbage", "spinach", "apple", "orange", "banana",
		"herb", "lemon",
	}},
	{domain.CategoryDairy, []string{
		"milk", "cheese", "yogurt", "butter", "cream", "dairy", "ice cream",
	}},
	{domain.CategoryGrains, []string{
		"rice", "pasta", "bread", "flour", "cereal", "oat", "grain", "wheat", "barley",
	}},
	{domain.CategoryCondiments, []string{
		"sauce", "oil", "vinegar", "ketchup", "mustard", "mayo", "dressing",
		"seasoning", "spice",
	}},
}

// Categorize assigns an ingredient name to one of the fixed categories
// by keyword. Anything unmatched goes to Other.
func Categorize(name string) domain.Category {
	name = strings.ToLower(name)
	for _, group := range categoryKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(name, keyword) {
				return group.category
			}
		}
	}
	return domain.CategoryOther
}

var stapleKeywords = []string{
	"salt", "pepper", "sugar", "flour", "oil", "vinegar", "spice", "herb",
	"seasoning", "stock", "pasta", "rice", "grain", "canned", "dried",
	"baking", "sauce",
}

// IsStaple reports whether an ingredient is typically already in the
// pantry and belongs on the "check your pantry" list instead of the
// shopping columns.
func IsStaple(name string) bool {
	name = strings.ToLower(name)
	for _, keyword := range stapleKeywords {
		if strings.Contains(name, keyword) {
			return true
		}
	}
	return false
}
