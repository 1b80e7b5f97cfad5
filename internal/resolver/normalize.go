package resolver

import (
	"regexp"
	"strconv"
	"strings"

	"wastenot/planner/internal/domain"
	"wastenot/planner/internal/quantity"
)

// Common household items excluded from grocery lists. Anyone cooking
// already owns these, so surfacing them only buries the fresh items.
var householdItems = []string{
	"salt", "pepper", "olive oil", "vegetable oil", "canola oil", "cooking oil",
	"sugar", "flour", "baking powder", "baking soda", "vanilla extract",
	"soy sauce", "vinegar", "oil", "black pepper", "white pepper", "oregano",
	"basil", "thyme", "rosemary", "paprika", "cumin", "cinnamon", "nutmeg",
	"mayonnaise", "ketchup", "mustard", "hot sauce", "butter", "margarine",
	"dried herbs", "spices", "seasoning",
}

// FilterFresh drops household staples and standardizes the measurement
// of everything that survives.
func FilterFresh(ingredients []domain.Ingredient) []domain.Ingredient {
	fresh := make([]domain.Ingredient, 0, len(ingredients))
	for _, ing := range ingredients {
		name := strings.ToLower(ing.Name)

		skip := false
		for _, item := range householdItems {
			if strings.Contains(name, item) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}

		fresh = append(fresh, domain.Ingredient{
			Name:     ing.Name,
			Quantity: StandardizeMeasurement(name, ing.Quantity),
		})
	}
	return fresh
}

var (
	cupRe  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*cups?`)
	tbspRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:tbsp|tablespoons?)`)
	tspRe  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:tsp|teaspoons?)`)
	ozRe   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:oz|ounces?)`)
	lbRe   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:lb|pounds?)`)
)

var liquidWords = []string{"milk", "water", "juice", "broth", "stock"}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// StandardizeMeasurement converts imperial kitchen measures to metric
// and estimates a sensible default for "as needed" proteins and
// produce. Unconvertible quantities pass through untouched.
func StandardizeMeasurement(name, qty string) string {
	if qty == quantity.AsNeeded {
		switch {
		case containsAny(name, []string{"meat", "chicken", "beef", "pork", "steak"}):
			return "250g"
		case containsAny(name, []string{"fish", "salmon", "tuna"}):
			return "200g"
		case containsAny(name, []string{"vegetable", "carrot", "potato", "tomato"}):
			return "100g"
		default:
			return qty
		}
	}

	// 1 cup is roughly 240ml for liquids, 150g for solids.
	if m := cupRe.FindStringSubmatch(qty); m != nil {
		amount, _ := strconv.ParseFloat(m[1], 64)
		if containsAny(name, liquidWords) {
			return strconv.Itoa(int(amount*240)) + "ml"
		}
		return strconv.Itoa(int(amount*150)) + "g"
	}
	if m := tbspRe.FindStringSubmatch(qty); m != nil {
		amount, _ := strconv.ParseFloat(m[1], 64)
		return strconv.Itoa(int(amount*15)) + "ml"
	}
	if m := tspRe.FindStringSubmatch(qty); m != nil {
		amount, _ := strconv.ParseFloat(m[1], 64)
		return strconv.Itoa(int(amount*5)) + "ml"
	}
	if m := ozRe.FindStringSubmatch(qty); m != nil {
		amount, _ := strconv.ParseFloat(m[1], 64)
		return strconv.Itoa(int(amount*28)) + "g"
	}
	if m := lbRe.FindStringSubmatch(qty); m != nil {
		amount, _ := strconv.ParseFloat(m[1], 64)
		return strconv.Itoa(int(amount*454)) + "g"
	}

	return qty
}

// joinIngredients renders structured ingredients back into the raw
// list format the dish cache stores.
func joinIngredients(ingredients []domain.Ingredient) string {
	parts := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		if ing.Quantity == "" || ing.Quantity == quantity.AsNeeded {
			parts = append(parts, ing.Name)
			continue
		}
		parts = append(parts, ing.Quantity+" "+ing.Name)
	}
	return strings.Join(parts, "; ")
}

var leadingAmountRe = regexp.MustCompile(`^(\d+(?:\.\d+)?(?:/\d+)?)\s*([a-zA-Z]+)?\s+(.+)$`)

// ParseIngredientList splits a raw ingredients string from the dish
// database ("200 g beef; 2 onions, 1 l milk") into structured items.
// Entries without a leading amount get an "as needed" quantity.
func ParseIngredientList(raw string) []domain.Ingredient {
	if raw == "" {
		return nil
	}

	parts := []string{raw}
	for _, sep := range []string{";", ","} {
		var next []string
		for _, p := range parts {
			for _, piece := range strings.Split(p, sep) {
				if piece = strings.TrimSpace(piece); piece != "" {
					next = append(next, piece)
				}
			}
		}
		parts = next
	}

	ingredients := make([]domain.Ingredient, 0, len(parts))
	for _, part := range parts {
		if m := leadingAmountRe.FindStringSubmatch(part); m != nil {
			ingredients = append(ingredients, domain.Ingredient{
				Name:     m[3],
				Quantity: strings.TrimSpace(m[1] + " " + m[2]),
			})
			continue
		}
		ingredients = append(ingredients, domain.Ingredient{
			Name:     part,
			Quantity: quantity.AsNeeded,
		})
	}
	return ingredients
}
