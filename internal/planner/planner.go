// Package planner builds categorized grocery lists for a planning
// session and reconciles them against household inventory. Everything
// here is a pure transformation over the resolver's output and an
// inventory snapshot; each recomputation supersedes the last.
package planner

import (
	"context"
	"errors"
	"strings"

	"wastenot/planner/internal/domain"
	"wastenot/planner/internal/inventory"
	"wastenot/planner/internal/pantry"
	"wastenot/planner/internal/quantity"
	"wastenot/planner/internal/resolver"

	log "github.com/sirupsen/logrus"
)

// DishResolver resolves a dish name to fresh ingredients and offers
// known dishes when resolution fails.
type DishResolver interface {
	Resolve(ctx context.Context, dish string) (*resolver.Resolution, error)
	Suggestions(n int) []string
}

// maxSuggestions caps the alternatives offered for unresolvable dishes.
const maxSuggestions = 5

type Service struct {
	resolver  DishResolver
	inventory inventory.Store
}

func NewService(resolver DishResolver, inventory inventory.Store) *Service {
	return &Service{
		resolver:  resolver,
		inventory: inventory,
	}
}

// Plan resolves every selected meal, merges duplicate ingredients,
// and produces the categorized grocery list. Unresolvable dishes are
// reported as missing; a collaborator failure is surfaced verbatim in
// the Error field, never as a panic or partial crash.
func (s *Service) Plan(ctx context.Context, meals []domain.SelectedMeal) domain.GroceryList {
	var (
		all     []domain.Ingredient
		found   []string
		missing []string
	)

	for _, meal := range meals {
		if meal.Name == "" {
			continue
		}

		res, err := s.resolver.Resolve(ctx, meal.Name)
		if err != nil {
			if errors.Is(err, domain.ErrDishNotFound) {
				missing = append(missing, meal.Name)
				continue
			}
			log.Errorf("Failed to resolve dish %q: %v", meal.Name, err)
			return domain.GroceryList{Error: err.Error()}
		}

		found = append(found, res.Dish)
		for _, ing := range res.Ingredients {
			all = append(all, domain.Ingredient{
				Name:     ing.Name,
				Quantity: quantity.Scale(ing.Quantity, meal.Servings),
			})
		}
	}

	combined := combineIngredients(all)

	list := domain.GroceryList{
		Success:         len(found) > 0,
		Dishes:          found,
		MissingDishes:   missing,
		ItemsByCategory: make(map[domain.Category][]domain.GroceryItem),
	}
	if len(missing) > 0 {
		list.Suggestions = s.resolver.Suggestions(maxSuggestions)
	}

	for _, ing := range combined {
		item := domain.GroceryItem{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Category: Categorize(ing.Name),
		}
		if IsStaple(ing.Name) {
			list.PantryItems = append(list.PantryItems, item)
			continue
		}
		list.ItemsByCategory[item.Category] = append(list.ItemsByCategory[item.Category], item)
	}

	for cat, items := range list.ItemsByCategory {
		if len(items) == 0 {
			delete(list.ItemsByCategory, cat)
		}
	}

	return list
}

// combineIngredients merges duplicates by case-insensitive name,
// adding their quantities. The first occurrence keeps its casing and
// list position.
func combineIngredients(ingredients []domain.Ingredient) []domain.Ingredient {
	var combined []domain.Ingredient
	index := make(map[string]int)

	for _, ing := range ingredients {
		key := strings.ToLower(ing.Name)
		if key == "" {
			continue
		}
		if i, ok := index[key]; ok {
			combined[i].Quantity = quantity.Add(combined[i].Quantity, ing.Quantity)
			continue
		}
		index[key] = len(combined)
		combined = append(combined, ing)
	}

	return combined
}

// ItemsByCategory filters a grocery list down to one category,
// preserving list order. Calling it twice over the same list yields
// identical results.
func ItemsByCategory(list domain.GroceryList, category domain.Category) []domain.GroceryItem {
	items := list.ItemsByCategory[category]
	out := make([]domain.GroceryItem, len(items))
	copy(out, items)
	return out
}

// Columns splits the non-empty categories of a list across the two
// display columns, keeping the canonical category order.
func Columns(list domain.GroceryList) map[domain.Column][]domain.Category {
	columns := make(map[domain.Column][]domain.Category)
	for _, cat := range domain.Categories {
		if len(list.ItemsByCategory[cat]) == 0 {
			continue
		}
		columns[cat.Column()] = append(columns[cat.Column()], cat)
	}
	return columns
}

// Availability checks one grocery item against the current inventory.
func (s *Service) Availability(ctx context.Context, name, qty string) (domain.AvailabilityResult, error) {
	stock, err := s.stockSnapshot(ctx)
	if err != nil {
		return domain.AvailabilityResult{}, err
	}
	return pantry.Check(domain.GroceryItem{Name: name, Quantity: qty}, stock), nil
}

// Reconcile computes availability for every item in the list against a
// single inventory snapshot.
func (s *Service) Reconcile(ctx context.Context, list domain.GroceryList) (map[string]domain.AvailabilityResult, error) {
	stock, err := s.stockSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	var items []domain.GroceryItem
	for _, cat := range domain.Categories {
		items = append(items, list.ItemsByCategory[cat]...)
	}
	items = append(items, list.PantryItems...)

	return pantry.CheckAll(items, stock), nil
}

func (s *Service) stockSnapshot(ctx context.Context) ([]domain.PantryItem, error) {
	foods, err := s.inventory.All(ctx)
	if err != nil {
		return nil, err
	}

	stock := make([]domain.PantryItem, 0, len(foods))
	for _, f := range foods {
		stock = append(stock, f.PantryView())
	}
	return stock, nil
}
