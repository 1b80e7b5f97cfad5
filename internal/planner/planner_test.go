package planner

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"wastenot/planner/internal/domain"
	"wastenot/planner/internal/resolver"
)

type fakeResolver struct {
	dishes map[string][]domain.Ingredient
	err    error
}

func (f *fakeResolver) Resolve(ctx context.Context, dish string) (*resolver.Resolution, error) {
	if f.err != nil {
		return nil, f.err
	}
	ingredients, ok := f.dishes[dish]
	if !ok {
		return nil, domain.ErrDishNotFound
	}
	return &resolver.Resolution{Dish: dish, Ingredients: ingredients, MatchType: resolver.MatchExact}, nil
}

func (f *fakeResolver) Suggestions(n int) []string {
	suggestions := make([]string, 0, n)
	for dish := range f.dishes {
		if len(suggestions) == n {
			break
		}
		suggestions = append(suggestions, dish)
	}
	return suggestions
}

type fakeStore struct {
	items []domain.FoodItem
	err   error
}

func (f *fakeStore) Add(ctx context.Context, item domain.FoodItem) (domain.FoodItem, error) {
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeStore) Remove(ctx context.Context, location domain.Location, id string) error {
	return nil
}

func (f *fakeStore) ItemsByLocation(ctx context.Context, location domain.Location) ([]domain.FoodItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	var items []domain.FoodItem
	for _, item := range f.items {
		if item.Location == location {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *fakeStore) All(ctx context.Context) ([]domain.FoodItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func newTestService(dishes map[string][]domain.Ingredient, stock []domain.FoodItem) *Service {
	return NewService(&fakeResolver{dishes: dishes}, &fakeStore{items: stock})
}

func TestPlanCombinesAndCategorizes(t *testing.T) {
	svc := newTestService(map[string][]domain.Ingredient{
		"carbonara": {
			{Name: "Bacon", Quantity: "150g"},
			{Name: "Parmesan cheese", Quantity: "50g"},
		},
		"bacon salad": {
			{Name: "bacon", Quantity: "100g"},
			{Name: "Lettuce", Quantity: "1 pieces"},
		},
	}, nil)

	list := svc.Plan(context.Background(), []domain.SelectedMeal{
		{Name: "carbonara", Servings: 1},
		{Name: "bacon salad", Servings: 1},
	})

	if !list.Success {
		t.Fatalf("expected success, got error %q", list.Error)
	}
	if len(list.Dishes) != 2 {
		t.Fatalf("expected 2 dishes, got %d", len(list.Dishes))
	}

	meat := list.ItemsByCategory[domain.CategoryMeat]
	if len(meat) != 1 {
		t.Fatalf("expected 1 meat item, got %d", len(meat))
	}
	if meat[0].Name != "Bacon" {
		t.Fatalf("expected first-seen casing Bacon, got %s", meat[0].Name)
	}
	if meat[0].Quantity != "250 g" {
		t.Fatalf("expected combined 250 g, got %s", meat[0].Quantity)
	}

	if len(list.ItemsByCategory[domain.CategoryDairy]) != 1 {
		t.Fatal("expected parmesan under Dairy")
	}
	if len(list.ItemsByCategory[domain.CategoryProduce]) != 1 {
		t.Fatal("expected lettuce under Produce")
	}
	if len(list.ItemsByCategory[domain.CategoryFish]) != 0 {
		t.Fatal("expected no Fish items")
	}
}

func TestPlanScalesServings(t *testing.T) {
	svc := newTestService(map[string][]domain.Ingredient{
		"omelette": {{Name: "Eggs", Quantity: "3 pieces"}},
	}, nil)

	list := svc.Plan(context.Background(), []domain.SelectedMeal{{Name: "omelette", Servings: 2}})

	items := list.ItemsByCategory[domain.CategoryOther]
	if len(items) != 1 || items[0].Quantity != "6 pieces" {
		t.Fatalf("expected 6 pieces, got %+v", items)
	}
}

func TestPlanReportsMissingDishes(t *testing.T) {
	svc := newTestService(map[string][]domain.Ingredient{
		"carbonara": {{Name: "Bacon", Quantity: "150g"}},
	}, nil)

	list := svc.Plan(context.Background(), []domain.SelectedMeal{
		{Name: "carbonara"},
		{Name: "unicorn stew"},
	})

	if !list.Success {
		t.Fatal("expected success with one resolved dish")
	}
	if !reflect.DeepEqual(list.MissingDishes, []string{"unicorn stew"}) {
		t.Fatalf("expected unicorn stew missing, got %v", list.MissingDishes)
	}
}

func TestPlanSuggestsAlternativesForMissingDishes(t *testing.T) {
	svc := newTestService(map[string][]domain.Ingredient{
		"carbonara": {{Name: "Bacon", Quantity: "150g"}},
	}, nil)

	list := svc.Plan(context.Background(), []domain.SelectedMeal{{Name: "unicorn stew"}})
	if !reflect.DeepEqual(list.Suggestions, []string{"carbonara"}) {
		t.Fatalf("expected known dishes suggested, got %v", list.Suggestions)
	}

	list = svc.Plan(context.Background(), []domain.SelectedMeal{{Name: "carbonara"}})
	if list.Suggestions != nil {
		t.Fatalf("expected no suggestions when everything resolves, got %v", list.Suggestions)
	}
}

func TestPlanAllDishesMissing(t *testing.T) {
	svc := newTestService(map[string][]domain.Ingredient{}, nil)

	list := svc.Plan(context.Background(), []domain.SelectedMeal{{Name: "unicorn stew"}})
	if list.Success {
		t.Fatal("expected failure when nothing resolves")
	}
	if list.Error != "" {
		t.Fatalf("missing dishes are not an error, got %q", list.Error)
	}
}

func TestPlanSurfacesResolverFailure(t *testing.T) {
	svc := NewService(&fakeResolver{err: errors.New("resolver API error: 503")}, &fakeStore{})

	list := svc.Plan(context.Background(), []domain.SelectedMeal{{Name: "carbonara"}})
	if list.Success {
		t.Fatal("expected failure")
	}
	if list.Error != "resolver API error: 503" {
		t.Fatalf("expected verbatim error, got %q", list.Error)
	}
}

func TestPlanSplitsStaples(t *testing.T) {
	svc := newTestService(map[string][]domain.Ingredient{
		"stir fry": {
			{Name: "Chicken breast", Quantity: "300g"},
			{Name: "Jasmine rice", Quantity: "200g"},
		},
	}, nil)

	list := svc.Plan(context.Background(), []domain.SelectedMeal{{Name: "stir fry"}})

	if len(list.PantryItems) != 1 || list.PantryItems[0].Name != "Jasmine rice" {
		t.Fatalf("expected rice split into pantry items, got %+v", list.PantryItems)
	}
	if len(list.ItemsByCategory[domain.CategoryGrains]) != 0 {
		t.Fatal("staples must not stay in the shopping columns")
	}
}

func TestItemsByCategoryIsIdempotent(t *testing.T) {
	svc := newTestService(map[string][]domain.Ingredient{
		"salad": {
			{Name: "Lettuce", Quantity: "1 pieces"},
			{Name: "Tomato", Quantity: "200g"},
			{Name: "Carrot", Quantity: "100g"},
		},
	}, nil)

	list := svc.Plan(context.Background(), []domain.SelectedMeal{{Name: "salad"}})

	first := ItemsByCategory(list, domain.CategoryProduce)
	second := ItemsByCategory(list, domain.CategoryProduce)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %v then %v", first, second)
	}
	if len(first) != 3 {
		t.Fatalf("expected 3 produce items, got %d", len(first))
	}
	if first[0].Name != "Lettuce" || first[2].Name != "Carrot" {
		t.Fatalf("expected list order preserved, got %v", first)
	}
}

func TestColumnsSkipEmptyCategories(t *testing.T) {
	list := domain.GroceryList{
		ItemsByCategory: map[domain.Category][]domain.GroceryItem{
			domain.CategoryProduce: {{Name: "Lettuce"}},
			domain.CategoryMeat:    {{Name: "Bacon"}},
		},
	}

	columns := Columns(list)
	if !reflect.DeepEqual(columns[domain.ColumnLeft], []domain.Category{domain.CategoryProduce}) {
		t.Fatalf("unexpected left column: %v", columns[domain.ColumnLeft])
	}
	if !reflect.DeepEqual(columns[domain.ColumnRight], []domain.Category{domain.CategoryMeat}) {
		t.Fatalf("unexpected right column: %v", columns[domain.ColumnRight])
	}
}

func TestAvailabilityUsesInventorySnapshot(t *testing.T) {
	svc := newTestService(nil, []domain.FoodItem{
		{Name: "Milk", Quantity: "300ml", Location: domain.LocationFridge},
	})

	result, err := svc.Availability(context.Background(), "Milk", "1000ml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsPartial || result.AdjustedQuantity != "700ml" {
		t.Fatalf("expected partial 700ml, got %+v", result)
	}
}

func TestReconcileCoversWholeList(t *testing.T) {
	svc := newTestService(map[string][]domain.Ingredient{
		"carbonara": {{Name: "Bacon", Quantity: "150g"}},
	}, []domain.FoodItem{
		{Name: "bacon", Quantity: "500g", Location: domain.LocationFridge},
	})

	list := svc.Plan(context.Background(), []domain.SelectedMeal{{Name: "carbonara"}})
	availability, err := svc.Reconcile(context.Background(), list)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !availability["Bacon"].InPantry {
		t.Fatal("expected bacon to be covered by inventory")
	}
}
