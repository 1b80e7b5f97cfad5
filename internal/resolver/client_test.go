package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"wastenot/planner/internal/config"
	"wastenot/planner/internal/domain"
)

func testClient(baseURL string) RemoteClient {
	return NewRemoteClient(config.ResolverConfig{
		BaseURL:              baseURL,
		Timeout:              5,
		MaxRetries:           0,
		MaxRequestsPerSecond: 100,
	})
}

func TestDishIngredients(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dishes/ingredients" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["dish_name"] != "carbonara" {
			t.Fatalf("unexpected dish name %q", body["dish_name"])
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ingredientsResponse{
			Dish: "carbonara",
			Ingredients: []domain.Ingredient{
				{Name: "Bacon", Quantity: "150g"},
				{Name: "Eggs", Quantity: "3 pieces"},
			},
			MatchType: "generated",
		})
	}))
	defer srv.Close()

	got, err := testClient(srv.URL).DishIngredients(context.Background(), "carbonara")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Bacon" {
		t.Fatalf("unexpected ingredients: %v", got)
	}
}

func TestDishIngredientsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "No matching dish found"})
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).DishIngredients(context.Background(), "unicorn stew")
	if !errors.Is(err, domain.ErrDishNotFound) {
		t.Fatalf("expected ErrDishNotFound, got %v", err)
	}
}

func TestDishIngredientsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).DishIngredients(context.Background(), "carbonara")
	if err == nil || errors.Is(err, domain.ErrDishNotFound) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestExpiryInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/storage/expiry" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expiryResponse{Days: 10, Method: "fridge"})
	}))
	defer srv.Close()

	advice, err := testClient(srv.URL).ExpiryInfo(context.Background(), "strawberries")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if advice.Method != domain.StorageMethodFridge || advice.FridgeDays != 10 {
		t.Fatalf("unexpected advice: %+v", advice)
	}
	if advice.Source != domain.AdviceSourceRemote {
		t.Fatalf("expected remote source, got %s", advice.Source)
	}
	if advice.Days() != 10 {
		t.Fatalf("expected 10 days, got %d", advice.Days())
	}
}

func TestExpiryInfoUnknownMethod(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expiryResponse{Days: 10, Method: "attic"})
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).ExpiryInfo(context.Background(), "strawberries"); err == nil {
		t.Fatal("expected error for unknown storage method")
	}
}
