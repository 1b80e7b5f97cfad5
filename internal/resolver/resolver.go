// Package resolver turns a dish name into its fresh-ingredient list.
// Resolution is a three-step chain: exact match against the local dish
// database, then the colloquial-name mapping table, then the remote
// generation API. A miss is a business outcome, not an error.
package resolver

import (
	"context"
	"errors"
	"strings"
	"sync"

	"wastenot/planner/internal/domain"
	"wastenot/planner/internal/repository"

	log "github.com/sirupsen/logrus"
)

const (
	MatchExact  = "exact"
	MatchMapped = "mapped"
	MatchRemote = "remote"
)

// Resolution is the outcome of resolving one dish.
type Resolution struct {
	Dish        string              `json:"dish"`
	Ingredients []domain.Ingredient `json:"ingredients"`
	MatchType   string              `json:"match_type"`
}

type Resolver struct {
	repo   repository.DishRepository
	client RemoteClient

	mu    sync.RWMutex
	cache map[string]string
}

func New(repo repository.DishRepository, client RemoteClient) *Resolver {
	return &Resolver{
		repo:   repo,
		client: client,
		cache:  make(map[string]string),
	}
}

// LoadCache pulls the full dish-to-ingredients table into memory so
// resolution of known dishes never touches the database again.
func (r *Resolver) LoadCache(ctx context.Context) error {
	cache, err := r.repo.DishCache(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.cache = cache
	r.mu.Unlock()

	log.Infof("Loaded %d dishes into cache", len(cache))
	return nil
}

func (r *Resolver) cachedIngredients(dish string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	raw, ok := r.cache[dish]
	return raw, ok
}

// Resolve finds the fresh ingredients for a user-entered dish name.
// Returns domain.ErrDishNotFound when every step of the chain misses.
func (r *Resolver) Resolve(ctx context.Context, userInput string) (*Resolution, error) {
	dish := strings.ToLower(strings.TrimSpace(userInput))
	if dish == "" {
		return nil, domain.ErrDishNotFound
	}

	if raw, ok := r.cachedIngredients(dish); ok {
		return &Resolution{
			Dish:        dish,
			Ingredients: FilterFresh(ParseIngredientList(raw)),
			MatchType:   MatchExact,
		}, nil
	}

	mapped, err := r.repo.MappedDish(ctx, dish)
	if err != nil {
		log.Errorf("Dish mapping lookup failed for %q: %v", dish, err)
	} else if mapped != "" {
		if raw, ok := r.cachedIngredients(strings.ToLower(mapped)); ok {
			return &Resolution{
				Dish:        mapped,
				Ingredients: FilterFresh(ParseIngredientList(raw)),
				MatchType:   MatchMapped,
			}, nil
		}
	}

	ingredients, err := r.client.DishIngredients(ctx, userInput)
	if err != nil {
		if errors.Is(err, domain.ErrDishNotFound) {
			return nil, domain.ErrDishNotFound
		}
		return nil, err
	}
	if len(ingredients) == 0 {
		return nil, domain.ErrDishNotFound
	}

	// The remote API already excludes staples, but its output is not
	// trusted for measurements.
	fresh := FilterFresh(ingredients)

	// Learn the match so the next lookup never leaves the process.
	if err := r.repo.SaveMapping(ctx, dish, userInput); err != nil {
		log.Errorf("Failed to save dish mapping for %q: %v", dish, err)
	}
	r.mu.Lock()
	r.cache[dish] = joinIngredients(fresh)
	r.mu.Unlock()

	return &Resolution{
		Dish:        userInput,
		Ingredients: fresh,
		MatchType:   MatchRemote,
	}, nil
}

// Suggestions returns up to n known dish names to offer when a dish
// could not be resolved.
func (r *Resolver) Suggestions(n int) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	suggestions := make([]string, 0, n)
	for dish := range r.cache {
		if len(suggestions) == n {
			break
		}
		suggestions = append(suggestions, dish)
	}
	return suggestions
}
