package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wastenot/planner/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DishRepository interface {
	// DishCache returns every known dish mapped to its raw ingredients
	// string, keyed by lower-cased dish name.
	DishCache(ctx context.Context) (map[string]string, error)
	// MappedDish resolves a colloquial term ("spag bol") to the official
	// dish name; empty string when no mapping exists.
	MappedDish(ctx context.Context, term string) (string, error)
	SaveMapping(ctx context.Context, term, dishName string) error
	SignatureDishes(ctx context.Context, cuisine string) ([]domain.Dish, error)
}

type dishRepository struct {
	db *pgxpool.Pool
}

func NewDishRepository(db *pgxpool.Pool) DishRepository {
	return &dishRepository{
		db: db,
	}
}

func (r *dishRepository) DishCache(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.Query(ctx, `SELECT dish_name, ingredients FROM food_ingredients`)
	if err != nil {
		return nil, fmt.Errorf("failed to load dish cache: %w", err)
	}
	defer rows.Close()

	cache := make(map[string]string)
	for rows.Next() {
		var name, ingredients string
		if err := rows.Scan(&name, &ingredients); err != nil {
			return nil, fmt.Errorf("failed to scan dish row: %w", err)
		}
		cache[strings.ToLower(name)] = ingredients
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dish rows: %w", err)
	}

	return cache, nil
}

func (r *dishRepository) MappedDish(ctx context.Context, term string) (string, error) {
	var dishName string
	err := r.db.QueryRow(ctx,
		`SELECT dish_name FROM dish_mappings WHERE LOWER(user_term) = LOWER($1)`,
		term,
	).Scan(&dishName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to look up dish mapping for %q: %w", term, err)
	}
	return dishName, nil
}

func (r *dishRepository) SaveMapping(ctx context.Context, term, dishName string) error {
	_, err := r.db.Exec(ctx, `
	INSERT INTO dish_mappings (user_term, dish_name)
	VALUES (LOWER($1), $2)
	ON CONFLICT (user_term)
	DO UPDATE SET dish_name = $2`, term, dishName)
	if err != nil {
		return fmt.Errorf("failed to save dish mapping: %w", err)
	}
	return nil
}

func (r *dishRepository) SignatureDishes(ctx context.Context, cuisine string) ([]domain.Dish, error) {
	query := `SELECT id, name, description, cuisine, url FROM meal_data`
	args := []any{}
	if cuisine != "" {
		query += ` WHERE LOWER(cuisine) = LOWER($1)`
		args = append(args, cuisine)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load signature dishes: %w", err)
	}
	defer rows.Close()

	var dishes []domain.Dish
	for rows.Next() {
		var d domain.Dish
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.Cuisine, &d.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan dish: %w", err)
		}
		dishes = append(dishes, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dishes: %w", err)
	}

	return dishes, nil
}
