package repository

import (
	"context"
	"errors"
	"fmt"

	"wastenot/planner/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StorageRepository interface {
	// Advice looks up storage recommendations for a food type. The
	// second return value reports whether the database knew the type.
	Advice(ctx context.Context, foodType string) (*domain.StorageAdvice, bool, error)
	FoodTypes(ctx context.Context) ([]string, error)
}

type storageRepository struct {
	db *pgxpool.Pool
}

func NewStorageRepository(db *pgxpool.Pool) StorageRepository {
	return &storageRepository{
		db: db,
	}
}

func (r *storageRepository) Advice(ctx context.Context, foodType string) (*domain.StorageAdvice, bool, error) {
	var a domain.StorageAdvice
	err := r.db.QueryRow(ctx,
		`SELECT type, pantry, fridge, method FROM food_storage WHERE LOWER(type) = LOWER($1)`,
		foodType,
	).Scan(&a.Type, &a.PantryDays, &a.FridgeDays, &a.Method)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load storage advice for %q: %w", foodType, err)
	}

	a.Source = domain.AdviceSourceDatabase
	return &a, true, nil
}

func (r *storageRepository) FoodTypes(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT type FROM food_storage ORDER BY type`)
	if err != nil {
		return nil, fmt.Errorf("failed to load food types: %w", err)
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan food type: %w", err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read food types: %w", err)
	}

	return types, nil
}
