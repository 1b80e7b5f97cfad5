package repository

import (
	"context"
	"errors"
	"fmt"

	"wastenot/planner/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SecondLifeRepository interface {
	// Methods lists repurposing methods, optionally filtered by a
	// case-insensitive ingredient substring.
	Methods(ctx context.Context, search string) ([]domain.SecondLifeMethod, error)
	MethodByID(ctx context.Context, id int) (*domain.SecondLifeMethod, error)
}

type secondLifeRepository struct {
	db *pgxpool.Pool
}

func NewSecondLifeRepository(db *pgxpool.Pool) SecondLifeRepository {
	return &secondLifeRepository{
		db: db,
	}
}

const secondLifeColumns = `method_id, method_name, is_combo, method_category, ingredient, description, picture`

func (r *secondLifeRepository) Methods(ctx context.Context, search string) ([]domain.SecondLifeMethod, error) {
	query := `SELECT ` + secondLifeColumns + ` FROM diy_products`
	args := []any{}
	if search != "" {
		query += ` WHERE ingredient ILIKE '%' || $1 || '%'`
		args = append(args, search)
	}
	query += ` ORDER BY method_id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load second life methods: %w", err)
	}
	defer rows.Close()

	var methods []domain.SecondLifeMethod
	for rows.Next() {
		var m domain.SecondLifeMethod
		if err := rows.Scan(&m.MethodID, &m.MethodName, &m.IsCombo, &m.MethodCategory, &m.Ingredient, &m.Description, &m.Picture); err != nil {
			return nil, fmt.Errorf("failed to scan second life method: %w", err)
		}
		methods = append(methods, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read second life methods: %w", err)
	}

	return methods, nil
}

func (r *secondLifeRepository) MethodByID(ctx context.Context, id int) (*domain.SecondLifeMethod, error) {
	var m domain.SecondLifeMethod
	err := r.db.QueryRow(ctx,
		`SELECT `+secondLifeColumns+` FROM diy_products WHERE method_id = $1`,
		id,
	).Scan(&m.MethodID, &m.MethodName, &m.IsCombo, &m.MethodCategory, &m.Ingredient, &m.Description, &m.Picture)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMethodNotFound
		}
		return nil, fmt.Errorf("failed to load second life method %d: %w", id, err)
	}
	return &m, nil
}
