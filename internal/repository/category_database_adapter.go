package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// CategoryDatabaseAdapter implements domain.CategoryRepository using sqlx.DB
type CategoryDatabaseAdapter struct {
	db *sqlx.DB
}

// NewCategoryDatabaseAdapter creates a new instance of CategoryDatabaseAdapter
func NewCategoryDatabaseAdapter(db *sqlx.DB) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

// GetAllCategories implements domain.CategoryRepository
func (a *CategoryDatabaseAdapter) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	var rows []models.Category
	query := `SELECT id, type FROM categories ORDER BY id ASC`

	if err := a.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, toDomainCategory(&row))
	}
	return categories, nil
}

// GetCategory implements domain.CategoryRepository. A missing category is
// reported as (nil, nil).
func (a *CategoryDatabaseAdapter) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	var row models.Category
	query := `SELECT id, type FROM categories WHERE id = $1`

	if err := a.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}
	category := toDomainCategory(&row)
	return &category, nil
}

func toDomainCategory(m *models.Category) domain.Category {
	return domain.Category{
		ID:   m.ID,
		Name: m.Type,
	}
}
