package datastore

import (
	"context"

	"github.com/coreybb/studio/models"
)

// CategoryRepository serves the fixed category list used by selection inputs.
type CategoryRepository struct {
	categories []models.Category
}

func NewCategoryRepository(categories []models.Category) *CategoryRepository {
	return &CategoryRepository{categories: categories}
}

func (r *CategoryRepository) GetCategories(ctx context.Context) ([]models.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.Category, len(r.categories))
	for i, c := range r.categories {
		out[i] = models.Category{
			ID:               c.ID,
			Name:             c.Name,
			SubCategories:    append([]string{}, c.SubCategories...),
			CustomCategories: append([]string{}, c.CustomCategories...),
		}
	}
	return out, nil
}
