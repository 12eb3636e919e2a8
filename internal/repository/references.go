package repository

import (
	"context"
	"fmt"

	"github.com/guttosm/order-service/internal/domain/model"
	"gorm.io/gorm"
)

// ReferenceRepository reads clients, categories and products.
type ReferenceRepository struct {
	db *gorm.DB
}

// NewReferenceRepository creates a new reference data repository.
func NewReferenceRepository(pg *Postgres) *ReferenceRepository {
	return &ReferenceRepository{db: pg.DB}
}

// ClientExists reports whether a client with id exists.
func (r *ReferenceRepository) ClientExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &model.Client{}, id)
}

// CategoryExists reports whether a category with id exists.
func (r *ReferenceRepository) CategoryExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &model.Category{}, id)
}

// ExistingProductIDs returns the subset of ids that name existing products, in one query.
func (r *ReferenceRepository) ExistingProductIDs(ctx context.Context, ids []uint) (map[uint]bool, error) {
	found := make(map[uint]bool, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	var existing []uint
	if err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id IN ?", ids).
		Pluck("id", &existing).Error; err != nil {
		return nil, fmt.Errorf("lookup products: %w", err)
	}

	for _, id := range existing {
		found[id] = true
	}
	return found, nil
}

func (r *ReferenceRepository) exists(ctx context.Context, table interface{}, id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(table).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("lookup %T: %w", table, err)
	}
	return count > 0, nil
}
