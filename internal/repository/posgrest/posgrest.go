package posgrest

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// repository is a generic GORM-based repository.
type repository[T interface{}] struct {
	db *gorm.DB
}

// New creates a generic repository for type T over the given connection.
func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// Create inserts a new entity.
func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// ListCreatedBefore returns up to limit entities created before the given
// instant, oldest first.
func (r *repository[T]) ListCreatedBefore(ctx context.Context, before time.Time, limit int) ([]T, error) {
	var entities []T
	err := r.db.WithContext(ctx).
		Where("created_at < ?", before).
		Order("created_at ASC").
		Limit(limit).
		Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return entities, nil
}

// Update updates the non-zero fields of an entity identified by ID.
func (r *repository[T]) Update(ctx context.Context, entity *T, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Updates(entity).Error
}

// Delete removes an entity by its ID.
func (r *repository[T]) Delete(ctx context.Context, id string) error {
	var entity T
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity).Error
}
