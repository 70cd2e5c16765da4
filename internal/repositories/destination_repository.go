package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"roadtrip/internal/models/db_models"
)

type DestinationRepository interface {
	Create(ctx context.Context, dest *db_models.Destination) error
	GetByID(ctx context.Context, id string) (*db_models.Destination, error)
	List(ctx context.Context, offset, limit int) ([]db_models.Destination, error)
	Update(ctx context.Context, currentID string, dest *db_models.Destination) error
	Delete(ctx context.Context, id string) error
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) Create(ctx context.Context, dest *db_models.Destination) error {
	return r.db.WithContext(ctx).Create(dest).Error
}

// GetByID returns nil, nil when no row matches.
func (r *destinationRepository) GetByID(ctx context.Context, id string) (*db_models.Destination, error) {
	var dest db_models.Destination
	err := r.db.WithContext(ctx).First(&dest, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dest, nil
}

// List pages in primary-key order so repeated calls see a stable,
// disjoint sequence absent mutation.
func (r *destinationRepository) List(ctx context.Context, offset, limit int) ([]db_models.Destination, error) {
	var dests []db_models.Destination
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&dests).Error
	if err != nil {
		return nil, err
	}
	return dests, nil
}

// Update applies the patched record under currentID inside one
// transaction. When the derived id changed, the collision check and the
// key rewrite commit together, so no window exists in which two rows
// share an id.
func (r *destinationRepository) Update(ctx context.Context, currentID string, dest *db_models.Destination) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if dest.ID != currentID {
			var count int64
			if err := tx.Model(&db_models.Destination{}).
				Where("id = ?", dest.ID).
				Count(&count).Error; err != nil {
				return fmt.Errorf("collision check failed: %w", err)
			}
			if count > 0 {
				return gorm.ErrDuplicatedKey
			}
		}

		result := tx.Model(&db_models.Destination{}).
			Where("id = ?", currentID).
			Updates(map[string]interface{}{
				"id":         dest.ID,
				"name":       dest.Name,
				"lat":        dest.Lat,
				"long":       dest.Long,
				"image_urls": dest.ImageURLs,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update destination: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *destinationRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&db_models.Destination{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
