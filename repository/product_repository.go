// Package repository is the data-access facade over the backing store. Pure
// pass-through: no retries, no caching, every call a fresh round trip with its
// own timeout context. Missing documents come back as nil, not errors.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GameStore-Ecommerce/gamestore-backend/config"
	"github.com/GameStore-Ecommerce/gamestore-backend/models"
)

// ListProducts fetches the full product collection, newest first so fresh
// admin uploads show up at the top of unsorted views.
func ListProducts(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := config.Gorm.WithContext(ctx).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct returns the product or nil when the id is unknown.
func GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := config.Gorm.WithContext(ctx).
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// CreateProduct inserts a new product. The store assigns id (UUID v7 hook)
// and the creation/update timestamps.
func CreateProduct(ctx context.Context, product *models.Product) (uuid.UUID, error) {
	if err := config.Gorm.WithContext(ctx).Create(product).Error; err != nil {
		return uuid.Nil, err
	}
	return product.ID, nil
}

// UpdateProduct applies a partial update and re-stamps updated_at. Returns
// gorm.ErrRecordNotFound when the id is unknown.
func UpdateProduct(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now().UTC()
	result := config.Gorm.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteProduct removes the product row. Returns gorm.ErrRecordNotFound when
// the id is unknown.
func DeleteProduct(ctx context.Context, id uuid.UUID) error {
	result := config.Gorm.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountProducts is the cheap aggregate used by the dashboard; raw pgx since
// no scanning into a model is needed.
func CountProducts(ctx context.Context) (int, error) {
	var count int
	if err := config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
