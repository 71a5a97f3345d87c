package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogRepository handles the name/description lookup tables (roles,
// agencies, task types). T is the gorm model.
type CatalogRepository[T any] struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository for model T
func NewCatalogRepository[T any](db *gorm.DB) *CatalogRepository[T] {
	return &CatalogRepository[T]{db: db}
}

// Create creates a new entry
func (r *CatalogRepository[T]) Create(entry *T) error {
	return r.db.Create(entry).Error
}

// GetByID retrieves an entry by ID
func (r *CatalogRepository[T]) GetByID(id uuid.UUID) (*T, error) {
	var entry T
	if err := r.db.First(&entry, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetAll retrieves every entry ordered by name
func (r *CatalogRepository[T]) GetAll() ([]T, error) {
	var entries []T
	if err := r.db.Order("name ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Update updates an entry
func (r *CatalogRepository[T]) Update(entry *T) error {
	return r.db.Save(entry).Error
}

// Delete deletes an entry
func (r *CatalogRepository[T]) Delete(id uuid.UUID) error {
	result := r.db.Delete(new(T), "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
