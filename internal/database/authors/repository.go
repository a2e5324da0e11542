// Package authors provides database operations for authors.
//
// # Usage
//
//	repo := authors.NewRepository(db)
//	author, err := repo.GetByName("Mateusz")
package authors

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cebix/library/internal/entities"
	"github.com/cebix/library/internal/services"
)

// Repository handles author lookups.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByName retrieves the author with exactly this name.
// Returns services.ErrNoResult when there is none.
func (r *Repository) GetByName(name string) (*entities.Author, error) {
	var author entities.Author
	err := r.db.Where("name = ?", name).First(&author).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, services.ErrNoResult
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// GetAll retrieves every author in insertion order.
func (r *Repository) GetAll() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Order("id ASC").Find(&authors).Error
	return authors, err
}
