// Package books provides database operations for books.
//
// Every query preloads the book's author.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetByTitle("Eragon")
package books

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cebix/library/internal/entities"
	"github.com/cebix/library/internal/services"
)

// Repository handles book lookups.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByTitle retrieves the book with exactly this title.
// Returns services.ErrNoResult when there is none.
func (r *Repository) GetByTitle(title string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Author").Where("title = ?", title).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, services.ErrNoResult
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAll retrieves every book in insertion order.
func (r *Repository) GetAll() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Author").Order("id ASC").Find(&books).Error
	return books, err
}

// GetByAuthorName retrieves the books whose author has exactly this name.
// An unknown author yields an empty list.
func (r *Repository) GetByAuthorName(name string) ([]entities.Book, error) {
	var books []entities.Book
	authorIDs := r.db.Model(&entities.Author{}).Select("id").Where("name = ?", name)
	err := r.db.Preload("Author").
		Where("author_id IN (?)", authorIDs).
		Order("id ASC").
		Find(&books).Error
	return books, err
}
