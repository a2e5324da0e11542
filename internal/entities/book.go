package entities

import (
	"fmt"
	"time"
)

// Book owns the reference to its author. Authors keep no list of books;
// the books of an author are always queried.
type Book struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"uniqueIndex;size:512;not null" json:"title"`
	Genre         string    `gorm:"size:128" json:"genre"`
	NumberOfPages *int      `json:"number_of_pages"`
	AuthorID      uint      `gorm:"index;not null" json:"author_id"`
	Author        *Author   `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"author,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewBook builds an unsaved book without an author.
func NewBook(title, genre string, numberOfPages int) *Book {
	return &Book{
		Title:         title,
		Genre:         genre,
		NumberOfPages: &numberOfPages,
	}
}

func (Book) TableName() string {
	return "books"
}

func (b *Book) GetID() uint {
	return b.ID
}

func (b *Book) SetID(id uint) {
	b.ID = id
}

func (b *Book) NaturalKey() (string, string) {
	return "title", b.Title
}

// SetAuthor points the book at author, keeping the foreign key in sync.
func (b *Book) SetAuthor(author *Author) {
	b.Author = author
	if author == nil {
		b.AuthorID = 0
		return
	}
	b.AuthorID = author.ID
}

func (b *Book) String() string {
	pages := "null"
	if b.NumberOfPages != nil {
		pages = fmt.Sprintf("%d", *b.NumberOfPages)
	}
	author := "null"
	if b.Author != nil {
		author = b.Author.Name
	}
	return fmt.Sprintf("Book{id=%d, title='%s', genre='%s', numberOfPages=%s, author='%s'}", b.ID, b.Title, b.Genre, pages, author)
}

// Catalog is the combined listing of every book and every author.
type Catalog struct {
	Books   []Book   `json:"books"`
	Authors []Author `json:"authors"`
}
