package entities

import (
	"fmt"
	"time"
)

type Author struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"uniqueIndex;size:256;not null" json:"name"`
	Age            *int      `json:"age"`
	FavouriteGenre string    `gorm:"size:128" json:"favourite_genre"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewAuthor builds an unsaved author.
func NewAuthor(name string, age int, favouriteGenre string) *Author {
	return &Author{
		Name:           name,
		Age:            &age,
		FavouriteGenre: favouriteGenre,
	}
}

func (Author) TableName() string {
	return "authors"
}

func (a *Author) GetID() uint {
	return a.ID
}

func (a *Author) SetID(id uint) {
	a.ID = id
}

func (a *Author) NaturalKey() (string, string) {
	return "name", a.Name
}

func (a *Author) String() string {
	age := "null"
	if a.Age != nil {
		age = fmt.Sprintf("%d", *a.Age)
	}
	return fmt.Sprintf("Author{id=%d, name='%s', age=%s, favouriteGenre='%s'}", a.ID, a.Name, age, a.FavouriteGenre)
}
