package books

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cebix/library/internal/entities"
	"github.com/cebix/library/internal/services"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB) {
	dbPath := filepath.Join(t.TempDir(), "books.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Author{}, &entities.Book{})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return NewRepository(db), db
}

func seed(t *testing.T, db *gorm.DB, author *entities.Author, books ...*entities.Book) {
	require.NoError(t, db.Create(author).Error)
	for _, book := range books {
		book.SetAuthor(author)
		require.NoError(t, db.Omit("Author").Create(book).Error)
	}
}

func TestRepository_GetByTitle(t *testing.T) {
	repo, db := setupTestDB(t)
	seed(t, db, entities.NewAuthor("Mateusz", 33, "Fantasy"), entities.NewBook("Eragon", "Fantasy", 320))

	book, err := repo.GetByTitle("Eragon")
	require.NoError(t, err)
	assert.Equal(t, "Fantasy", book.Genre)
	assert.Equal(t, 320, *book.NumberOfPages)
	require.NotNil(t, book.Author)
	assert.Equal(t, "Mateusz", book.Author.Name)

	_, err = repo.GetByTitle("eragon")
	assert.ErrorIs(t, err, services.ErrNoResult)
}

func TestRepository_GetByAuthorName(t *testing.T) {
	repo, db := setupTestDB(t)
	seed(t, db, entities.NewAuthor("Mateusz", 33, "Fantasy"),
		entities.NewBook("Eragon", "Fantasy", 320),
		entities.NewBook("Malowany Czlowiek", "Fantasy", 400))
	seed(t, db, entities.NewAuthor("Rowling", 45, "Fantasy"), entities.NewBook("Harry Potter", "Fantasy", 350))

	books, err := repo.GetByAuthorName("Rowling")
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Harry Potter", books[0].Title)

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Eragon", all[0].Title)
	assert.Equal(t, "Malowany Czlowiek", all[1].Title)
}
