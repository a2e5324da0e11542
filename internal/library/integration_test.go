package library

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cebix/library/internal/config"
	"github.com/cebix/library/internal/database"
	"github.com/cebix/library/internal/entities"
)

func setupTestLibrary(t *testing.T, opts Options) *Library {
	t.Helper()
	db, err := database.NewDatabase(config.Database{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "library.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, opts)
}

func TestLibrary_RoundTrip(t *testing.T) {
	ctx := context.Background()
	lib := setupTestLibrary(t, Options{})

	author := entities.NewAuthor("Mateusz", 33, "Fantasy")
	require.NoError(t, lib.AddAuthor(ctx, author))

	found, err := lib.FindAuthorByName(ctx, "Mateusz")
	require.NoError(t, err)
	assert.Equal(t, author.Name, found.Name)
	assert.Equal(t, *author.Age, *found.Age)
	assert.Equal(t, author.FavouriteGenre, found.FavouriteGenre)
}

func TestLibrary_CatalogScenario(t *testing.T) {
	ctx := context.Background()
	lib := setupTestLibrary(t, Options{})

	require.NoError(t, lib.AddAuthor(ctx, entities.NewAuthor("Mateusz", 33, "Fantasy")))
	require.NoError(t, lib.AddAuthor(ctx, entities.NewAuthor("Mateusz", 33, "Fantasy")))
	require.NoError(t, lib.AddAuthor(ctx, entities.NewAuthor("Rowling", 45, "Fantasy")))

	require.NoError(t, lib.AddBookToAuthor(ctx, "Mateusz", entities.NewBook("Eragon", "Fantasy", 320)))
	require.NoError(t, lib.AddBookToAuthor(ctx, "Mateusz", entities.NewBook("Malowany Czlowiek", "Fantasy", 400)))
	require.NoError(t, lib.AddBookToAuthor(ctx, "Rowling", entities.NewBook("Harry Potter", "Fantasy", 350)))

	authors, err := lib.GetAllAuthors(ctx)
	require.NoError(t, err)
	require.Len(t, authors, 2)

	books, err := lib.GetBooksOfAuthor(ctx, "Mateusz")
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Eragon", books[0].Title)
	assert.Equal(t, "Malowany Czlowiek", books[1].Title)

	err = lib.DeleteAuthor(ctx, "Rowling")
	assert.ErrorIs(t, err, database.ErrReferenced)

	require.NoError(t, lib.DeleteBook(ctx, "Harry Potter"))
	require.NoError(t, lib.DeleteAuthor(ctx, "Rowling"))

	catalog, err := lib.GetAllBooksAndAuthors(ctx)
	require.NoError(t, err)
	assert.Len(t, catalog.Books, 2)
	require.Len(t, catalog.Authors, 1)
	assert.Equal(t, "Mateusz", catalog.Authors[0].Name)
}

func TestLibrary_UpdatesPersist(t *testing.T) {
	ctx := context.Background()
	lib := setupTestLibrary(t, Options{})

	require.NoError(t, lib.AddAuthor(ctx, entities.NewAuthor("Mateusz", 33, "Fantasy")))
	require.NoError(t, lib.AddAuthor(ctx, entities.NewAuthor("Rowling", 45, "Fantasy")))
	require.NoError(t, lib.AddBookToAuthor(ctx, "Mateusz", entities.NewBook("Eragon", "Fantasy", 320)))

	require.NoError(t, lib.UpdateBookTitle(ctx, "Eragon", "Eldest"))
	require.NoError(t, lib.UpdateBookNumberOfPages(ctx, "Eldest", intPtr(668)))
	require.NoError(t, lib.UpdateBookAuthor(ctx, "Eldest", &entities.Author{Name: "Rowling"}))

	book, err := lib.FindBookByTitle(ctx, "Eldest")
	require.NoError(t, err)
	assert.Equal(t, 668, *book.NumberOfPages)
	assert.Equal(t, "Rowling", book.Author.Name)

	_, err = lib.FindBookByTitle(ctx, "Eragon")
	assert.ErrorIs(t, err, ErrNotFound)

	err = lib.UpdateBookGenre(ctx, "Eldest", "")
	assert.ErrorIs(t, err, ErrInvalidEntity)
	book, err = lib.FindBookByTitle(ctx, "Eldest")
	require.NoError(t, err)
	assert.Equal(t, "Fantasy", book.Genre)

	require.NoError(t, lib.UpdateAuthorName(ctx, "Rowling", "J.K. Rowling"))
	books, err := lib.GetBooksOfAuthor(ctx, "J.K. Rowling")
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Eldest", books[0].Title)
}

func TestLibrary_DuplicateTitleRollsBack(t *testing.T) {
	ctx := context.Background()
	lib := setupTestLibrary(t, Options{})

	require.NoError(t, lib.AddAuthor(ctx, entities.NewAuthor("Mateusz", 33, "Fantasy")))
	require.NoError(t, lib.AddBookToAuthor(ctx, "Mateusz", entities.NewBook("Eragon", "Fantasy", 320)))
	require.NoError(t, lib.AddBookToAuthor(ctx, "Mateusz", entities.NewBook("Eldest", "Fantasy", 668)))

	err := lib.UpdateBookTitle(ctx, "Eldest", "Eragon")
	assert.ErrorIs(t, err, database.ErrDuplicate)

	_, err = lib.FindBookByTitle(ctx, "Eldest")
	assert.NoError(t, err)
}
