package exporters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cebix/library/internal/entities"
	"github.com/cebix/library/internal/services"
	"github.com/cebix/library/internal/utils"
)

const (
	authorsDir = "authors"
	booksDir   = "books"
)

// MarkdownExporter writes one note per author and per book plus an index
// linking all of them.
type MarkdownExporter struct {
	ExportDir     string
	IndexFileName string
}

func NewMarkdownExporter(exportDir string) *MarkdownExporter {
	return &MarkdownExporter{
		ExportDir:     exportDir,
		IndexFileName: "index.md",
	}
}

func (exporter *MarkdownExporter) ensureDirs() error {
	for _, dir := range []string{authorsDir, booksDir} {
		if err := os.MkdirAll(filepath.Join(exporter.ExportDir, dir), 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	return nil
}

// Write renders catalog into ExportDir, replacing notes of the same name.
func (exporter *MarkdownExporter) Write(catalog *entities.Catalog) (services.ExportResult, error) {
	result := services.ExportResult{}

	if err := exporter.ensureDirs(); err != nil {
		return result, err
	}

	booksByAuthor := make(map[uint][]entities.Book)
	for _, book := range catalog.Books {
		booksByAuthor[book.AuthorID] = append(booksByAuthor[book.AuthorID], book)
	}

	for i := range catalog.Authors {
		author := &catalog.Authors[i]
		path := filepath.Join(exporter.ExportDir, authorsDir, utils.SanitizeFilename(author.Name)+".md")
		if err := writeFile(path, GenerateAuthorMarkdown(author, booksByAuthor[author.ID])); err != nil {
			return result, err
		}
		result.AuthorsExported++
		result.FilesWritten++
	}

	for i := range catalog.Books {
		book := &catalog.Books[i]
		path := filepath.Join(exporter.ExportDir, booksDir, utils.SanitizeFilename(book.Title)+".md")
		if err := writeFile(path, GenerateBookMarkdown(book)); err != nil {
			return result, err
		}
		result.BooksExported++
		result.FilesWritten++
	}

	indexPath := filepath.Join(exporter.ExportDir, exporter.IndexFileName)
	if err := writeFile(indexPath, GenerateIndexMarkdown(catalog)); err != nil {
		return result, err
	}
	result.FilesWritten++

	log.Info().Str("dir", exporter.ExportDir).Int("files", result.FilesWritten).Msg("Exported catalog to markdown")
	return result, nil
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func link(name string) string {
	return "[[" + utils.SanitizeFilename(name) + "]]"
}

func optionalInt(v *int) string {
	if v == nil {
		return "unknown"
	}
	return fmt.Sprintf("%d", *v)
}

func GenerateBookMarkdown(book *entities.Book) string {
	var builder strings.Builder

	authorName := ""
	if book.Author != nil {
		authorName = book.Author.Name
	}

	currentDateTime := time.Now().Format("2006-01-02")
	fmt.Fprintf(&builder, "---\n")
	fmt.Fprintf(&builder, "content_type: book\n")
	fmt.Fprintf(&builder, "created_at: %s\n", currentDateTime)
	fmt.Fprintf(&builder, "title: %s\n", quote(book.Title))
	fmt.Fprintf(&builder, "author: %s\n", quote(authorName))
	fmt.Fprintf(&builder, "genre: %s\n", quote(book.Genre))
	fmt.Fprintf(&builder, "pages: %s\n", optionalInt(book.NumberOfPages))
	fmt.Fprintf(&builder, "tags: [library, books]\n")
	fmt.Fprintf(&builder, "---\n\n")
	fmt.Fprintf(&builder, "# %s\n\n", book.Title)
	if authorName != "" {
		fmt.Fprintf(&builder, "- **Author:** %s\n", link(authorName))
	}
	fmt.Fprintf(&builder, "- **Genre:** %s\n", book.Genre)
	fmt.Fprintf(&builder, "- **Pages:** %s\n", optionalInt(book.NumberOfPages))

	return builder.String()
}

func GenerateAuthorMarkdown(author *entities.Author, books []entities.Book) string {
	var builder strings.Builder

	currentDateTime := time.Now().Format("2006-01-02")
	fmt.Fprintf(&builder, "---\n")
	fmt.Fprintf(&builder, "content_type: author\n")
	fmt.Fprintf(&builder, "created_at: %s\n", currentDateTime)
	fmt.Fprintf(&builder, "name: %s\n", quote(author.Name))
	fmt.Fprintf(&builder, "age: %s\n", optionalInt(author.Age))
	fmt.Fprintf(&builder, "favourite_genre: %s\n", quote(author.FavouriteGenre))
	fmt.Fprintf(&builder, "tags: [library, authors]\n")
	fmt.Fprintf(&builder, "---\n\n")
	fmt.Fprintf(&builder, "# %s\n\n", author.Name)
	fmt.Fprintf(&builder, "## Books\n\n")

	if len(books) == 0 {
		fmt.Fprintf(&builder, "_No books yet._\n")
	}
	for _, book := range books {
		fmt.Fprintf(&builder, "- %s (%s, %s pages)\n", link(book.Title), book.Genre, optionalInt(book.NumberOfPages))
	}

	return builder.String()
}

func GenerateIndexMarkdown(catalog *entities.Catalog) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "# Library\n\n")
	fmt.Fprintf(&builder, "%d authors, %d books\n\n", len(catalog.Authors), len(catalog.Books))

	fmt.Fprintf(&builder, "## Authors\n\n")
	for _, author := range catalog.Authors {
		fmt.Fprintf(&builder, "- %s\n", link(author.Name))
	}

	fmt.Fprintf(&builder, "\n## Books\n\n")
	for _, book := range catalog.Books {
		if book.Author != nil {
			fmt.Fprintf(&builder, "- %s by %s\n", link(book.Title), book.Author.Name)
			continue
		}
		fmt.Fprintf(&builder, "- %s\n", link(book.Title))
	}

	return builder.String()
}
