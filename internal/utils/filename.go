package utils

import (
	"strings"
	"unicode"
)

// MaxFilenameRunes leaves room for an extension within the usual 255 byte
// limit for names made of ASCII.
const MaxFilenameRunes = 200

// SanitizeFilename turns a book title or author name into a file name that
// is valid on common filesystems and safe inside a markdown wiki link.
func SanitizeFilename(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case strings.ContainsRune(`<>:"/\|?*#`, r):
			return -1
		case r == '[':
			return '('
		case r == ']':
			return ')'
		case unicode.IsSpace(r):
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, name)

	cleaned = strings.Join(strings.Fields(cleaned), " ")

	if runes := []rune(cleaned); len(runes) > MaxFilenameRunes {
		cleaned = strings.TrimSpace(string(runes[:MaxFilenameRunes]))
	}

	if cleaned == "" {
		return "Untitled"
	}
	return cleaned
}
