package model

import "fmt"

// Book represents a single entry in the library catalog.
//
// Book is a plain record: the Available flag is the only borrow state,
// there is no borrower, due date or history.
//
// Example:
//
//	book := NewBook("111-1111111111", "Dune", "Frank Herbert", 2)
//	book.Borrow()
//	// book.AvailabilityLabel() = "Borrowed"
type Book struct {
	// ISBN identifies the book, formatted like "999-9999999999".
	// Uniqueness is expected but not enforced.
	ISBN string

	// Title is the book title.
	Title string

	// Author is the author name.
	Author string

	// GenreCode is a key of the genre table (0-9).
	// Codes outside the table are kept and render as "Unknown Genre".
	GenreCode int

	// Available is true when the book may be borrowed and false while
	// it is borrowed out.
	Available bool
}

// NewBook creates an available Book.
func NewBook(isbn, title, author string, genreCode int) *Book {
	return &Book{
		ISBN:      isbn,
		Title:     title,
		Author:    author,
		GenreCode: genreCode,
		Available: true,
	}
}

// GenreName returns the display name of the book's genre.
func (b *Book) GenreName() string {
	return GenreName(b.GenreCode)
}

// AvailabilityLabel returns "Available" or "Borrowed".
func (b *Book) AvailabilityLabel() string {
	if b.Available {
		return "Available"
	}
	return "Borrowed"
}

// Borrow marks the book as borrowed. Callers check availability first.
func (b *Book) Borrow() {
	b.Available = false
}

// Return marks the book as available again.
func (b *Book) Return() {
	b.Available = true
}

// String renders all five fields on one line for diagnostics.
func (b *Book) String() string {
	return fmt.Sprintf("ISBN: %s, Title: %s, Author: %s, Genre Code: %d, Available: %s",
		b.ISBN, b.Title, b.Author, b.GenreCode, FormatAvailable(b.Available))
}

// FormatAvailable renders an availability flag the way it is stored
// in catalog files.
func FormatAvailable(available bool) string {
	if available {
		return "True"
	}
	return "False"
}
