package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/handiism/library-catalog/internal/model"
)

// Catalog is an ordered collection of books.
//
// Books keep the order they were loaded or added in. ISBN lookups are
// case-insensitive and return the first match; duplicates are allowed.
type Catalog struct {
	books []*model.Book
	store Store

	persistAvailability bool
	logger              Logger
}

// Stats summarizes catalog availability.
type Stats struct {
	Total     int
	Available int
	Borrowed  int
}

// New creates an empty Catalog. A nil store keeps all changes in memory.
func New(store Store, opts ...Option) *Catalog {
	c := &Catalog{
		store:               store,
		persistAvailability: true,
		logger:              discardLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load replaces the catalog contents with the rows of the store and
// returns how many books were loaded.
//
// A missing file yields ErrNotFound. On any error the catalog keeps its
// previous contents.
func (c *Catalog) Load(ctx context.Context) (int, error) {
	if c.store == nil {
		return 0, nil
	}

	books, err := c.store.Load(ctx)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("catalog file: %w: %w", ErrNotFound, err)
		}
		return 0, fmt.Errorf("loading catalog: %w", err)
	}

	c.books = books
	c.logger.Info("catalog loaded", "books", len(books))
	if sc, ok := c.store.(SkipCounter); ok && sc.Skipped() > 0 {
		c.logger.Debug("malformed rows skipped", "rows", sc.Skipped())
	}
	return len(books), nil
}

// Books returns the catalog contents in order.
func (c *Catalog) Books() []*model.Book {
	return slices.Clone(c.books)
}

// Len returns the number of books.
func (c *Catalog) Len() int {
	return len(c.books)
}

// Stats counts available and borrowed books.
func (c *Catalog) Stats() Stats {
	s := Stats{Total: len(c.books)}
	for _, book := range c.books {
		if book.Available {
			s.Available++
		}
	}
	s.Borrowed = s.Total - s.Available
	return s
}

// Search returns the books whose ISBN, title, author or genre name
// contains query, ignoring case. An empty query matches every book.
func (c *Catalog) Search(query string) []*model.Book {
	query = strings.ToLower(query)

	var matches []*model.Book
	for _, book := range c.books {
		if strings.Contains(strings.ToLower(book.ISBN), query) ||
			strings.Contains(strings.ToLower(book.Title), query) ||
			strings.Contains(strings.ToLower(book.Author), query) ||
			strings.Contains(strings.ToLower(book.GenreName()), query) {
			matches = append(matches, book)
		}
	}

	c.logger.Debug("search", "query", query, "matches", len(matches))
	return matches
}

// Find returns the first book with the given ISBN.
func (c *Catalog) Find(isbn string) (*model.Book, bool) {
	i := c.indexOf(isbn)
	if i < 0 {
		return nil, false
	}
	return c.books[i], true
}

// Borrow marks the book with the given ISBN as borrowed.
func (c *Catalog) Borrow(ctx context.Context, isbn string) (*model.Book, error) {
	book, ok := c.Find(isbn)
	if !ok {
		return nil, fmt.Errorf("isbn %s: %w", isbn, ErrNotFound)
	}
	if !book.Available {
		return book, fmt.Errorf("%q: %w", book.Title, ErrNotAvailable)
	}

	book.Borrow()
	if err := c.persistAvailabilityChange(ctx); err != nil {
		book.Return()
		return nil, err
	}

	c.logger.Info("book borrowed", "isbn", book.ISBN, "title", book.Title)
	return book, nil
}

// Return marks the book with the given ISBN as available.
func (c *Catalog) Return(ctx context.Context, isbn string) (*model.Book, error) {
	book, ok := c.Find(isbn)
	if !ok {
		return nil, fmt.Errorf("isbn %s: %w", isbn, ErrNotFound)
	}
	if book.Available {
		return book, fmt.Errorf("%q: %w", book.Title, ErrNotBorrowed)
	}

	book.Return()
	if err := c.persistAvailabilityChange(ctx); err != nil {
		book.Borrow()
		return nil, err
	}

	c.logger.Info("book returned", "isbn", book.ISBN, "title", book.Title)
	return book, nil
}

// Add appends a new available book and appends its row to the store.
//
// genreName is resolved with model.LookupGenre. ISBN uniqueness is not
// checked.
func (c *Catalog) Add(ctx context.Context, isbn, title, author, genreName string) (*model.Book, error) {
	isbn = strings.TrimSpace(isbn)
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)

	switch {
	case isbn == "":
		return nil, fmt.Errorf("isbn: %w", ErrMissingField)
	case title == "":
		return nil, fmt.Errorf("title: %w", ErrMissingField)
	case author == "":
		return nil, fmt.Errorf("author: %w", ErrMissingField)
	}

	genreCode, err := model.LookupGenre(genreName)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", genreName, err)
	}

	book := model.NewBook(isbn, title, author, genreCode)
	c.books = append(c.books, book)

	if c.store != nil {
		if err := c.store.Append(ctx, book); err != nil {
			c.books = c.books[:len(c.books)-1]
			c.logger.Error("appending book failed", "isbn", isbn, "error", err)
			return nil, fmt.Errorf("saving book: %w", err)
		}
	}

	c.logger.Info("book added", "isbn", book.ISBN, "title", book.Title, "genre", book.GenreName())
	return book, nil
}

// Remove deletes the first book with the given ISBN and rewrites the store.
func (c *Catalog) Remove(ctx context.Context, isbn string) (*model.Book, error) {
	i := c.indexOf(isbn)
	if i < 0 {
		return nil, fmt.Errorf("isbn %s: %w", isbn, ErrNotFound)
	}

	book := c.books[i]
	c.books = slices.Delete(c.books, i, i+1)

	if err := c.rewrite(ctx); err != nil {
		c.books = slices.Insert(c.books, i, book)
		return nil, err
	}

	c.logger.Info("book removed", "isbn", book.ISBN, "title", book.Title)
	return book, nil
}

func (c *Catalog) indexOf(isbn string) int {
	isbn = strings.TrimSpace(isbn)
	return slices.IndexFunc(c.books, func(b *model.Book) bool {
		return strings.EqualFold(b.ISBN, isbn)
	})
}

func (c *Catalog) persistAvailabilityChange(ctx context.Context) error {
	if !c.persistAvailability {
		return nil
	}
	return c.rewrite(ctx)
}

func (c *Catalog) rewrite(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	if err := c.store.Rewrite(ctx, c.books); err != nil {
		c.logger.Error("rewriting catalog failed", "error", err)
		return fmt.Errorf("saving catalog: %w", err)
	}
	return nil
}
