package storage

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/handiism/library-catalog/internal/model"
)

// Header is the first row written to every catalog file.
var Header = []string{"ISBN", "Title", "Author", "Genre Code", "Available"}

const fieldCount = 5

// FileStore reads and writes a catalog file.
type FileStore struct {
	path string

	// skipped counts rows dropped by the last Load.
	skipped int
}

// NewFileStore creates a FileStore for the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the file path the store reads and writes.
func (s *FileStore) Path() string {
	return s.path
}

// Skipped returns how many malformed rows the last Load dropped.
func (s *FileStore) Skipped() int {
	return s.skipped
}

// Size returns the current size of the catalog file in bytes.
func (s *FileStore) Size() (int64, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Load reads all well-formed rows of the catalog file.
//
// The first line is discarded as a header. Rows with the wrong number of
// fields are skipped. A missing file yields an error matching
// fs.ErrNotExist. Any other read or parse error, such as a genre code that
// is not an integer, aborts the load and no books are returned.
func (s *FileStore) Load(ctx context.Context) ([]*model.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	books, skipped, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	s.skipped = skipped

	return books, nil
}

// Append adds one row for book at the end of the catalog file.
//
// A header row is written first when the file doesn't exist yet or is empty.
func (s *FileStore) Append(ctx context.Context, book *model.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	info, err := os.Stat(s.path)
	switch {
	case errors.Is(err, os.ErrNotExist), err == nil && info.Size() == 0:
		if err := w.Write(Header); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		needsNewline, err := missingTrailingNewline(s.path, info.Size())
		if err != nil {
			return err
		}
		if needsNewline {
			buf.WriteByte('\n')
		}
	}

	if err := w.Write(encode(book)); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Rewrite replaces the catalog file with a header row followed by books.
func (s *FileStore) Rewrite(ctx context.Context, books []*model.Book) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Header); err != nil {
		return err
	}
	for _, book := range books {
		if err := w.Write(encode(book)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	return writeFileAtomic(ctx, s.path, buf.Bytes())
}

// decode parses catalog rows from r. The first physical line is the
// header and is discarded before the CSV reader starts, so a blank first
// line is the one dropped.
func decode(r io.Reader) (books []*model.Book, skipped int, err error) {
	br := bufio.NewReader(r)
	if _, err := br.ReadString('\n'); err != nil && err != io.EOF {
		return nil, 0, err
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	cr.LazyQuotes = true

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		if len(record) != fieldCount {
			skipped++
			continue
		}

		book, err := parseRecord(record)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, 0, fmt.Errorf("line %d: %w", line+1, err)
		}
		books = append(books, book)
	}

	return books, skipped, nil
}

// parseRecord converts a five-field row into a Book.
func parseRecord(record []string) (*model.Book, error) {
	genreCode, err := strconv.Atoi(strings.TrimSpace(record[3]))
	if err != nil {
		return nil, fmt.Errorf("genre code %q: %w", record[3], err)
	}

	return &model.Book{
		ISBN:      record[0],
		Title:     record[1],
		Author:    record[2],
		GenreCode: genreCode,
		Available: strings.EqualFold(strings.TrimSpace(record[4]), "true"),
	}, nil
}

// encode converts a Book into one row.
func encode(book *model.Book) []string {
	return []string{
		book.ISBN,
		book.Title,
		book.Author,
		strconv.Itoa(book.GenreCode),
		model.FormatAvailable(book.Available),
	}
}

// missingTrailingNewline reports whether the last byte of the file is not
// a line break.
func missingTrailingNewline(path string, size int64) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	last := make([]byte, 1)
	if _, err := f.ReadAt(last, size-1); err != nil {
		return false, err
	}
	return last[0] != '\n', nil
}
