// Package storage persists the library catalog as a comma-separated file.
//
// # File Format
//
// The first line is a header, the remaining lines hold one book each:
//
//	ISBN,Title,Author,Genre Code,Available
//	111-1111111111,Dune,Frank Herbert,2,True
//
// The first physical line is the header; its content is ignored on read,
// even when it is blank. Blank lines after it are ignored. Rows that do not
// have exactly five fields are skipped. A five-field row whose genre code
// is not an integer aborts the whole load. Availability is true only for
// a case-insensitive "true".
//
// # File Operations
//
//	store := storage.NewFileStore("/path/to/books.csv")
//
//	// Read every well-formed row
//	books, err := store.Load(ctx)
//
//	// Append a single row, creating the file with a header if needed
//	err = store.Append(ctx, book)
//
//	// Replace the file with header plus all books
//	err = store.Rewrite(ctx, books)
//
// Rewrite goes through a temporary file in the same directory which is
// renamed over the original, so an interrupted write leaves the previous
// file in place.
package storage
