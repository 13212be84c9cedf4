// Package catalog implements the in-memory library catalog and its
// operations: load, search, borrow, return, add and remove.
//
// # Basic Usage
//
//	cat := catalog.New(storage.NewFileStore("books.csv"))
//
//	n, err := cat.Load(ctx)
//	if errors.Is(err, catalog.ErrNotFound) {
//	    // ask for another path
//	}
//
//	for _, book := range cat.Search("herbert") {
//	    fmt.Println(book)
//	}
//
//	book, err := cat.Borrow(ctx, "111-1111111111")
//
// # Persistence
//
// The catalog talks to its file through the Store interface:
//   - Add appends one row
//   - Remove rewrites the whole file after a successful removal
//   - Borrow and Return rewrite the file unless WithPersistAvailability(false)
//
// When persisting fails the in-memory change is undone and the error is
// returned, so memory and file never disagree.
//
// # Errors
//
// Outcomes that need reporting are sentinel errors matched with errors.Is:
//   - ErrNotFound: missing file or unknown ISBN
//   - ErrNotAvailable, ErrNotBorrowed: invalid borrow state
//   - ErrMissingField, model.ErrUnknownGenre: rejected Add input
//
// Anything else is an I/O failure of the current operation.
package catalog
