// Package model defines the core data structures used throughout
// the library catalog application.
//
// # Book
//
// Book represents one catalog entry:
//
//	book := model.NewBook("111-1111111111", "Dune", "Frank Herbert", 2)
//	fmt.Println(book.GenreName())         // Science Fiction
//	fmt.Println(book.AvailabilityLabel()) // Available
//
// # Genres
//
// Genre codes map to display names through a fixed, read-only table:
//
//	code, err := model.LookupGenre("fantasy") // 7, nil
//	name := model.GenreName(42)               // "Unknown Genre"
//
// Available genres: Romance, Mystery, Science Fiction, Thriller, Young Adult,
// Children's Fiction, Self-help, Fantasy, Historical Fiction, Poetry.
package model
