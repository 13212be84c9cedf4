package model

import (
	"errors"
	"strings"
)

// UnknownGenre is the display name for codes missing from the genre table.
const UnknownGenre = "Unknown Genre"

// ErrUnknownGenre is returned when a genre name is not in the genre table.
var ErrUnknownGenre = errors.New("unknown genre")

// Genre is one entry of the genre table.
type Genre struct {
	Code int
	Name string
}

// genres is indexed by genre code.
var genres = [...]string{
	"Romance",
	"Mystery",
	"Science Fiction",
	"Thriller",
	"Young Adult",
	"Children's Fiction",
	"Self-help",
	"Fantasy",
	"Historical Fiction",
	"Poetry",
}

// GenreName returns the display name for code, or UnknownGenre when the
// code is not in the table. It never fails.
func GenreName(code int) string {
	if code < 0 || code >= len(genres) {
		return UnknownGenre
	}
	return genres[code]
}

// LookupGenre resolves a genre name to its code.
//
// Matching ignores case and surrounding whitespace:
//
//	LookupGenre("fantasy")     // 7, nil
//	LookupGenre(" Poetry ")    // 9, nil
//	LookupGenre("Cookbooks")   // 0, ErrUnknownGenre
func LookupGenre(name string) (int, error) {
	name = strings.TrimSpace(name)
	for code, genre := range genres {
		if strings.EqualFold(genre, name) {
			return code, nil
		}
	}
	return 0, ErrUnknownGenre
}

// Genres returns a copy of the genre table ordered by code.
func Genres() []Genre {
	list := make([]Genre, len(genres))
	for code, name := range genres {
		list[code] = Genre{Code: code, Name: name}
	}
	return list
}
