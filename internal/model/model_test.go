package model

import (
	"errors"
	"testing"
)

func TestGenreName(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "Romance"},
		{2, "Science Fiction"},
		{7, "Fantasy"},
		{9, "Poetry"},
		{10, "Unknown Genre"},
		{-1, "Unknown Genre"},
		{1 << 30, "Unknown Genre"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := GenreName(tt.code); got != tt.want {
				t.Errorf("GenreName(%d) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestLookupGenre(t *testing.T) {
	tests := []struct {
		name    string
		want    int
		wantErr error
	}{
		{"Fantasy", 7, nil},
		{"fantasy", 7, nil},
		{"  CHILDREN'S FICTION ", 5, nil},
		{"self-help", 6, nil},
		{"Cookbooks", 0, ErrUnknownGenre},
		{"", 0, ErrUnknownGenre},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LookupGenre(tt.name)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("LookupGenre(%q) error = %v, want %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("LookupGenre(%q) = %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func TestLookupGenre_RoundTrip(t *testing.T) {
	for _, g := range Genres() {
		code, err := LookupGenre(g.Name)
		if err != nil {
			t.Fatalf("LookupGenre(%q) failed: %v", g.Name, err)
		}
		if GenreName(code) != g.Name {
			t.Errorf("GenreName(%d) = %q, want %q", code, GenreName(code), g.Name)
		}
	}
}

func TestGenres_ReturnsCopy(t *testing.T) {
	list := Genres()
	if len(list) != 10 {
		t.Fatalf("len(Genres()) = %d, want 10", len(list))
	}
	list[0].Name = "changed"
	if GenreName(0) != "Romance" {
		t.Error("modifying Genres() result should not change the table")
	}
}

func TestBook_BorrowReturn(t *testing.T) {
	book := NewBook("111-1111111111", "Dune", "Herbert", 2)

	if !book.Available || book.AvailabilityLabel() != "Available" {
		t.Fatal("new book should be available")
	}

	book.Borrow()
	if book.Available || book.AvailabilityLabel() != "Borrowed" {
		t.Error("Borrow() should mark the book as borrowed")
	}

	book.Borrow()
	if book.Available {
		t.Error("Borrow() on a borrowed book should leave it borrowed")
	}

	book.Return()
	if !book.Available || book.AvailabilityLabel() != "Available" {
		t.Error("Return() should mark the book as available")
	}
}

func TestBook_String(t *testing.T) {
	book := &Book{ISBN: "111-1111111111", Title: "Dune", Author: "Herbert", GenreCode: 2}

	want := "ISBN: 111-1111111111, Title: Dune, Author: Herbert, Genre Code: 2, Available: False"
	if got := book.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBook_GenreName(t *testing.T) {
	book := NewBook("1", "t", "a", 42)
	if got := book.GenreName(); got != UnknownGenre {
		t.Errorf("GenreName() = %q, want %q", got, UnknownGenre)
	}
}
