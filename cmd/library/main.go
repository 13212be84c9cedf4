package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize/english"

	"github.com/handiism/library-catalog/internal/catalog"
	"github.com/handiism/library-catalog/internal/config"
	"github.com/handiism/library-catalog/internal/model"
	"github.com/handiism/library-catalog/internal/storage"
)

func main() {
	// Command line flags
	var (
		fileFlag    = flag.String("file", "", "Catalog file (overrides config)")
		configFlag  = flag.String("config", "", "Path to config file")
		searchFlag  = flag.String("search", "", "Search title, author, ISBN or genre")
		borrowFlag  = flag.String("borrow", "", "Borrow the book with this ISBN")
		returnFlag  = flag.String("return", "", "Return the book with this ISBN")
		addFlag     = flag.String("add", "", "Add a book with this ISBN (needs -title, -author, -genre)")
		titleFlag   = flag.String("title", "", "Title of the book to add")
		authorFlag  = flag.String("author", "", "Author of the book to add")
		genreFlag   = flag.String("genre", "", "Genre name of the book to add")
		removeFlag  = flag.String("remove", "", "Remove the book with this ISBN")
		listFlag    = flag.Bool("list", false, "Print the whole catalog")
		verboseFlag = flag.Bool("verbose", false, "Show diagnostic logs")
	)

	flag.Parse()

	if *searchFlag == "" && *borrowFlag == "" && *returnFlag == "" && *addFlag == "" && *removeFlag == "" && !*listFlag {
		fmt.Println("Library Catalog - Manage a catalog of books")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  library -file books.csv -search <text>")
		fmt.Println("  library -file books.csv -borrow <isbn>")
		fmt.Println("  library -file books.csv -add <isbn> -title <title> -author <author> -genre <genre>")
		fmt.Println()
		fmt.Println("For interactive mode, use: library-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *fileFlag != "" {
		settings.CatalogPath = *fileFlag
	}

	level := settings.SlogLevel()
	var out io.Writer = io.Discard
	if *verboseFlag {
		out = os.Stderr
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))

	ctx := context.Background()
	store := storage.NewFileStore(settings.CatalogPath)
	cat := catalog.New(store, settings.ToCatalogOptions(logger)...)

	// Adding to a file that doesn't exist yet creates it.
	n, err := cat.Load(ctx)
	if err != nil && !(errors.Is(err, catalog.ErrNotFound) && *addFlag != "") {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("catalog ready", "path", settings.CatalogPath, "books", n, "skipped", store.Skipped())

	switch {
	case *searchFlag != "":
		results := cat.Search(*searchFlag)
		fmt.Printf("Found %s\n", english.Plural(len(results), "book", ""))
		printBooks(results)

	case *borrowFlag != "":
		book, err := cat.Borrow(ctx, *borrowFlag)
		exitOnError(err)
		fmt.Printf("You have borrowed %q.\n", book.Title)

	case *returnFlag != "":
		book, err := cat.Return(ctx, *returnFlag)
		exitOnError(err)
		fmt.Printf("%q has been returned.\n", book.Title)

	case *addFlag != "":
		book, err := cat.Add(ctx, *addFlag, *titleFlag, *authorFlag, *genreFlag)
		if errors.Is(err, model.ErrUnknownGenre) {
			fmt.Fprintln(os.Stderr, "Valid genres:")
			for _, g := range model.Genres() {
				fmt.Fprintf(os.Stderr, "  %s\n", g.Name)
			}
		}
		exitOnError(err)
		fmt.Printf("%q with ISBN %s has been added.\n", book.Title, book.ISBN)

	case *removeFlag != "":
		book, err := cat.Remove(ctx, *removeFlag)
		exitOnError(err)
		fmt.Printf("%q has been removed.\n", book.Title)

	case *listFlag:
		stats := cat.Stats()
		fmt.Printf("%s, %d available, %d borrowed\n", english.Plural(stats.Total, "book", ""), stats.Available, stats.Borrowed)
		printBooks(cat.Books())
	}
}

func printBooks(books []*model.Book) {
	if len(books) == 0 {
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ISBN\tTITLE\tAUTHOR\tGENRE\tSTATUS")
	for _, b := range books {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", b.ISBN, b.Title, b.Author, b.GenreName(), b.AvailabilityLabel())
	}
	w.Flush()
}

func exitOnError(err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, catalog.ErrNotAvailable),
		errors.Is(err, catalog.ErrNotBorrowed),
		errors.Is(err, catalog.ErrMissingField),
		errors.Is(err, model.ErrUnknownGenre):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
