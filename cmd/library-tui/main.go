package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/handiism/library-catalog/internal/config"
	"github.com/handiism/library-catalog/internal/tui"
)

func main() {
	var (
		configFlag = flag.String("config", "", "Path to config file")
		fileFlag   = flag.String("file", "", "Catalog file offered at the path prompt (overrides config)")
		logFlag    = flag.String("log", "", "Write diagnostic logs to this file")
	)

	flag.Parse()

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

	// The alternate screen owns stdout, so logs only go to a file.
	var out io.Writer = io.Discard
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: settings.SlogLevel()}))

	if err := tui.Run(settings, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
