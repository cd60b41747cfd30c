package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/spoolid/internal/catalog"
	"github.com/handiism/spoolid/internal/config"
	"github.com/handiism/spoolid/internal/tui"
)

func main() {
	configFlag := flag.String("config", "", "Path to config file")
	flag.Parse()

	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	cat := catalog.Default()
	if settings.GeneratedPath != "" {
		cat, err = catalog.Load(settings.GeneratedPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
			os.Exit(1)
		}
	}

	if err := tui.Run(cat, settings, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
