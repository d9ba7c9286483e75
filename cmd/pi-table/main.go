// ABOUTME: CLI entry point for pi-table
// ABOUTME: Parses flags, loads settings/theme/schema/data, and starts the viewer

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	// termfix must be imported before any package that imports bubbletea.
	// It sets lipgloss.SetHasDarkBackground(true) in its init(), preventing
	// BubbleTea's tea_init.go from sending OSC 10/11 terminal queries whose
	// async responses leak garbage into the table.
	_ "github.com/mauromedda/pi-table-go/internal/termfix"

	"github.com/mauromedda/pi-table-go/internal/config"
	"github.com/mauromedda/pi-table-go/internal/data"
	pilog "github.com/mauromedda/pi-table-go/internal/log"
	"github.com/mauromedda/pi-table-go/internal/schema"
	"github.com/mauromedda/pi-table-go/internal/theme"
	"github.com/mauromedda/pi-table-go/internal/ui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("pi-table %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run performs the full initialization sequence and starts the TUI.
func run(args cliArgs) error {
	if args.verbose {
		// The TUI owns the terminal; debug output goes to the log file.
		if err := config.EnsureDir(config.GlobalDir()); err == nil {
			if f, err := os.OpenFile(config.LogFile(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
				pilog.SetOutput(f)
				defer f.Close()
			}
		}
		pilog.SetLevel(pilog.LevelDebug)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("pi-table requires a terminal")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	settings, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	themeName := settings.Theme
	if args.theme != "" {
		themeName = args.theme
	}
	th, err := theme.Resolve(themeName, config.ThemesDir())
	if err != nil {
		return fmt.Errorf("resolving theme: %w", err)
	}

	src, err := loadSource(args)
	if err != nil {
		return err
	}
	pilog.Info("loaded %s: %d rows, %d columns", src.Name, src.Len(), len(src.Keys))

	sch, err := loadSchema(args, *settings, src)
	if err != nil {
		return err
	}

	return ui.Run(ui.AppDeps{
		Source:   src,
		Schema:   sch,
		Theme:    th,
		Settings: *settings,
	})
}

// loadSource picks the row source: a file argument dispatched on extension,
// or the synthetic generator in demo mode.
func loadSource(args cliArgs) (*data.Source, error) {
	files := args.remaining()
	if len(files) == 0 {
		n := args.demo
		if n <= 0 {
			return nil, fmt.Errorf("usage: pi-table [flags] <file.jsonl|file.html> (or -demo N)")
		}
		return data.Generate(n), nil
	}

	path := files[0]
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl", ".ndjson", ".json":
		return data.LoadJSONL(path)
	case ".html", ".htm":
		return data.LoadHTMLTable(path)
	default:
		return nil, fmt.Errorf("unsupported file type %q (want .jsonl or .html)", filepath.Ext(path))
	}
}

// loadSchema resolves the column schema: CLI flag, settings, or derived from
// the source's own keys.
func loadSchema(args cliArgs, settings config.Settings, src *data.Source) (*schema.Schema, error) {
	path := settings.Schema
	if args.schema != "" {
		path = args.schema
	}
	if path == "" {
		return schema.Derive(src.Keys), nil
	}
	sch, err := schema.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}
	return sch, nil
}
