// ABOUTME: CLI flag parsing for pi-table
// ABOUTME: Returns a cliArgs struct consumed by main

package main

import "flag"

type cliArgs struct {
	theme   string
	schema  string
	demo    int
	verbose bool
	version bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.theme, "theme", "", "Theme name or path to a theme JSON file")
	flag.StringVar(&args.schema, "schema", "", "Path to a column schema YAML file")
	flag.IntVar(&args.demo, "demo", 0, "Browse N generated demo rows instead of a file")
	flag.BoolVar(&args.verbose, "verbose", false, "Write debug logs to the log file")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}

// remaining returns the non-flag command-line arguments.
func (a cliArgs) remaining() []string {
	return flag.Args()
}
