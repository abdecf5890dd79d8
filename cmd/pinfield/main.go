package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/pinfield/cmd/pinfield/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "init":
		err = commands.Init(args)
	case "dump":
		err = commands.Dump(os.Stdout, args)
	case "window":
		err = commands.Window(args)
	case "tui":
		err = commands.TUI(args)
	case "version", "-v", "--version":
		fmt.Printf("pinfield version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`pinfield - segmented code input

Usage: pinfield <command> [options]

Commands:
  init      Write a default pinfield.toml
  dump      Print the display list of one frame
  window    Open the field in a window
  tui       Run the field in the terminal
  version   Print version information
  help      Show this help message

Examples:
  pinfield init                              Create pinfield.toml in the current directory
  pinfield dump -text 123 -focus             List draw commands for a half-filled field
  pinfield dump -json -config field.yaml     Same, as JSON, from a YAML config
  pinfield dump -grid -text 42               Show the terminal rendering
  pinfield window -classes "underline unboxed"
  pinfield tui -slots 4

Configuration:
  Commands read pinfield.toml from the current directory when present.
  Use -config to point at another .toml, .yaml or .yml file.`)
}
