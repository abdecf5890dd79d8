package commands

import (
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/agiangrant/pinfield/ebitenhost"
	"github.com/agiangrant/pinfield/termhost"
)

// Window implements the 'pinfield window' command
func Window(args []string) error {
	fs := flag.NewFlagSet("window", flag.ExitOnError)
	ff := addFieldFlags(fs)
	title := fs.String("title", "pinfield", "Window title")
	margin := fs.Int("margin", 24, "Space around the field, in pixels")
	fs.Parse(args)

	field, err := ff.build()
	if err != nil {
		return err
	}
	field.OnComplete(func(text string) {
		log.Printf("[pinfield] complete: %s", text)
	})

	opts := ebitenhost.DefaultOptions()
	opts.Title = *title
	opts.Margin = *margin
	return ebitenhost.Run(field, opts)
}

// TUI implements the 'pinfield tui' command. The entered text is printed
// when the user submits with enter.
func TUI(args []string) error {
	fs := flag.NewFlagSet("tui", flag.ExitOnError)
	ff := addFieldFlags(fs)
	cellW := fs.Float64("cell-width", 5, "Field pixels per terminal column")
	cellH := fs.Float64("cell-height", 10, "Field pixels per terminal row")
	verbose := fs.Bool("verbose", false, "Keep log output while the terminal UI runs")
	fs.Parse(args)

	field, err := ff.build()
	if err != nil {
		return err
	}

	// Log lines would tear the terminal UI
	if !*verbose {
		prev := log.Writer()
		log.SetOutput(io.Discard)
		defer log.SetOutput(prev)
	}

	opts := termhost.DefaultOptions()
	opts.CellWidth = float32(*cellW)
	opts.CellHeight = float32(*cellH)

	text, submitted, err := termhost.Run(field, opts)
	if err != nil {
		return err
	}
	if submitted {
		fmt.Println(text)
	}
	return nil
}
