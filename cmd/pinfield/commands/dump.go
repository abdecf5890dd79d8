package commands

import (
	"flag"
	"fmt"
	"io"

	"github.com/agiangrant/pinfield/draw"
	"github.com/agiangrant/pinfield/termhost"
)

// Dump implements the 'pinfield dump' command: it renders one frame and
// prints the result.
func Dump(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	fs.SetOutput(w)
	ff := addFieldFlags(fs)
	text := fs.String("text", "", "Text to enter before rendering")
	focus := fs.Bool("focus", false, "Render the focused state")
	asJSON := fs.Bool("json", false, "Print commands as JSON")
	asGrid := fs.Bool("grid", false, "Print the terminal rendering instead of commands")
	if err := fs.Parse(args); err != nil {
		return err
	}

	field, err := ff.build()
	if err != nil {
		return err
	}
	field.OnTextChanged(*text)
	field.SetFocused(*focus)

	if *asGrid {
		g := termhost.NewGrid(0, 0)
		width, height := field.IntrinsicSize()
		g.Resize(width, height+field.Config().PaddingTop)
		field.Draw(g)
		_, err := fmt.Fprintln(w, g.String())
		return err
	}

	var rec draw.Recorder
	field.Draw(&rec)

	if *asJSON {
		out, err := rec.ToJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}

	width, height := field.IntrinsicSize()
	fmt.Fprintf(w, "size %gx%g, %d slots, text %q\n", width, height, field.Config().SlotCount, field.Text())
	for i, cmd := range rec.Commands {
		fmt.Fprintf(w, "%3d %s\n", i, describe(cmd))
	}
	return nil
}

func describe(cmd draw.Command) string {
	switch {
	case cmd.DrawRect != nil:
		r := cmd.DrawRect
		return fmt.Sprintf("rect  x=%g y=%g w=%g h=%g radius=%g color=%s",
			r.X, r.Y, r.Width, r.Height, r.Radius, draw.FormatHex(r.Color))
	case cmd.DrawLine != nil:
		l := cmd.DrawLine
		return fmt.Sprintf("line  (%g,%g)-(%g,%g) stroke=%g color=%s",
			l.X0, l.Y0, l.X1, l.Y1, l.StrokeWidth, draw.FormatHex(l.Color))
	case cmd.DrawText != nil:
		t := cmd.DrawText
		return fmt.Sprintf("text  %q x=%g baseline=%g size=%g align=%s color=%s",
			t.Text, t.X, t.Y, t.Size, t.Align, draw.FormatHex(t.Color))
	}
	return cmd.Kind()
}
