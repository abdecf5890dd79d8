package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agiangrant/pinfield/config"
)

// Init implements the 'pinfield init' command
func Init(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	force := fs.Bool("force", false, "Overwrite an existing file")
	slots := fs.Int("slots", 0, "Slot count to write")
	fs.Parse(args)

	path := config.DefaultFileName
	if fs.NArg() > 0 {
		path = fs.Arg(0)
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			path = filepath.Join(path, config.DefaultFileName)
		}
	}
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".toml" {
		return fmt.Errorf("init writes TOML, got %s", path)
	}

	if _, err := os.Stat(path); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	f := config.Default()
	if *slots != 0 {
		f.Slots = *slots
	}
	if _, err := f.Resolve(); err != nil {
		return err
	}

	if err := config.Save(path, f); err != nil {
		return err
	}
	fmt.Printf("  ✓ Created %s\n", path)
	fmt.Println("")
	fmt.Println("Next steps:")
	fmt.Println("  pinfield dump -focus   # inspect the draw commands")
	fmt.Println("  pinfield window        # try it in a window")
	fmt.Println("  pinfield tui           # or in the terminal")
	return nil
}
