package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/agiangrant/pinfield"
	"github.com/agiangrant/pinfield/config"
)

// fieldFlags are the options shared by every command that builds a field.
type fieldFlags struct {
	config  *string
	classes *string
	slots   *int
	digits  *bool
	dark    *bool
}

func addFieldFlags(fs *flag.FlagSet) fieldFlags {
	return fieldFlags{
		config:  fs.String("config", "", "Config file (.toml, .yaml, .yml); defaults to ./pinfield.toml when present"),
		classes: fs.String("classes", "", "Style classes, e.g. \"underline unboxed focus:border-blue-500\""),
		slots:   fs.Int("slots", 0, "Override the slot count"),
		digits:  fs.Bool("digits", false, "Accept digits only"),
		dark:    fs.Bool("dark", false, "Use dark: class variants"),
	}
}

// build loads the configuration and returns a detached field.
func (ff fieldFlags) build() (*pinfield.Field, error) {
	cfg := pinfield.DefaultConfig(1)
	file := &config.File{}

	path := *ff.config
	if path == "" {
		if _, err := os.Stat(config.DefaultFileName); err == nil {
			path = config.DefaultFileName
		}
	}
	if path != "" {
		var err error
		cfg, file, err = config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}

	if *ff.slots != 0 {
		cfg.SlotCount = *ff.slots
	}

	if err := file.ApplyTheme(); err != nil {
		return nil, err
	}

	field, err := pinfield.NewField(cfg)
	if err != nil {
		return nil, err
	}

	classes := file.Classes
	if *ff.classes != "" {
		classes = *ff.classes
	}
	if classes != "" {
		if err := field.SetClasses(classes); err != nil {
			return nil, fmt.Errorf("classes %q: %w", classes, err)
		}
	}
	field.SetDarkMode(*ff.dark)

	if *ff.digits {
		field.SetFilter(pinfield.Digits)
	} else if fn := file.CharFilter(); fn != nil {
		field.SetFilter(fn)
	}
	return field, nil
}
