// Package cli handles command line interface logic
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/cli"
)

const programName = "retrochip8"

// ErrHelpRequested is returned when the usage was requested and printed.
var ErrHelpRequested = cli.ErrHelpRequested

// ParseFlags parses the command line arguments, without the program name,
// and returns the program options. Values from a settings file given with
// -c override the flag values.
func ParseFlags(args []string) (options.Program, error) {
	opts := options.New()
	var positional options.Positional

	flags := cli.NewFlagSet(programName)
	flags.AddSection("Parameters", &opts.Parameters)
	flags.AddSection("Flags", &opts.Flags)
	flags.AddSection("Display", &opts.DisplayFlags)
	flags.AddPositional(&positional)

	remaining, err := flags.Parse(args)
	if err != nil {
		if errors.Is(err, cli.ErrHelpRequested) {
			return opts, ErrHelpRequested
		}
		return opts, fmt.Errorf("parsing flags: %w", err)
	}

	if err := validateArgs(flags, remaining); err != nil {
		return opts, err
	}

	if positional.File != "" {
		if opts.Input != "" && opts.Input != positional.File {
			return opts, &UsageError{
				flags: flags,
				msg:   "input file given as flag and as argument, please pass only one",
			}
		}
		opts.Input = positional.File
	}
	if opts.Input == "" {
		return opts, &UsageError{flags: flags, msg: "no program image to run given"}
	}

	if opts.Config != "" {
		if err := config.ApplySettingsFile(opts.Config, &opts); err != nil {
			return opts, fmt.Errorf("applying settings: %w", err)
		}
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *cli.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage of all flags.
func (e *UsageError) ShowUsage() {
	e.flags.ShowUsage()
}

// validateArgs checks that no arguments follow the program image.
func validateArgs(flags *cli.FlagSet, args []string) error {
	if len(args) == 0 {
		return nil
	}

	arg := args[0]
	if strings.HasPrefix(arg, "-") {
		return &UsageError{
			flags: flags,
			msg:   fmt.Sprintf("Potential argument %s found after program image, please pass the program image as last argument", arg),
		}
	}
	return &UsageError{
		flags: flags,
		msg:   fmt.Sprintf("unexpected argument %s, only one program image can be run", arg),
	}
}

// normalizeOptions validates option values.
func normalizeOptions(opts *options.Program) error {
	if opts.Steps < 0 {
		return fmt.Errorf("invalid number of steps %d: must not be negative", opts.Steps)
	}
	if opts.TimerDivider < 0 {
		return fmt.Errorf("invalid timer divider %d: must not be negative", opts.TimerDivider)
	}
	if opts.On == "" || opts.Off == "" {
		return errors.New("pixel glyphs must not be empty")
	}
	return nil
}
