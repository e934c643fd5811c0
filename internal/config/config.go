// Package config handles application configuration and setup
package config

import (
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/config"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings. Logs go to
// stderr so that they do not mix with the screen dump.
func CreateLogger(debug, quiet, trace bool) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Output = os.Stderr
	switch {
	case trace:
		cfg.Level = log.TraceLevel
	case debug:
		cfg.Level = log.DebugLevel
	case quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// Settings mirrors the options that can be set in a settings file.
type Settings struct {
	Run struct {
		Steps        int  `config:"steps"`
		TimerDivider int  `config:"timer_divider"`
		Trace        bool `config:"trace"`
	} `config:"run"`

	Display struct {
		On    string `config:"on"`
		Off   string `config:"off"`
		Color bool   `config:"color"`
	} `config:"display"`
}

// ApplySettingsFile reads the settings file and overrides the matching
// options with the values that it contains. Keys missing from the file keep
// the current option values.
func ApplySettingsFile(path string, opts *options.Program) error {
	document, err := config.Open(path, config.Options{})
	if err != nil {
		return fmt.Errorf("opening settings file: %w", err)
	}

	var settings Settings
	settings.Run.Steps = opts.Steps
	settings.Run.TimerDivider = opts.TimerDivider
	settings.Run.Trace = opts.Trace
	settings.Display.On = opts.On
	settings.Display.Off = opts.Off
	settings.Display.Color = opts.Color

	if err := document.Unmarshal(&settings); err != nil {
		return fmt.Errorf("parsing settings file %s: %w", path, err)
	}

	opts.Steps = settings.Run.Steps
	opts.TimerDivider = settings.Run.TimerDivider
	opts.Trace = settings.Run.Trace
	opts.On = settings.Display.On
	opts.Off = settings.Display.Off
	opts.Color = settings.Display.Color
	return nil
}
