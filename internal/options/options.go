// Package options contains the program options.
package options

// Positional contains positional arguments.
type Positional struct {
	File string `arg:"positional" usage:"program image to run"`
}

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input program image file"`
	Output string `flag:"o" usage:"output file for the screen dump (default: stdout)"`
	Config string `flag:"c" usage:"settings file with [run] and [display] sections"`
}

// Flags contains behavior options.
type Flags struct {
	Steps        int  `flag:"n,steps" usage:"number of instructions to execute" default:"2000"`
	TimerDivider int  `flag:"timer" usage:"decrement the timers every given number of instructions (0: never)"`
	Disassemble  bool `flag:"disasm" usage:"print a disassembly listing instead of running the program"`
	Trace        bool `flag:"trace" usage:"log every executed instruction"`
	Debug        bool `flag:"debug" usage:"enable debug logging"`
	Quiet        bool `flag:"q" usage:"quiet mode"`
}

// DisplayFlags contains screen dump options.
type DisplayFlags struct {
	On    string `flag:"on" usage:"glyph for a set pixel" default:"X"`
	Off   string `flag:"off" usage:"glyph for an unset pixel" default:" "`
	Color bool   `flag:"color" usage:"colorize set pixels"`
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
	DisplayFlags
}

// Default values for options that have one.
const (
	DefaultSteps = 2000
	DefaultOn    = "X"
	DefaultOff   = " "
)

// New returns program options initialized with the default values.
func New() Program {
	return Program{
		Flags: Flags{
			Steps: DefaultSteps,
		},
		DisplayFlags: DisplayFlags{
			On:  DefaultOn,
			Off: DefaultOff,
		},
	}
}
