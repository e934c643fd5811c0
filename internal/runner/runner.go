// Package runner drives a complete interpreter run: loading a program image,
// executing it for a fixed number of instructions and dumping the screen.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/screen"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete run workflow for the input file.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	image, err := loader.New().Load(opts.Input)
	if err != nil {
		return err
	}
	logger.Debug("Program image loaded",
		log.String("file", opts.Input),
		log.Int("size", len(image)),
	)

	var output bytes.Buffer
	if opts.Disassemble {
		if err := Disassemble(image, &output); err != nil {
			return fmt.Errorf("disassembling: %w", err)
		}
	} else if err := Execute(ctx, logger, opts, image, &output); err != nil {
		return err
	}

	return writeOutput(opts, output.Bytes())
}

// writeOutput writes the result to the output file, or to stdout if no
// output file is set. The file is only created once the run succeeded.
func writeOutput(opts options.Program, data []byte) (err error) {
	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closeErr := writer.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", closeErr)
		}
	}()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// Execute runs the program image for the configured number of steps and
// renders the final screen to w. The run is aborted on the first execution
// fault or when the context is cancelled.
func Execute(ctx context.Context, logger *log.Logger, opts options.Program, image []byte, w io.Writer) error {
	machine := vm.New()
	if err := machine.Load(image); err != nil {
		return err
	}
	machine.Reset()

	for step := range opts.Steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("running program: %w", err)
		}

		if opts.Trace {
			traceInstruction(logger, machine, step)
		}

		if err := machine.Step(); err != nil {
			logFault(logger, machine, step, err)
			return fmt.Errorf("executing step %d: %w", step, err)
		}

		if opts.TimerDivider > 0 && (step+1)%opts.TimerDivider == 0 {
			machine.TickTimers()
		}
	}

	display := machine.Display()
	logger.Debug("Run finished",
		log.Int("steps", opts.Steps),
		log.Hex("pc", machine.PC()),
		log.Int("lit_pixels", display.Lit()),
	)

	renderer := screen.New(opts.On, opts.Off, opts.Color)
	if err := renderer.Render(w, display); err != nil {
		return fmt.Errorf("rendering screen: %w", err)
	}
	return nil
}

func traceInstruction(logger *log.Logger, machine *vm.Machine, step int) {
	ins, err := machine.Current()
	if err != nil {
		return // reported by the following step
	}
	logger.Trace("Executing instruction",
		log.Int("step", step),
		log.Hex("pc", machine.PC()),
		log.Hex("opcode", ins.Opcode),
		log.Stringer("instruction", ins),
	)
}

func logFault(logger *log.Logger, machine *vm.Machine, step int, err error) {
	var fault *vm.Fault
	if !errors.As(err, &fault) {
		return
	}

	registers := machine.Registers()
	logger.Debug("Machine state at fault",
		log.Int("step", step),
		log.Hex("pc", fault.PC),
		log.Hex("opcode", fault.Opcode),
		log.Hex("i", machine.Index()),
		log.Int("sp", machine.SP()),
		log.String("v", fmt.Sprintf("% X", registers[:])),
	)
}

func createWriter(opts options.Program) (io.WriteCloser, error) {
	if opts.Output == "" {
		return &nopCloser{os.Stdout}, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	if len(commit) > 7 {
		commit = commit[:7]
	}
	logger.Info("retrochip8", log.String("version", buildinfo.Version(version, commit, date)))
}

// nopCloser wraps an io.Writer to add a no-op Close method
type nopCloser struct {
	io.Writer
}

func (nc *nopCloser) Close() error {
	return nil
}
