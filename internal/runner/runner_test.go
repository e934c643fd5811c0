package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// program encodes instruction words as a big-endian program image.
func program(words ...uint16) []byte {
	image := make([]byte, 0, len(words)*2)
	for _, w := range words {
		image = append(image, byte(w>>8), byte(w))
	}
	return image
}

func emptyScreen(off string) string {
	return strings.Repeat(strings.Repeat(off, vm.DisplayWidth)+"\n", vm.DisplayHeight)
}

func TestExecute(t *testing.T) {
	// CLS; LD V0, 5; ADD V0, 10; JP $206
	image := program(0x00E0, 0x6005, 0x700A, 0x1206)

	opts := options.New()
	opts.Steps = 4

	var buf bytes.Buffer
	err := Execute(context.Background(), log.NewTestLogger(t), opts, image, &buf)
	assert.NoError(t, err)
	assert.Equal(t, emptyScreen(" "), buf.String())
}

func TestExecute_DrawsSprite(t *testing.T) {
	// LD I, $20A; LD V1, 2; DRW V1, V1, 1; JP $208; sprite $F0
	image := program(0xA20A, 0x6102, 0xD111, 0x1206, 0x1208, 0xF000)

	opts := options.New()
	opts.Steps = 10
	opts.Trace = true
	opts.TimerDivider = 3
	opts.Off = "."

	var buf bytes.Buffer
	err := Execute(context.Background(), log.NewTestLogger(t), opts, image, &buf)
	assert.NoError(t, err)

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "..XXXX"+strings.Repeat(".", vm.DisplayWidth-6), lines[2])
	assert.Equal(t, strings.Repeat(".", vm.DisplayWidth), lines[1])
}

func TestExecute_Fault(t *testing.T) {
	image := program(0x6005, 0xE19E)

	opts := options.New()
	opts.Steps = 10

	var buf bytes.Buffer
	err := Execute(context.Background(), log.NewTestLogger(t), opts, image, &buf)
	assert.ErrorIs(t, err, vm.ErrUnknownOpcode)
	assert.Contains(t, err.Error(), "step 1")

	var fault *vm.Fault
	assert.True(t, errors.As(err, &fault))
	assert.Equal(t, uint16(0x202), fault.PC)
	assert.Equal(t, 0, buf.Len())
}

func TestExecute_ImageTooLarge(t *testing.T) {
	opts := options.New()

	var buf bytes.Buffer
	err := Execute(context.Background(), log.NewNop(), opts, make([]byte, vm.MaxImageSize+1), &buf)
	assert.ErrorIs(t, err, vm.ErrImageTooLarge)
}

func TestExecute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := options.New()

	var buf bytes.Buffer
	err := Execute(ctx, log.NewNop(), opts, program(0x1200), &buf)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecute_ZeroSteps(t *testing.T) {
	opts := options.New()
	opts.Steps = 0

	var buf bytes.Buffer
	err := Execute(context.Background(), log.NewNop(), opts, nil, &buf)
	assert.NoError(t, err)
	assert.Equal(t, emptyScreen(" "), buf.String())
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "loop.ch8")
	assert.NoError(t, os.WriteFile(input, program(0x00E0, 0x1202), 0600))

	t.Run("run to output file", func(t *testing.T) {
		opts := options.New()
		opts.Input = input
		opts.Output = filepath.Join(dir, "screen.txt")
		opts.Steps = 20
		opts.Off = "."

		assert.NoError(t, ProcessFile(context.Background(), log.NewTestLogger(t), opts))

		data, err := os.ReadFile(opts.Output)
		assert.NoError(t, err)
		assert.Equal(t, emptyScreen("."), string(data))
	})

	t.Run("disassemble to output file", func(t *testing.T) {
		opts := options.New()
		opts.Input = input
		opts.Output = filepath.Join(dir, "loop.asm")
		opts.Disassemble = true

		assert.NoError(t, ProcessFile(context.Background(), log.NewTestLogger(t), opts))

		data, err := os.ReadFile(opts.Output)
		assert.NoError(t, err)
		assert.Equal(t, "200: 00E0  cls\nlabel_202:\n202: 1202  jp $202\n", string(data))
	})

	t.Run("no output file on fault", func(t *testing.T) {
		faulting := filepath.Join(dir, "fault.ch8")
		assert.NoError(t, os.WriteFile(faulting, program(0x00E0, 0xE19E), 0600))

		opts := options.New()
		opts.Input = faulting
		opts.Output = filepath.Join(dir, "fault.txt")

		err := ProcessFile(context.Background(), log.NewTestLogger(t), opts)
		assert.ErrorIs(t, err, vm.ErrUnknownOpcode)

		_, err = os.Stat(opts.Output)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("no output file on cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		opts := options.New()
		opts.Input = input
		opts.Output = filepath.Join(dir, "cancelled.txt")

		err := ProcessFile(ctx, log.NewTestLogger(t), opts)
		assert.ErrorIs(t, err, context.Canceled)

		_, err = os.Stat(opts.Output)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("error on missing input", func(t *testing.T) {
		opts := options.New()
		opts.Input = filepath.Join(dir, "missing.ch8")

		err := ProcessFile(context.Background(), log.NewTestLogger(t), opts)
		var loadErr *vm.LoadError
		assert.True(t, errors.As(err, &loadErr))
	})

	t.Run("error on unwritable output", func(t *testing.T) {
		opts := options.New()
		opts.Input = input
		opts.Output = filepath.Join(dir, "missing", "screen.txt")

		err := ProcessFile(context.Background(), log.NewTestLogger(t), opts)
		assert.Error(t, err)
	})
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithConfig(log.Config{Output: &buf, TimeFormat: "-"})

	PrintBanner(logger, options.New(), "v1.0.0", "0123456789abcdef", "")
	assert.Contains(t, buf.String(), "v1.0.0 commit: 0123456")
	assert.NotContains(t, buf.String(), "89abcdef")

	buf.Reset()
	opts := options.New()
	opts.Quiet = true
	PrintBanner(logger, opts, "v1.0.0", "", "")
	assert.Equal(t, 0, buf.Len())
}
