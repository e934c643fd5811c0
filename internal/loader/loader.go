// Package loader handles program image file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/vm"
)

// Loader handles loading program images from disk.
type Loader struct{}

// New creates a new program image loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the program image file at the given path. Failures are
// returned as *vm.LoadError.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &vm.LoadError{Path: path, Err: fmt.Errorf("opening file: %w", err)}
	}
	defer func() { _ = file.Close() }()

	image, err := l.LoadFromReader(file)
	if err != nil {
		var loadErr *vm.LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
			return nil, loadErr
		}
		return nil, &vm.LoadError{Path: path, Err: err}
	}
	return image, nil
}

// LoadFromReader reads a raw program image. At most one byte more than the
// program memory can hold is read, images exceeding it are rejected.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	image, err := io.ReadAll(io.LimitReader(reader, vm.MaxImageSize+1))
	if err != nil {
		return nil, &vm.LoadError{Err: fmt.Errorf("reading image: %w", err)}
	}
	if len(image) > vm.MaxImageSize {
		return nil, &vm.LoadError{
			Err: fmt.Errorf("%w: more than %d bytes", vm.ErrImageTooLarge, vm.MaxImageSize),
		}
	}
	return image, nil
}
