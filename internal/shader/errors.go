package shader

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrStageConsumed is returned when a compiled stage is linked a second time.
	ErrStageConsumed = errors.New("shader: compiled stage already linked")
	// ErrStageMismatch is returned when a stage is passed in the wrong link slot.
	ErrStageMismatch = errors.New("shader: stage kind does not match link slot")
)

// IOError reports a shader source that could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("could not read shader source %q: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// CompileError carries the driver diagnostic for a stage that failed to compile.
type CompileError struct {
	Stage Stage
	Path  string
	Log   string
}

func (e *CompileError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to compile %s shader %s: %s", e.Stage, e.Path, e.Log)
	}
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// LinkError carries the driver diagnostic for a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "failed to link program: " + e.Log
}
