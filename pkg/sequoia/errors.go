package sequoia

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/gitrdm/sequoia/internal/arena"
)

// ErrOutOfMemory is returned when an arena allocation would exceed the
// configured byte budget.
var ErrOutOfMemory = arena.ErrOutOfMemory

// ErrReporterFailed wraps a reporter failure; it is the sentinel that
// terminates the recursion on the same path as ErrOutOfMemory.
var ErrReporterFailed = errors.New("sequoia: reporter failed")

// ErrInvalidConfig is returned by Config.Validate for structurally
// invalid options.
var ErrInvalidConfig = errors.New("sequoia: invalid config")

func errInvalidConfigf(format string, args ...interface{}) error {
	return errors.Wrap(ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func wrapReporterErr(err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(ErrReporterFailed, err.Error())
}
