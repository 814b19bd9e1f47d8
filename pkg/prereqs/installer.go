// Package prereqs runs the prerequisites installer shipped in a freshly installed package.
package prereqs

import (
	"context"
	"io"
	"os"
	"path/filepath"

	units "github.com/docker/go-units"
	"github.com/oneconcern/prebuilt/pkg/errors"
	"github.com/oneconcern/prebuilt/pkg/process"
	"go.uber.org/zap"
)

// ErrLaunch indicates that the prerequisites installer could not be started
var ErrLaunch = errors.New("cannot launch prerequisites installer")

// Option is a functor to pass optional parameters to the installer
type Option func(*Installer)

// Logger specifies a logger for the installer
func Logger(logger *zap.Logger) Option {
	return func(i *Installer) {
		if logger != nil {
			i.l = logger
		}
	}
}

// Output sets where the installer output is forwarded. Defaults to os.Stdout.
func Output(w io.Writer) Option {
	return func(i *Installer) {
		if w != nil {
			i.out = w
		}
	}
}

// Installer runs a configured command in an install folder
type Installer struct {
	command []string
	l       *zap.Logger
	out     io.Writer
}

// New installer for command, given as the executable followed by its arguments.
// A relative executable is resolved against the install folder.
func New(command []string, opts ...Option) *Installer {
	i := &Installer{
		command: command,
		l:       zap.NewNop(),
		out:     os.Stdout,
	}
	for _, apply := range opts {
		apply(i)
	}
	return i
}

// Configured tells if there is an installer to run
func (i *Installer) Configured() bool {
	return len(i.command) > 0 && i.command[0] != ""
}

// Run the installer from folder and return its exit code. An unconfigured installer is skipped with exit code 0.
func (i *Installer) Run(ctx context.Context, folder string) (int, error) {
	if !i.Configured() {
		i.l.Info("no prerequisites installer configured, skipping")
		return 0, nil
	}

	folder, err := filepath.Abs(folder)
	if err != nil {
		return 1, ErrLaunch.Wrap(err)
	}
	executable := i.command[0]
	if !filepath.IsAbs(executable) {
		executable = filepath.Join(folder, executable)
	}
	i.l.Info("running prerequisites installer", zap.String("command", executable), zap.Strings("args", i.command[1:]))

	result, err := process.Run(ctx, process.Command{
		Path: executable,
		Args: i.command[1:],
		Dir:  folder,
	}, process.Tee(process.WriterHandler(i.out), process.LoggerHandler(i.l)))
	if err != nil {
		i.l.Error("prerequisites installer did not complete", zap.Error(err))
		return 1, ErrLaunch.Wrap(err)
	}

	i.l.Info("prerequisites installer elapsed time: "+units.HumanDuration(result.Elapsed),
		zap.Duration("elapsed", result.Elapsed), zap.Int("exit code", result.ExitCode))
	return result.ExitCode, nil
}
