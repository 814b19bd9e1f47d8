package longtail

import (
	"context"
	"io"
	"os"

	units "github.com/docker/go-units"
	"github.com/oneconcern/prebuilt/pkg/config"
	"github.com/oneconcern/prebuilt/pkg/errors"
	"github.com/oneconcern/prebuilt/pkg/longtail/status"
	"github.com/oneconcern/prebuilt/pkg/metrics"
	"github.com/oneconcern/prebuilt/pkg/model"
	"github.com/oneconcern/prebuilt/pkg/process"
	"go.uber.org/zap"
)

// Option is a functor to pass optional parameters to the runner
type Option func(*Runner)

// Executable sets the path or name of the transfer tool
func Executable(path string) Option {
	return func(r *Runner) {
		if path != "" {
			r.executable = path
		}
	}
}

// Logger specifies a logger for the runner
func Logger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.l = logger
		}
	}
}

// Output sets where the lines produced by the tool are forwarded, verbatim. Defaults to os.Stdout.
func Output(w io.Writer) Option {
	return func(r *Runner) {
		if w != nil {
			r.out = w
		}
	}
}

// BaseEnv sets the environment the injected variables are merged into. Defaults to os.Environ.
func BaseEnv(env func() []string) Option {
	return func(r *Runner) {
		if env != nil {
			r.baseEnv = env
		}
	}
}

// Metrics records transfer durations
func Metrics(m *metrics.Metrics) Option {
	return func(r *Runner) {
		r.m = m
	}
}

// Runner launches the transfer tool
type Runner struct {
	executable string
	l          *zap.Logger
	out        io.Writer
	baseEnv    func() []string
	m          *metrics.Metrics
}

// NewRunner builds a transfer tool runner
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		executable: config.DefaultLongtail(),
		l:          zap.NewNop(),
		out:        os.Stdout,
		baseEnv:    os.Environ,
	}
	for _, apply := range opts {
		apply(r)
	}
	return r
}

// Run the transfer tool for one operation and wait for its completion.
//
// It returns true if and only if the tool exited with code 0. A nonzero exit code is reported
// as false with a nil error. Errors are configuration errors (status.ErrUnsupportedProtocol,
// status.ErrUnsupportedOperation, detected before any process is launched), launch failures
// (status.ErrLaunch) and failures to collect the child (status.ErrWait).
func (r *Runner) Run(ctx context.Context, app config.Application, protocol model.Protocol, op Operation,
	blocks model.BlockStorageURI, localPath string, index model.VersionIndexURI) (bool, error) {
	logger := r.l.With(zap.Stringer("operation", op), zap.Stringer("protocol", protocol))

	env, err := Environment(app, protocol, logger)
	if err != nil {
		return false, err
	}
	args, err := Arguments(op, blocks, localPath, index)
	if err != nil {
		return false, err
	}

	logger.Info("running command", zap.String("command", commandLine(r.executable, args)))

	res, err := process.Run(ctx, process.Command{
		Path: r.executable,
		Args: args,
		Env:  mergeEnv(r.baseEnv(), env),
	}, process.Tee(process.WriterHandler(r.out), process.LoggerHandler(logger)))
	if err != nil {
		if errors.Is(err, process.ErrStart) {
			return false, status.ErrLaunch.Wrap(err)
		}
		return false, status.ErrWait.Wrap(err)
	}

	success := res.Success()
	r.m.ObserveTransfer(op.String(), protocol.String(), success, res.Elapsed)
	logger.Info("elapsed time: "+units.HumanDuration(res.Elapsed),
		zap.Duration("elapsed", res.Elapsed),
		zap.Int("exit code", res.ExitCode),
	)
	if !success {
		logger.Warn("transfer tool failed", zap.Int("exit code", res.ExitCode))
	}
	return success, nil
}
