// Package process runs a child process, forwarding its output line by line as it is produced.
package process

import (
	"bufio"
	"context"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/oneconcern/prebuilt/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrStart indicates that the process could not be launched (e.g. executable not found)
	ErrStart = errors.New("cannot start process")

	// ErrWait indicates that the process was launched but its completion could not be collected
	ErrWait = errors.New("cannot wait for process")
)

// Stream identifies the child output a line was read from
type Stream string

const (
	// Stdout of the child process
	Stdout Stream = "stdout"
	// Stderr of the child process
	Stderr Stream = "stderr"
)

// LineHandler receives each line of child output, without its line terminator.
//
// Lines from stdout and stderr are delivered from different goroutines.
type LineHandler func(stream Stream, line string)

// Command describes the process to run
type Command struct {
	Path string
	Args []string
	// Env is the complete child environment. When nil, the child inherits the environment of the current process.
	Env []string
	Dir string
}

// Result of a completed process
type Result struct {
	ExitCode int
	Elapsed  time.Duration
}

// Success tells if the process exited with code 0
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Run starts the command and blocks until it exits.
//
// Stdout and stderr are drained concurrently, so a chatty stream never stalls the child.
// A nonzero exit code is not an error: errors are reserved for failures to launch (ErrStart)
// or to collect the child (ErrWait).
func Run(ctx context.Context, c Command, onLine LineHandler) (Result, error) {
	if onLine == nil {
		onLine = func(Stream, string) {}
	}

	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Env = c.Env
	cmd.Dir = c.Dir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Result{ExitCode: -1}, ErrStart.Wrap(err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return Result{ExitCode: -1}, ErrStart.Wrap(err)
	}

	start := time.Now()
	if err = cmd.Start(); err != nil {
		return Result{ExitCode: -1, Elapsed: time.Since(start)}, ErrStart.Wrap(err)
	}

	var group errgroup.Group
	group.Go(func() error { return drain(stdout, Stdout, onLine) })
	group.Go(func() error { return drain(stderr, Stderr, onLine) })
	drainErr := group.Wait()

	// pipes must be fully read before Wait closes them
	waitErr := cmd.Wait()
	res := Result{ExitCode: -1, Elapsed: time.Since(start)}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return res, ErrWait.Wrap(waitErr)
		}
	}
	if drainErr != nil {
		return res, ErrWait.Wrap(drainErr)
	}
	return res, nil
}

func drain(r io.Reader, stream Stream, onLine LineHandler) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			onLine(stream, strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// WriterHandler writes every line to w, one line at a time
func WriterHandler(w io.Writer) LineHandler {
	var mx sync.Mutex
	return func(_ Stream, line string) {
		mx.Lock()
		defer mx.Unlock()
		_, _ = io.WriteString(w, line+"\n")
	}
}

// LoggerHandler logs every line at debug level
func LoggerHandler(logger *zap.Logger) LineHandler {
	return func(stream Stream, line string) {
		logger.Debug(line, zap.String("stream", string(stream)))
	}
}

// Tee forwards each line to all handlers, in order
func Tee(handlers ...LineHandler) LineHandler {
	return func(stream Stream, line string) {
		for _, h := range handlers {
			if h != nil {
				h(stream, line)
			}
		}
	}
}
