package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
)

var (
	// globals used to patch over calls to os.Exit() during test

	logFatalln = log.Fatalln
	logFatalf  = log.Fatalf
	osExit     = os.Exit

	// infoLogger wraps informative messages to os.Stdout without cluttering expected output in tests.
	// To be used instead on fmt.Printf(os.Stdout, ...)
	infoLogger = log.New(os.Stdout, "", 0)
	logStdOut  = fmt.Printf
)

func wrapFatalln(msg string, err error) {
	flushMetrics()
	if err == nil {
		logFatalln(color.RedString(msg))
	} else {
		logFatalf("%v", color.RedString("%v", fmt.Errorf(msg+": %w", err)))
	}
}

func wrapFatalWithCodef(code int, format string, args ...interface{}) {
	flushMetrics()
	_, _ = fmt.Fprintln(os.Stderr, color.RedString(format, args...))
	osExit(code)
}
