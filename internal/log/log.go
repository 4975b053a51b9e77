// Package log is the CLI's small ambient logger: fmt-based output, with
// Error and Success colored through fatih/color and Debug gated by a
// package-level verbose flag; no logging framework.
package log

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Verbose controls whether Debug output is shown.
var Verbose = false

// Info prints a message to stdout, always shown.
func Info(format string, args ...interface{}) {
	fmt.Println(fmt.Sprintf(format, args...))
}

// Debug prints a message only when Verbose is enabled.
func Debug(format string, args ...interface{}) {
	if Verbose {
		fmt.Println("[debug] " + fmt.Sprintf(format, args...))
	}
}

// Error prints an error message to stderr in red.
func Error(format string, args ...interface{}) {
	color.New(color.FgRed).Fprintln(os.Stderr, "error: "+fmt.Sprintf(format, args...))
}

// Success prints a message to stdout in green.
func Success(format string, args ...interface{}) {
	color.New(color.FgGreen).Println(fmt.Sprintf(format, args...))
}
