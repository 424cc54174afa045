// Package utils provides helper functions shared across the CLI.
package utils

import (
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"
)

// Version is the version of the CLI and will be injected during build by ldflags.
var Version string

var ConfigGuide = `
# Guide to the jsonlens config fields:
# path: input jsonl file, an empty value reads from stdin
# table: render the report as a tab separated table
# pretty: prettify the json report
# verbose: include derived fields such as the falsy ratio
# lenient: skip lines that are not valid json instead of aborting the run
`

// LogError logs the error with the given message and fields.
func LogError(logger *zap.Logger, err error, msg string, fields ...zap.Field) {
	if logger == nil {
		fmt.Println("failed to log the error. logger is nil")
		return
	}
	fields = append(fields, zap.Error(err))
	logger.Error(msg, fields...)
}

// HandlePanic recovers from a panic and logs the stack trace.
func HandlePanic(logger *zap.Logger) {
	if r := recover(); r != nil {
		stackTrace := debug.Stack()
		LogError(logger, fmt.Errorf("%v", r), "recovered from panic", zap.String("stack trace", string(stackTrace)))
	}
}
