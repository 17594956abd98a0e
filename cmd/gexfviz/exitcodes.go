package main

import (
	"errors"
	"io/fs"

	"github.com/matsen/gexfviz/internal/graph"
	"github.com/matsen/gexfviz/internal/graphfile"
)

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, missing input, runtime failure)
	ExitConfigError = 2 // Configuration error (unreadable or invalid config, bad flag values)
	ExitDataError   = 3 // Data error (malformed or unsupported graph file)
)

// exitCode maps an error returned by a command to the process exit code.
func exitCode(err error) int {
	var cfgErr *configError
	var parseErr *graphfile.ParseError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &cfgErr):
		return ExitConfigError
	case errors.Is(err, fs.ErrNotExist):
		return ExitError
	case errors.As(err, &parseErr),
		errors.Is(err, graphfile.ErrUnsupportedFormat),
		errors.Is(err, graph.ErrDuplicateNode):
		return ExitDataError
	default:
		return ExitError
	}
}
