package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a module name, location, or flag failed validation.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a template, module, or file was not found.
	ErrNotFound = errors.New("not found")

	// ErrExists indicates a destination file or directory already exists.
	ErrExists = errors.New("already exists")

	// ErrFormat indicates an aggregator file lacks a recognizable
	// import/export structure.
	ErrFormat = errors.New("format error")
)
