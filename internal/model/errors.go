package model

import "errors"

var (
	// ErrSetup marks a precondition failure detected before any file is touched:
	// unknown backend, missing build directory or marker file.
	ErrSetup = errors.New("setup error")
	// ErrUnreadableTrace is returned when the tracer output cannot be loaded.
	ErrUnreadableTrace = errors.New("unreadable trace")
	// ErrBuildFailed is returned when the backend build exits non-zero.
	ErrBuildFailed = errors.New("build failed")
	// ErrCleanFailed is returned when the backend clean exits non-zero.
	ErrCleanFailed = errors.New("clean failed")
	// ErrMissingOutput is returned when an output vanished between snapshots.
	ErrMissingOutput = errors.New("missing output")
)
