package store

import "errors"

// ErrRead reports that the data file exists but could not be read.
var ErrRead = errors.New("read task file")

// ErrWrite reports that the data file could not be written.
var ErrWrite = errors.New("write task file")

// ErrInvalidRecord reports a stored record that does not match the task schema.
var ErrInvalidRecord = errors.New("invalid task record")
