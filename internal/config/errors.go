package config

import "errors"

// ErrParse indicates a configuration file that was read successfully but does
// not contain a valid configuration document (malformed syntax, a missing
// required field, or a type mismatch). Unlike an unreadable file, which falls
// back to defaults, this aborts the run.
var ErrParse = errors.New("invalid configuration")
