// Copyright 2025 The forgeexcel Authors.
//
// SPDX-License-Identifier: Apache-2.0

package forgeexcel

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrFileNotFound is returned when a read target is missing, not a
	// regular file, or unreadable.
	ErrFileNotFound = errors.New("file not found")
	// ErrCodec is returned when a container cannot be opened or parsed.
	ErrCodec = errors.New("codec error")
	// ErrWrite is returned when a target cannot be created or persisted.
	ErrWrite = errors.New("write error")
	// ErrInvalidArgument is returned for bad arguments such as a
	// non-positive chunk size or malformed style options.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupported is returned when a capability (multiple sheets) is
	// not available in the chosen container format.
	ErrUnsupported = errors.New("unsupported operation")

	ErrTooManyRows = errors.New("too many rows")
)

// isTaxonomy reports whether err already carries one of the package sentinels.
func isTaxonomy(err error) bool {
	return errors.Is(err, ErrFileNotFound) || errors.Is(err, ErrCodec) ||
		errors.Is(err, ErrWrite) || errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrUnsupported)
}

func opError(op, path string, kind, err error) error {
	if err == nil {
		return fmt.Errorf("%s %q: %w", op, path, kind)
	}
	return fmt.Errorf("%s %q: %w: %w", op, path, kind, err)
}

// readError classifies an error coming from the read side of a codec.
func readError(op, path string, err error) error {
	if isTaxonomy(err) {
		return fmt.Errorf("%s %q: %w", op, path, err)
	}
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return opError(op, path, ErrFileNotFound, err)
	}
	return opError(op, path, ErrCodec, err)
}

// writeError classifies an error coming from the write side of a codec.
func writeError(op, path string, err error) error {
	if errors.Is(err, ErrUnsupported) || errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrWrite) {
		return fmt.Errorf("%s %q: %w", op, path, err)
	}
	return opError(op, path, ErrWrite, err)
}
