// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package inifile

import "errors"

// Sentinel errors reported by Parser operations. Returned errors wrap these
// values with operation context; match them with errors.Is.
var (
	// ErrFileLoad indicates a path that could not be opened for reading at
	// construction or load time, or for writing at save time.
	ErrFileLoad = errors.New("file cannot be opened")

	// ErrKeyNotFound indicates a lookup or removal of an absent section or key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrKeyAlreadyExist indicates an attempt to add a key or array under a
	// name that is already in use, in either scalar or array form.
	ErrKeyAlreadyExist = errors.New("key already exists")

	// ErrKeyIsArray indicates a scalar accessor invoked on an array key.
	ErrKeyIsArray = errors.New("key is an array")

	// ErrKeyNotArray indicates an array accessor invoked on a key that is not
	// registered as an array.
	ErrKeyNotArray = errors.New("key is not an array")

	// ErrCannotArray indicates AddKey invoked with an array-suffixed key name,
	// or AddArray invoked on a parser whose dialect has no arrays.
	ErrCannotArray = errors.New("key cannot be an array")

	// ErrIndexOutOfRange indicates an array element index outside [0, len).
	ErrIndexOutOfRange = errors.New("array index out of range")
)
