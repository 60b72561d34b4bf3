package bptree

import "errors"

var (
	// ErrDuplicateKey is returned by Insert when the key is already bound
	// to a value. The tree is left unchanged.
	ErrDuplicateKey = errors.New("bptree: key already exists")

	// ErrNotFound is returned by Search and Delete when the key is not
	// bound to any value. The tree is left unchanged.
	ErrNotFound = errors.New("bptree: key not found")

	// ErrInvalidConfiguration is returned by the constructors when order
	// is below the required minimum or a key-transform is not callable.
	ErrInvalidConfiguration = errors.New("bptree: invalid configuration")
)
