package skipmap

import "errors"

// Errors
var (
	// ErrInvalidConfiguration is returned by the constructors when the level
	// ceiling, the probability or the comparator can't produce a valid list.
	ErrInvalidConfiguration = errors.New("invalid skip list configuration")
	// ErrKeyNotFound is returned by Select when the key is absent.
	ErrKeyNotFound = errors.New("key not found")
	// ErrDuplicateKey is returned by Insert when the key already exists and
	// the map rejects duplicates.
	ErrDuplicateKey = errors.New("key already exists")
	// ErrIndexOutOfRange is returned by CopyTo when the destination can't hold
	// every entry starting at the given index.
	ErrIndexOutOfRange = errors.New("index out of range")
)
