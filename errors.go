package treego

import "errors"

// ErrInvalidDegree is returned by New when the requested degree is below the
// minimum of 2.
var ErrInvalidDegree = errors.New("treego: degree must be >= 2")

// ErrInvalidRange is returned by GetRange when startKey is greater than
// endKey.
var ErrInvalidRange = errors.New("treego: start key must not exceed end key")
