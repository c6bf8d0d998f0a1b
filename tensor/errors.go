// Package: lvlath-decision/tensor
//
// errors.go — sentinel errors for transition/observation tensors.
package tensor

import "errors"

// ErrBadIndex indicates a dense-array Set/Get was called with an index
// outside the tensor's declared shape.
var ErrBadIndex = errors.New("tensor: index out of range")

// ErrInvalidDimensions indicates a dense tensor was constructed with a
// non-positive dimension.
var ErrInvalidDimensions = errors.New("tensor: dimensions must be > 0")
