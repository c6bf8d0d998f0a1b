// Package: lvlath-decision/alpha
package alpha

import "errors"

// ErrEmptyGamma indicates an operation (e.g. Prune) was attempted on a
// nil or empty set of alpha vectors.
var ErrEmptyGamma = errors.New("alpha: gamma set is empty")
