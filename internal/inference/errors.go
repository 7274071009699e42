// Package inference evaluates the two pre-trained outcome classifiers on encoded feature vectors.
package inference

import "errors"

// ErrBackend wraps every failure raised while encoding or scoring a feature vector.
var ErrBackend = errors.New("inference backend failure")
