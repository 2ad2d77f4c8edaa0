// Package photos stores uploaded photo binaries, either in a local directory
// or in an S3 bucket. Names are opaque to the backends.
package photos

import "errors"

var ErrNotFound = errors.New("photo not found")
