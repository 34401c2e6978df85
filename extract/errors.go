package extract

import "errors"

// ErrNoSink is returned by Walk when given a nil meshio.MeshSink.
var ErrNoSink = errors.New("extract: mesh sink must not be nil")
