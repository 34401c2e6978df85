package smcoctree

import "errors"

// ErrNilProvider is returned by New when given a nil triangle-soup source.
var ErrNilProvider = errors.New("smcoctree: mesh provider must not be nil")

// ErrNilField is returned by NewImplicit when given a nil scalar field.
var ErrNilField = errors.New("smcoctree: scalar field function must not be nil")

// ErrDegenerateBBox is returned by NewImplicit when bboxMax is not strictly
// greater than bboxMin on every axis.
var ErrDegenerateBBox = errors.New("smcoctree: bbox max must be strictly greater than min on every axis")
