package domain

import "errors"

var (
	// ErrEmptyField indicates a required text field was blank.
	ErrEmptyField = errors.New("required field is empty")

	// ErrUnknownYear indicates a milestone year label outside the allowed set.
	ErrUnknownYear = errors.New("unknown year label")

	// ErrDuplicateYear indicates two milestones share a year label, which
	// would stack two points on a single axis tick.
	ErrDuplicateYear = errors.New("duplicate year label")

	// ErrCoordinateRange indicates a latitude or longitude outside the
	// valid geographic range.
	ErrCoordinateRange = errors.New("coordinate out of range")
)
