package dataset

import "errors"

var (
	// ErrBadHeader indicates the CSV header does not match the fixed layout.
	ErrBadHeader = errors.New("dataset: unexpected csv header")

	// ErrBadRecord indicates a CSV row with the wrong width or an
	// unparseable field.
	ErrBadRecord = errors.New("dataset: malformed csv record")

	// ErrIndexOutOfRange indicates a 1-based training index outside [1, M].
	ErrIndexOutOfRange = errors.New("dataset: train index out of range")

	// ErrDuplicateIndex indicates a repeated training index.
	ErrDuplicateIndex = errors.New("dataset: duplicate train index")
)
