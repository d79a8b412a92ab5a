package ddm

import "github.com/pkg/errors"

var (
	// ErrInvalidParameter indicates a model parameter outside its domain:
	// non-finite or non-positive boundary, NaN drift or bias.
	ErrInvalidParameter = errors.New("ddm: invalid model parameter")

	// ErrInvalidInput indicates a trial outcome other than 0 (incorrect) or 1 (correct).
	ErrInvalidInput = errors.New("ddm: trial outcome must be 0 or 1")
)
