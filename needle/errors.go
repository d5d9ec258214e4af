package needle

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is the base class for every parameter-validation
// failure in this module. Concrete sentinels below wrap it, so callers
// may match either the precise condition or the whole family:
//
//	errors.Is(err, needle.ErrNeedleTooLong)
//	errors.Is(err, needle.ErrInvalidParameter)
var ErrInvalidParameter = errors.New("buffon: invalid parameter")

var (
	// ErrNeedleTooLong indicates Length > Spacing, which breaks the
	// short-needle probability model (a needle could cross two lines).
	ErrNeedleTooLong = fmt.Errorf("%w: needle length exceeds line spacing", ErrInvalidParameter)

	// ErrNonPositiveGeometry indicates Spacing, Length or FieldExtent is
	// ≤ 0, NaN or infinite.
	ErrNonPositiveGeometry = fmt.Errorf("%w: spacing, length and field extent must be positive and finite", ErrInvalidParameter)

	// ErrNonPositiveCount indicates a requested needle count ≤ 0.
	ErrNonPositiveCount = fmt.Errorf("%w: needle count must be at least 1", ErrInvalidParameter)
)
