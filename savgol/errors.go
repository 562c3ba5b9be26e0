// SPDX-License-Identifier: MIT

package savgol

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of every configuration error returned by
// NewKernel and Filter. Match it with errors.Is when the exact cause does not
// matter.
var ErrInvalidArgument = errors.New("savgol: invalid argument")

// Specific configuration errors. Each one wraps ErrInvalidArgument.
var (
	// ErrInvalidSize reports an empty window or image.
	ErrInvalidSize = fmt.Errorf("%w: invalid size", ErrInvalidArgument)

	// ErrInvalidHorDegree reports a negative horizontal degree.
	ErrInvalidHorDegree = fmt.Errorf("%w: invalid horDegree", ErrInvalidArgument)

	// ErrInvalidVertDegree reports a negative vertical degree.
	ErrInvalidVertDegree = fmt.Errorf("%w: invalid vertDegree", ErrInvalidArgument)

	// ErrDegreeTooHigh reports more polynomial terms than window samples.
	ErrDegreeTooHigh = fmt.Errorf("%w: too high degree for this amount of data", ErrInvalidArgument)

	// ErrRankDeficient reports a degree that reaches the window extent on its
	// axis (horDegree ≥ width or vertDegree ≥ height). The sample grid has
	// only width distinct x values, so such a basis has dependent columns even
	// when the term count fits.
	ErrRankDeficient = fmt.Errorf("%w: degree not below window extent", ErrInvalidArgument)

	// ErrOriginOutOfRange reports an initial origin outside the window.
	ErrOriginOutOfRange = fmt.Errorf("%w: origin outside window", ErrInvalidArgument)
)
