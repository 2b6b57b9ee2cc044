package transform

import "github.com/pkg/errors"

// Transform errors.
var (
	// ErrInvalidState reports an operation that the transform's current form
	// cannot serve, such as reading the local position of a custom matrix.
	ErrInvalidState = errors.New("transform: invalid state")

	// ErrMalformedData reports serialized data that does not describe a
	// complete transform of the declared form.
	ErrMalformedData = errors.New("transform: malformed data")
)

func invalidState(op string) error {
	return errors.Wrapf(ErrInvalidState, "%s requires the decomposed form", op)
}
