package functional

import "github.com/pkg/errors"

// ErrNotSupported reports that a view-operation kind cannot be inverted
// yet. Inverses for these kinds fail unconditionally: the caller must not
// route such operations through functionalization. Check with errors.Is.
var ErrNotSupported = errors.New("view operation not supported by functionalization inversion")

// notSupported annotates ErrNotSupported with the operation that was
// attempted.
func notSupported(op string) error {
	return errors.Wrapf(ErrNotSupported, "attempted to invert %s", op)
}
