package segment

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// IsValidation returns true iff err reports a malformed segment or a broken
// set invariant.
func IsValidation(err error) bool {
	return err != nil && errors.Is(errors.Invalid, err)
}

func validationErrorf(format string, args ...interface{}) error {
	return errors.E(errors.Invalid, fmt.Sprintf(format, args...))
}
