package consterror

import (
	"errors"
	"fmt"
)

// F attaches a formatted detail message to the constant error,
// and returns an error value that still matches the constant with errors.Is.
// Use it when the failure needs to carry call-site information,
// like the offending index of a range violation.
func (err Error) F(format string, a ...interface{}) error {
	return err.Wrap(fmt.Errorf(format, a...))
}

// Wrap bundles another error value together with this Error,
// and returns an error value that contains both of them.
func (err Error) Wrap(oth error) error {
	if oth == nil {
		return err
	}
	return wrapped{Owner: err, Detail: oth}
}

type wrapped struct {
	Owner  Error
	Detail error // must be not nil
}

func (w wrapped) Error() string {
	return fmt.Sprintf("[%s] %s", w.Owner, w.Detail.Error())
}

func (w wrapped) As(target interface{}) bool {
	return errors.As(w.Owner, target) || errors.As(w.Detail, target)
}

func (w wrapped) Is(target error) bool {
	return errors.Is(w.Owner, target) || errors.Is(w.Detail, target)
}
