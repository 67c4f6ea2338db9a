package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches markErr to err. If markErr itself belongs to a taxonomy
// category, err is marked with that category too.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	marked := cr.Mark(err, markErr)
	if c := Category(markErr); c != nil && c != markErr {
		marked = cr.Mark(marked, c)
	}
	return marked
}

// Is reports whether err carries target, including marks. The stdlib
// errors.Is does not see marks.
func Is(err, target error) bool {
	return cr.Is(err, target)
}

// Category returns the taxonomy sentinel err is marked with, or nil.
func Category(err error) error {
	for _, c := range []error{ErrValidation, ErrCapacity, ErrConflict, ErrNotFound, ErrForbidden, ErrUnauthorized} {
		if cr.Is(err, c) {
			return c
		}
	}
	return nil
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
