// Package errs is a thin seam over cockroachdb/errors so the rest of the
// codebase never imports it directly.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr as an equivalence class: errors.Is(result, markErr)
// holds while the original cause is preserved for %+v rendering.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
