// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"strings"

	"github.com/pkg/errors"
)

// Errors returned by this package. Use errors.Cause from github.com/pkg/errors
// to compare an error returned by a function of this package with one of these
// values.
//
var (
	ErrDuplicateModule = errors.New("duplicate module")
	ErrInvalidModule   = errors.New("invalid module")
	ErrNoSuchSink      = errors.New("no such sink")
	ErrCycleNotFound   = errors.New("cycle not found")
	ErrOverflow        = errors.New("press count overflow")
)

// Error records a failed operation on a module or set of modules.
//
type Error struct {
	Op  string   // operation that failed: "build", "cycle", ...
	IDs []string // modules involved
	Err error    // one of the Err* values
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if len(e.IDs) > 0 {
		b.WriteByte(' ')
		b.WriteString(strings.Join(e.IDs, ", "))
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

// Cause implements the causer interface of github.com/pkg/errors.
//
func (e *Error) Cause() error { return e.Err }

func newError(op string, err error, ids ...string) error {
	return errors.WithStack(&Error{Op: op, IDs: ids, Err: err})
}
