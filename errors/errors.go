// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package errors implements an error type carrying an interpretable
// error kind, so that callers can distinguish the few failure classes
// this module produces (allocation failure, unsupported platform
// facility, invalid arguments) without string matching. Errors can be
// chained, attributing one error to another.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Separator defines the separation string inserted between chained
// errors in error messages.
var Separator = ":\n\t"

// Kind defines the type of error. Kinds are semantically meaningful
// and may be interpreted by the receiver of an error.
type Kind int

const (
	// Other indicates an unknown error.
	Other Kind = iota
	// OOM indicates that a memory allocation was refused by the
	// allocator. This is the only kind that crosses the dataset
	// generation boundary.
	OOM
	// NotSupported indicates that a platform facility (thread
	// affinity, huge pages, a hardware feature query) is unavailable.
	// Conditions of this kind are advisory and are normally absorbed
	// and logged rather than returned.
	NotSupported
	// Invalid indicates that the caller supplied invalid parameters.
	Invalid

	maxKind
)

var kinds = map[Kind]string{
	Other:        "unknown error",
	OOM:          "out of memory",
	NotSupported: "operation not supported",
	Invalid:      "invalid argument",
}

// String returns a human-readable explanation of the error kind k.
func (k Kind) String() string {
	return kinds[k]
}

// Error is the error type used throughout this module. It carries a
// kind, a message, and optionally an underlying chained error.
type Error struct {
	// Kind is the error's type.
	Kind Kind
	// Message is an arbitrary message associated with the error.
	Message string
	// Err is this error's underlying error, if any: it is the error
	// to which this error is attributed.
	Err error
}

// E constructs a new *Error from the provided arguments. Arguments
// are interpreted by type: a Kind sets the error's kind, an error
// sets the chained error, and all other arguments are formatted in
// the manner of fmt.Sprint into the error's message. It is the
// only constructor of errors in this package.
func E(args ...interface{}) error {
	e := new(Error)
	var msg strings.Builder
	for _, arg := range args {
		switch arg := arg.(type) {
		case Kind:
			e.Kind = arg
		case error:
			e.Err = arg
		default:
			if msg.Len() > 0 {
				msg.WriteString(" ")
			}
			fmt.Fprint(&msg, arg)
		}
	}
	e.Message = msg.String()
	if e.Kind == Other && e.Err != nil {
		// Propagate the kind of the chained error so that Is works
		// across layers of wrapping.
		if inner, ok := e.Err.(*Error); ok {
			e.Kind = inner.Kind
		}
	}
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Message != "" {
		b.WriteString(e.Message)
	} else {
		b.WriteString(e.Kind.String())
	}
	if e.Err != nil {
		b.WriteString(Separator)
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the error's underlying error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is tells whether an error has the provided kind, unwrapping chained
// errors as needed.
func Is(kind Kind, err error) bool {
	for err != nil {
		e, ok := err.(*Error)
		if !ok {
			return false
		}
		if e.Kind != Other {
			return e.Kind == kind
		}
		err = e.Err
	}
	return false
}

// New is synonymous with the standard errors.New, re-exported so that
// callers need not import both packages.
func New(msg string) error {
	return errors.New(msg)
}
