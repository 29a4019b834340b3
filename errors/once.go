// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package errors

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

// Once captures at most one error. Errors are safely set across
// multiple goroutines; it is used to collect the first failure from a
// fan-out of dataset workers.
//
// A zero Once is ready to use.
type Once struct {
	mu  sync.Mutex
	err unsafe.Pointer // stores *error
}

// Err returns the first non-nil error passed to Set. Calling Err is
// cheap enough for busy loops.
func (e *Once) Err() error {
	p := atomic.LoadPointer(&e.err) // acquire load
	if p == nil {
		return nil
	}
	return *(*error)(p)
}

// Set sets this instance's error to err. Only the first error is
// kept; subsequent calls are ignored.
func (e *Once) Set(err error) {
	if err == nil {
		return
	}
	e.mu.Lock()
	if e.err == nil {
		atomic.StorePointer(&e.err, unsafe.Pointer(&err)) // release store
	}
	e.mu.Unlock()
}
