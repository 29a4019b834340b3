// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build linux

package dataset

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"

	"github.com/hashforge/rxbase/errors"
)

// pinThread binds the calling OS thread to a single logical core so a
// chunk's generation stays on one cache hierarchy. The caller must
// hold runtime.LockOSThread. Failure is a performance advisory, never
// fatal.
func pinThread(worker int) error {
	cores := runtime.NumCPU()
	if cores < 1 {
		cores = 1
	}
	var set unix.CPUSet
	set.Zero()
	set.Set(worker % cores)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return errors.E(errors.NotSupported,
			fmt.Sprintf("pinning worker %d to cpu %d", worker, worker%cores), err)
	}
	return nil
}
