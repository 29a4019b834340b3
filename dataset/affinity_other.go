// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build !linux

package dataset

import (
	"runtime"

	"github.com/hashforge/rxbase/errors"
)

// pinThread is unsupported off Linux; generation proceeds unpinned.
func pinThread(worker int) error {
	return errors.E(errors.NotSupported, "thread affinity not available on "+runtime.GOOS)
}
