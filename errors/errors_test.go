// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package errors_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/hashforge/rxbase/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	err := errors.E(errors.OOM, "mmap of 2GiB region refused")
	assert.True(t, errors.Is(errors.OOM, err))
	assert.False(t, errors.Is(errors.NotSupported, err))

	wrapped := errors.E("allocating dataset", err)
	assert.True(t, errors.Is(errors.OOM, wrapped))
	assert.Contains(t, wrapped.Error(), "allocating dataset")
	assert.Contains(t, wrapped.Error(), "mmap of 2GiB region refused")
}

func TestChainedMessage(t *testing.T) {
	inner := errors.New("sched_setaffinity: EPERM")
	err := errors.E(errors.NotSupported, "pinning worker 3", inner)
	require.True(t, errors.Is(errors.NotSupported, err))
	assert.Equal(t, "pinning worker 3"+errors.Separator+"sched_setaffinity: EPERM", err.Error())
}

func TestOnce(t *testing.T) {
	var once errors.Once
	require.NoError(t, once.Err())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			once.Set(fmt.Errorf("worker %d failed", i))
		}(i)
	}
	wg.Wait()
	first := once.Err()
	require.Error(t, first)
	// Later calls must not displace the captured error.
	once.Set(errors.New("straggler"))
	assert.Equal(t, first, once.Err())
}
