// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package log_test

import (
	"testing"

	"github.com/hashforge/rxbase/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testOutputter struct {
	level    log.Level
	messages []string
}

func (o *testOutputter) Level() log.Level { return o.level }

func (o *testOutputter) Output(calldepth int, level log.Level, s string) error {
	o.messages = append(o.messages, s)
	return nil
}

func TestLevelFiltering(t *testing.T) {
	out := &testOutputter{level: log.Info}
	old := log.SetOutputter(out)
	defer log.SetOutputter(old)

	log.Printf("affinity advisory %d", 3)
	log.Debug.Printf("binding detail")
	log.Error.Print("allocator failure")

	require.Len(t, out.messages, 2, "debug output must be filtered at info level")
	assert.Equal(t, "affinity advisory 3", out.messages[0])
	assert.Equal(t, "allocator failure", out.messages[1])
}

func TestAt(t *testing.T) {
	out := &testOutputter{level: log.Error}
	old := log.SetOutputter(out)
	defer log.SetOutputter(old)

	assert.True(t, log.At(log.Error))
	assert.False(t, log.At(log.Info))
	assert.False(t, log.At(log.Debug))
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]log.Level{
		"off": log.Off, "error": log.Error, "info": log.Info, "debug": log.Debug,
	} {
		got, err := log.ParseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := log.ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "info", log.Info.String())
	assert.Equal(t, "debug", log.Debug.String())
	assert.Equal(t, "off", log.Off.String())
}
