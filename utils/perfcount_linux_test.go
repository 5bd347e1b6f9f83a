//go:build linux

package utils

import (
	"errors"
	"runtime"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountInstructions(t *testing.T) {
	var sum float64
	n, err := CountInstructions(func() error {
		for i := 0; i < 100000; i++ {
			sum += float64(i)
		}
		return nil
	})
	if err != nil {
		// perf_event_open is commonly blocked in containers
		t.Skipf("performance counters unavailable: %v", err)
	}
	assert.True(t, n > 0)
	assert.Equal(t, 4999950000., sum)
	{ // Work handed to a single bucket PartitionMap is counted
		sampleLoop := func(N int) func() error {
			return func() error {
				return NewPartitionMap(1, N).Run(func(_, kMin, kMax int) error {
					for k := kMin; k < kMax; k++ {
						sum += float64(k)
					}
					return nil
				})
			}
		}
		small, err := CountInstructions(sampleLoop(10))
		assert.NoError(t, err)
		large, err := CountInstructions(sampleLoop(1000000))
		assert.NoError(t, err)
		assert.True(t, large > small+1000000)
	}

	_, err = CountInstructions(func() error { return errors.New("failed") })
	assert.Error(t, err)
}

// The counters follow one OS thread, a single bucket must stay on it
func TestRunSingleBucketThread(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	var (
		tid   = syscall.Gettid()
		inner int
	)
	err := NewPartitionMap(1, 100).Run(func(_, _, _ int) error {
		inner = syscall.Gettid()
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, tid, inner)
}
