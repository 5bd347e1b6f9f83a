//go:build linux

package utils

import (
	perf "github.com/hodgesds/perf-utils"
)

// CountInstructions runs f and reports the CPU instructions retired on the
// calling OS thread. Work done on other goroutines' threads is not counted.
func CountInstructions(f func() error) (instructions uint64, err error) {
	var pv *perf.ProfileValue
	if pv, err = perf.CPUInstructions(f); err != nil {
		return
	}
	return pv.Value, nil
}
