// Package affinity pins the goroutines on either side of a queue to fixed
// CPUs.
//
// Keeping the producer and the consumer on dedicated cores stops the
// scheduler from migrating them mid-spin and keeps each side's cursor cache
// line resident in one core's L1. Platform-specific implementations are in
// affinity_linux.go and affinity_stub.go.
package affinity

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrUnsupported is returned on platforms without thread affinity.
	ErrUnsupported = errors.New("affinity: not supported on this platform")

	// ErrInvalidCPU is returned for negative CPU numbers.
	ErrInvalidCPU = errors.New("affinity: invalid cpu")
)

// Pin locks the calling goroutine to its OS thread and binds that thread to
// cpu.
//
// The goroutine stays locked for the rest of its life; when it exits the
// runtime discards the pinned thread instead of returning it to the pool.
// On error the goroutine is unlocked again.
func Pin(cpu int) error {
	if cpu < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCPU, cpu)
	}

	runtime.LockOSThread()
	if err := setAffinity(cpu); err != nil {
		runtime.UnlockOSThread()
		return err
	}
	return nil
}

// Allowed returns the CPUs the calling thread may run on.
func Allowed() ([]int, error) {
	return allowedCPUs()
}
