// Package hwcap gates bootstrap on mandatory CPU instruction-set support.
package hwcap

import (
	"errors"

	"github.com/klauspost/cpuid/v2"
)

// HasAVX reports whether the CPU supports the AVX extension.
func HasAVX() bool {
	return cpuid.CPU.Supports(cpuid.AVX)
}

// Require returns nil when the mandatory capability is present, and a
// user-facing error with remediation guidance when it is not. There is no
// degraded mode: callers must treat a non-nil result as fatal.
func Require() error {
	return requireFeature(HasAVX())
}

func requireFeature(present bool) error {
	if present {
		return nil
	}
	return errors.New(
		"your CPU does not support AVX, which this application requires; " +
			"AVX shipped with Intel Sandy Bridge and AMD Bulldozer (2011) - " +
			"check the system requirements for supported hardware")
}
