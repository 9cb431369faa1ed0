package colmath

import (
	"os"
	"runtime"
	"strings"
)

// ISA represents an instruction set the kernels can dispatch to.
type ISA uint8

const (
	// Generic represents the pure Go implementation (no SIMD).
	Generic ISA = iota
	// NEON represents ARM64 NEON (ASIMD).
	NEON
	// AVX2 represents x86-64 AVX2 with FMA.
	AVX2
	// AVX512 represents x86-64 AVX-512.
	AVX512
)

// EnvOverride is the environment variable consulted at startup to force an
// ISA.
const EnvOverride = "SOA_COLMATH"

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case NEON:
		return "neon"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "neon":
		return NEON, true
	case "avx2":
		return AVX2, true
	case "avx512":
		return AVX512, true
	default:
		return Generic, false
	}
}

// Set once during package init by the platform-specific files.
var (
	activeISA   ISA
	hasOverride bool

	hasASIMD   bool
	hasAVX2    bool
	hasAVX512F bool
)

// initCapabilities is called from the platform-specific init functions after
// CPU features are detected.
func initCapabilities() {
	hasOverride = false
	activeISA = selectBestISA()

	if override := os.Getenv(EnvOverride); override != "" {
		if isa, ok := ParseISA(override); ok {
			hasOverride = true
			if isISAAvailable(isa) {
				activeISA = isa
			}
		}
	}

	selectKernels(activeISA)
}

func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case NEON:
		return hasASIMD
	case AVX2:
		return hasAVX2
	case AVX512:
		return hasAVX512F
	default:
		return false
	}
}

func selectBestISA() ISA {
	switch runtime.GOARCH {
	case "arm64":
		if hasASIMD {
			return NEON
		}
	case "amd64":
		if hasAVX512F {
			return AVX512
		}
		if hasAVX2 {
			return AVX2
		}
	}
	return Generic
}

// ActiveISA returns the ISA the kernels dispatch to.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden reports whether SOA_COLMATH named a known ISA.
func IsOverridden() bool {
	return hasOverride
}
