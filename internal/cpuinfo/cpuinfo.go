// Package cpuinfo reports whether the host has AES instructions.
package cpuinfo

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"
)

// HasAES reports whether the CPU implements AES in hardware.
func HasAES() bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return cpu.X86.HasAES
	case "arm64":
		return cpu.ARM64.HasAES
	case "s390x":
		return cpu.S390X.HasAES
	}
	return false
}

// Describe returns a one-line summary for logs.
func Describe() string {
	return fmt.Sprintf("%s/%s hardware AES: %t", runtime.GOOS, runtime.GOARCH, HasAES())
}
