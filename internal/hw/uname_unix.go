//go:build unix

package hw

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// kernelBuild returns the kernel build string, as printed by uname -v.
func kernelBuild() (string, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", fmt.Errorf("failed to query uname: %w", err)
	}
	return unix.ByteSliceToString(u.Version[:]), nil
}
