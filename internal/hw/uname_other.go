//go:build !unix

package hw

import "errors"

func kernelBuild() (string, error) {
	return "", errors.New("uname is not available on this platform")
}
