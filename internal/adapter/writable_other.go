//go:build !unix

package adapter

import "os"

// writable falls back to the permission bits where access(2) is unavailable.
func writable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.Mode().Perm()&0o200 != 0
}
