//go:build !darwin

package main

// isPackageDir always reports false: only macOS has bundle directories.
func isPackageDir(string) bool {
	return false
}
