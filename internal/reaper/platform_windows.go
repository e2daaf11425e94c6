//go:build windows

package reaper

// Detect returns the platform family of the running binary.
func Detect() Platform {
	return Windows
}
