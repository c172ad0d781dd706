//go:build !windows

package geometry

// EOL is the platform line terminator.
const EOL = "\n"
