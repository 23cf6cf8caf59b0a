//go:build !debug

package sweep

// debugf is a no-op unless the debug build tag is enabled.
func debugf(string, ...interface{}) {}
