//go:build !profile

package profiler

// No-op versions when the "profile" build tag is not set.

func Enabled() bool { return false }

func Init(capacity int) {}

func Start(name string) func() { return nop }

func Dump() (string, error) { return "", ErrDisabled }

func OpenGraph() (string, error) { return "", ErrDisabled }
