//go:build !tinygo

package caspergo

import "unsafe"

// activeRuntime holds the MockRuntime that host imports forward to when not
// building with TinyGo.
var activeRuntime *MockRuntime

// UseRuntime sets the provided MockRuntime as the active runtime for testing.
func UseRuntime(mock *MockRuntime) {
	activeRuntime = mock
}

func requireRuntime() *MockRuntime {
	if activeRuntime == nil {
		panic("mock runtime not initialized")
	}
	return activeRuntime
}

// unsafeSlice creates a Go slice backed by the Wasm memory pointer and length.
func unsafeSlice(ptr *byte, length uint32) []byte {
	if ptr == nil || length == 0 {
		return nil
	}
	return unsafe.Slice(ptr, length)
}
