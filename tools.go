//go:build tools

package tools

// mockery is used as an installed binary, so no blank import is needed.
// Run: mockery (from the repo root) to regenerate pkg/codec/mocks.
