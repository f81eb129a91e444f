// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about tile cache behavior and HTTP serving.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetTilingHooks(&myTilingHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Tiling().OnTileMiss(row, col)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Tiling Hooks
// =============================================================================

// TilingHooks receives events from the tile partitioner's memo cache.
type TilingHooks interface {
	// OnTileHit records a lookup served from the cache.
	OnTileHit(row, col int)

	// OnTileMiss records a lookup that computed a fresh tile.
	OnTileMiss(row, col int)
}

// =============================================================================
// Server Hooks
// =============================================================================

// ServerHooks receives events from the tile-metadata HTTP server.
type ServerHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed HTTP response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopTilingHooks is a no-op implementation of TilingHooks.
type NoopTilingHooks struct{}

func (NoopTilingHooks) OnTileHit(int, int)  {}
func (NoopTilingHooks) OnTileMiss(int, int) {}

// NoopServerHooks is a no-op implementation of ServerHooks.
type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, string)                      {}
func (NoopServerHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	tilingHooks TilingHooks = NoopTilingHooks{}
	serverHooks ServerHooks = NoopServerHooks{}
	hooksMu     sync.RWMutex
)

// SetTilingHooks registers custom tiling hooks.
// This should be called once at application startup before any tile lookups.
func SetTilingHooks(h TilingHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		tilingHooks = h
	}
}

// SetServerHooks registers custom server hooks.
// This should be called once at application startup before serving.
func SetServerHooks(h ServerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		serverHooks = h
	}
}

// Tiling returns the registered tiling hooks.
func Tiling() TilingHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return tilingHooks
}

// Server returns the registered server hooks.
func Server() ServerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return serverHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	tilingHooks = NoopTilingHooks{}
	serverHooks = NoopServerHooks{}
}
