package telemetry

import "sync"

// DefaultArtifactsDir is where events.jsonl is written unless configured otherwise.
const DefaultArtifactsDir = ".taskchat"

var (
	mu           sync.RWMutex
	observe      bool
	artifactsDir = DefaultArtifactsDir
)

// Configure turns JSONL emission on or off and sets the artifacts directory.
// It is called once at startup; an empty dir keeps the default.
func Configure(enabled bool, dir string) {
	mu.Lock()
	defer mu.Unlock()
	observe = enabled
	if dir == "" {
		dir = DefaultArtifactsDir
	}
	artifactsDir = dir
}

// ObserveEnabled reports whether events are written.
func ObserveEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return observe
}

// ArtifactsDir returns the directory events.jsonl lives in.
func ArtifactsDir() string {
	mu.RLock()
	defer mu.RUnlock()
	return artifactsDir
}
