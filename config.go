package docgraph

import (
	"fmt"
	"os"
)

// Config is read-only once NewEngine has validated it. It mirrors the
// recognized options of spec.md §6.
type Config struct {
	// RootDir anchors relative file names and ignore-path matching.
	RootDir string

	// IncludePaths are passed to the front-end as system includes; each
	// must exist as a directory or it is warned about and skipped.
	// Per spec.md §6 these are treated as system for filtering purposes
	// (SPEC_FULL.md §4.12), so they feed IsInSystemHeader the same way
	// SystemIncludePaths does.
	IncludePaths []string

	// SystemIncludePaths are additional directories whose contents are
	// always treated as system headers, independent of IncludePaths.
	SystemIncludePaths []string

	IgnorePaths           []string
	IgnoreNamespaces      []string
	IgnorePrivateMembers  bool
	DebugLimitNumIndexedFiles *int

	// WorkerCount bounds the ParallelExecutor's pool. Zero means
	// runtime.NumCPU().
	WorkerCount int

	// NoexceptComputedIsNoexcept controls the open question in spec.md §9:
	// when false (the default, and the source behavior), a computed
	// noexcept(expr) is always recorded as non-noexcept.
	NoexceptComputedIsNoexcept bool
}

// resolvedConfig is the validated form used internally: include paths have
// been checked for existence (missing ones produce warnings, not entries).
type resolvedConfig struct {
	Config
	existingIncludePaths []string
}

// resolve validates a Config, warning (via logger) about include paths
// that don't exist and dropping them, per spec.md §7.2.
func (c Config) resolve(log Logger) resolvedConfig {
	rc := resolvedConfig{Config: c}
	for _, p := range c.IncludePaths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			log.Warn(fmt.Sprintf("include path does not exist, skipping: %s", p))
			continue
		}
		rc.existingIncludePaths = append(rc.existingIncludePaths, p)
	}
	return rc
}
