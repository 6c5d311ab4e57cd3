// SPDX-License-Identifier: MIT
// Package: airgraph/builder
//
// options.go: functional options and the resolved builder configuration.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • newBuilderConfig applies options in order; later overrides earlier.
//   • Defaults: last-write-wins on conflicting weights, graph frozen on return.

package builder

// Option customizes a constructor by mutating a builderConfig before
// construction begins.
type Option func(*builderConfig)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	// strict rejects a second, different weight for an already-declared pair.
	strict bool
	// mutable skips the final Freeze so callers can keep editing the graph.
	mutable bool
}

// WithStrictConflicts rejects conflicting weights for the same pair with
// ErrConflictingRoute instead of letting the later declaration win.
// Re-declaring an identical weight is never a conflict.
func WithStrictConflicts() Option {
	return func(c *builderConfig) {
		c.strict = true
	}
}

// WithMutable returns the graph unfrozen.
func WithMutable() Option {
	return func(c *builderConfig) {
		c.mutable = true
	}
}

// newBuilderConfig resolves opts over deterministic defaults.
func newBuilderConfig(opts ...Option) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
