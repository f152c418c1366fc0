package insertion

import "github.com/katalvlaran/tetmesh/predicates"

// Hooks lets a caller observe each point's dispatch as it happens,
// without having to post-process Result. All fields are optional.
type Hooks struct {
	// OnDispatch is called once per input point, after the operation (if
	// any) has completed and the new vertex's final position has been
	// set.
	OnDispatch func(index int, p predicates.Point, kind DispatchKind, vid int)
}

// Config carries the insertion driver's tolerances, following the
// teacher's functional-options idiom (core/types.go's GraphOption).
type Config struct {
	// Epsilon is a vertex-coincidence tolerance stored on the config.
	// InsertAllPoints does not read it and does not pass it to the
	// classifier or the oracle: vertex coincidence is always decided by
	// exact position comparison (predicates.Point.Equal).
	Epsilon float64

	Hooks Hooks
}

// Option configures a Config.
type Option func(*Config)

// WithEpsilon sets Config.Epsilon.
func WithEpsilon(eps float64) Option {
	return func(c *Config) { c.Epsilon = eps }
}

// WithHooks installs observation hooks.
func WithHooks(h Hooks) Option {
	return func(c *Config) { c.Hooks = h }
}

func defaultConfig() Config {
	return Config{Epsilon: 1e-12}
}
