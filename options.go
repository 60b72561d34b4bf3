package bptree

// DefaultOrder is used when no WithOrder option is supplied. It mirrors
// the "common choice" the spec calls out for the order parameter.
const DefaultOrder = 1000

// minOrder is the smallest order the tree will accept; below this the
// split/borrow/merge arithmetic no longer has room to operate.
const minOrder = 3

// config collects the recognized construction options (spec.md §6).
type config struct {
	order int
}

// Option configures a Tree at construction time.
type Option func(*config)

// WithOrder sets the maximum number of entries (leaf) or separators+1
// children (inner node) held by any non-root node. Order must be >= 3;
// New/NewWithTransform report ErrInvalidConfiguration otherwise.
func WithOrder(order int) Option {
	return func(c *config) {
		c.order = order
	}
}

func newConfig(opts []Option) (config, error) {
	c := config{order: DefaultOrder}
	for _, opt := range opts {
		opt(&c)
	}
	if c.order < minOrder {
		return config{}, ErrInvalidConfiguration
	}
	return c, nil
}
