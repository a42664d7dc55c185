package buffer

// DefaultCapacity is the arena size used for files up to half its size.
const DefaultCapacity = 65536

// MinCapacity is the smallest arena a buffer will allocate.
const MinCapacity = 2

// Option is a functional option for configuring a Buffer.
type Option func(*options)

type options struct {
	defaultCapacity int
	capacity        int // exact capacity; 0 means derive from content size
}

func defaultOptions() options {
	return options{defaultCapacity: DefaultCapacity}
}

// WithDefaultCapacity sets the default arena size used by capacity sizing.
func WithDefaultCapacity(n int) Option {
	return func(o *options) {
		if n >= MinCapacity {
			o.defaultCapacity = n
		}
	}
}

// WithCapacity fixes the arena size regardless of content size.
// Content longer than the capacity is truncated on load.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n >= MinCapacity {
			o.capacity = n
		}
	}
}

// CapacityFor returns the arena size for content of the given size:
// max(defaultCap, 2*size) when size exceeds half of defaultCap, else defaultCap.
func CapacityFor(size, defaultCap int) int {
	if defaultCap < MinCapacity {
		defaultCap = MinCapacity
	}
	if size > defaultCap/2 {
		return max(defaultCap, 2*size)
	}
	return defaultCap
}
