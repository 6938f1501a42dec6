package lemke

import "io"

// DefaultMaxPivots is the zero value for the pivot budget: unlimited.
const DefaultMaxPivots = 0

// Options configures a Solve call.
//   - MaxPivots: stop with PivotLimitError after this many pivots; 0 is
//     unlimited (DefaultMaxPivots).
//   - Trace: when non-nil, each pivot's (entering, leaving) pair is
//     written here as a line of text. The engine has no logging
//     dependency of its own (see DESIGN.md); this is the caller's hook
//     for wiring it to whatever logger they use.
type Options struct {
	MaxPivots int
	Trace     io.Writer
}

// Option mutates Options; see WithMaxPivots and WithTrace.
type Option func(*Options)

// WithMaxPivots caps the number of pivots Solve will run before
// returning PivotLimitError. n <= 0 means unlimited.
func WithMaxPivots(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxPivots = n
	}
}

// WithTrace directs per-pivot diagnostic lines to w.
func WithTrace(w io.Writer) Option {
	return func(o *Options) { o.Trace = w }
}

func defaultOptions() Options {
	return Options{MaxPivots: DefaultMaxPivots}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	return o
}
