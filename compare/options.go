// Package compare: functional configuration for the comparison engine.
package compare

// Policy selects how existing-but-wrong pairs (misoriented arcs, arcs
// confused with edges) are booked into FP and FN.
type Policy uint8

const (
	// PenalizeOnce books an existing-but-wrong pair as one false
	// positive only. Near-miss structures keep their recall. Default.
	PenalizeOnce Policy = iota

	// PenalizeTwice books an existing-but-wrong pair as a false
	// positive and a false negative, the stricter convention found in
	// parts of the structure-learning literature.
	PenalizeTwice
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case PenalizeOnce:
		return "penalize-once"
	case PenalizeTwice:
		return "penalize-twice"
	default:
		return "invalid"
	}
}

// Options configures Compare. Use DefaultOptions() for the standard
// setup and the With* constructors to override.
//
// Fields:
//
//	Policy Policy — PenalizeOnce or PenalizeTwice.
type Options struct {
	// Policy is the FP/FN counting convention.
	Policy Policy
}

// Option configures Options. All Option functions modify the pointed
// Options value; last writer wins.
type Option func(*Options)

// WithPolicy returns an Option that sets the counting policy.
// Allowed values: PenalizeOnce, PenalizeTwice; anything else makes
// Compare return ErrBadPolicy.
func WithPolicy(p Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// DefaultOptions returns the standard configuration:
//
//	– Policy = PenalizeOnce.
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{Policy: PenalizeOnce}
}

// gatherOptions resolves user options on top of DefaultOptions.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
