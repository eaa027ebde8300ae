package pnet

import "errors"

// Sentinel errors returned by Network constructors and queries.
// Callers should match them with errors.Is; wrapped variants carry the
// offending ids.
var (
	// ErrPoreCount is returned when a constructor receives a negative pore count.
	ErrPoreCount = errors.New("pnet: negative pore count")

	// ErrPoreRange is returned when a pore id lies outside [0, Pores()).
	ErrPoreRange = errors.New("pnet: pore id out of range")

	// ErrSelfLoop is returned by AddThroat for equal endpoints when
	// self-loops have not been enabled via WithSelfLoops.
	ErrSelfLoop = errors.New("pnet: self-loop throat not enabled")
)

// Option configures a Network at construction time.
type Option func(*Network)

// WithSelfLoops permits throats whose two endpoints are the same pore.
// A self-loop occupies one slot in its pore's incidence list and counts
// once toward Degree.
func WithSelfLoops() Option {
	return func(n *Network) { n.allowLoops = true }
}

// WithThroatCapacity preallocates endpoint storage for n throats, useful
// when the throat count is known up front. Non-positive n is a no-op.
func WithThroatCapacity(n int) Option {
	return func(net *Network) {
		if n > 0 {
			net.ends = make([][2]int, 0, n)
		}
	}
}

// Network is a pore-throat topology with dense integer ids.
//
// Pores and throats are numbered consecutively from zero in creation
// order. The zero value is not usable; build a Network with New or
// FromThroats. A Network is not safe for concurrent mutation, but any
// number of goroutines may query a fully built one.
type Network struct {
	// ends[t] holds the two endpoint pores of throat t; both entries are
	// equal for a self-loop.
	ends [][2]int

	// incident[p] lists the throats touching pore p in creation order.
	// A self-loop appears once.
	incident [][]int

	// allowLoops permits equal-endpoint throats.
	allowLoops bool
}
