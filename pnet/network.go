package pnet

import "fmt"

// New returns a Network with the given number of pores and no throats.
//
// Complexity: O(pores).
func New(pores int, opts ...Option) (*Network, error) {
	// 1) Validate the pore count before allocating anything.
	if pores < 0 {
		return nil, fmt.Errorf("%w: %d", ErrPoreCount, pores)
	}

	// 2) Allocate incidence storage and apply functional options.
	n := &Network{incident: make([][]int, pores)}
	for _, opt := range opts {
		opt(n)
	}

	return n, nil
}

// FromThroats builds a Network with the given pore count and one throat
// per entry of throats, assigned ids 0..len(throats)-1 in slice order.
// Endpoint validation matches AddThroat; the first invalid entry aborts
// construction.
//
// Complexity: O(pores + len(throats)).
func FromThroats(pores int, throats [][2]int, opts ...Option) (*Network, error) {
	// Reserve exact throat capacity first so caller options may still override.
	n, err := New(pores, append([]Option{WithThroatCapacity(len(throats))}, opts...)...)
	if err != nil {
		return nil, err
	}
	for _, th := range throats {
		if _, err = n.AddThroat(th[0], th[1]); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// AddPore appends a new isolated pore and returns its id.
func (n *Network) AddPore() int {
	n.incident = append(n.incident, nil)

	return len(n.incident) - 1
}

// AddThroat appends a throat between pores a and b and returns its id.
//
// Parallel throats are always allowed and receive distinct ids. Equal
// endpoints fail with ErrSelfLoop unless the Network was built with
// WithSelfLoops; endpoints outside [0, Pores()) fail with ErrPoreRange.
func (n *Network) AddThroat(a, b int) (int, error) {
	// 1) Both endpoints must name existing pores.
	if a < 0 || a >= len(n.incident) {
		return 0, fmt.Errorf("%w: %d (network has %d pores)", ErrPoreRange, a, len(n.incident))
	}
	if b < 0 || b >= len(n.incident) {
		return 0, fmt.Errorf("%w: %d (network has %d pores)", ErrPoreRange, b, len(n.incident))
	}

	// 2) Self-loops are opt-in.
	if a == b && !n.allowLoops {
		return 0, fmt.Errorf("%w: pore %d", ErrSelfLoop, a)
	}

	// 3) Record endpoints, then register the throat with each distinct pore.
	t := len(n.ends)
	n.ends = append(n.ends, [2]int{a, b})
	n.incident[a] = append(n.incident[a], t)
	if b != a {
		n.incident[b] = append(n.incident[b], t)
	}

	return t, nil
}

// Pores returns the number of pores.
func (n *Network) Pores() int { return len(n.incident) }

// Throats returns the number of throats.
func (n *Network) Throats() int { return len(n.ends) }

// Ends returns the two endpoint pores of throat t, in the order they
// were passed to AddThroat. Both values are equal for a self-loop.
// Panics if t is not a valid throat id.
func (n *Network) Ends(t int) (int, int) {
	e := n.ends[t]

	return e[0], e[1]
}

// PoreThroats returns the ids of the throats incident to pore p, in
// creation order. The slice aliases the Network's internal storage and
// must be treated as read-only. Panics if p is not a valid pore id.
func (n *Network) PoreThroats(p int) []int { return n.incident[p] }

// Degree returns how many throats touch pore p; a self-loop counts once.
// Panics if p is not a valid pore id.
func (n *Network) Degree(p int) int { return len(n.incident[p]) }
